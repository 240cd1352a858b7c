package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsSixDigits(t *testing.T) {
	s := NewIdentifierService()
	free := func(ctx context.Context, id string) (bool, error) { return false, nil }

	code, err := s.Generate(context.Background(), free)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), code)
}

func TestGenerateSkipsTakenCodes(t *testing.T) {
	draws := []int{111111, 111111, 222222}
	i := 0
	s := &IdentifierService{draw: func() int {
		v := draws[i%len(draws)]
		i++
		return v
	}}

	taken := map[string]bool{"111111": true}
	exists := func(ctx context.Context, id string) (bool, error) { return taken[id], nil }

	code, err := s.Generate(context.Background(), exists)
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
	assert.Equal(t, 3, i)
}

func TestGenerateExhaustion(t *testing.T) {
	s := NewIdentifierService()
	allTaken := func(ctx context.Context, id string) (bool, error) { return true, nil }

	_, err := s.Generate(context.Background(), allTaken)
	assert.ErrorIs(t, err, ErrIdentifierExhausted)
}

func TestGeneratePropagatesLookupError(t *testing.T) {
	s := NewIdentifierService()
	boom := errors.New("lookup failed")
	failing := func(ctx context.Context, id string) (bool, error) { return false, boom }

	_, err := s.Generate(context.Background(), failing)
	assert.ErrorIs(t, err, boom)
}
