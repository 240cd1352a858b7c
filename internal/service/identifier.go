package service

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// identifierAttempts bounds the retry loop. The space holds 900 000 codes,
// so hitting the bound at expected scale means the generator is broken or
// the space really is full; either way the caller must hear about it.
const identifierAttempts = 1000

// ExistsFunc reports whether a candidate identifier is already assigned.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// IdentifierService hands out the 6-digit business codes carried by
// programs and projects.
type IdentifierService struct {
	draw func() int
}

func NewIdentifierService() *IdentifierService {
	return &IdentifierService{
		draw: func() int { return 100000 + rand.IntN(900000) },
	}
}

// Generate draws uniform 6-digit codes until one is unused.
func (s *IdentifierService) Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < identifierAttempts; attempt++ {
		candidate := fmt.Sprintf("%06d", s.draw())
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrIdentifierExhausted
}
