package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "1403/01/15", NormalizeDigits("۱۴۰۳/۰۱/۱۵"))
	assert.Equal(t, "1403-11-22", NormalizeDigits("١٤٠٣-١١-٢٢"))
	assert.Equal(t, "abc123", NormalizeDigits("abc123"))
	assert.Equal(t, "", NormalizeDigits(""))
}

func TestParseJalaliKnownDate(t *testing.T) {
	// Nowruz 1403 fell on 20 March 2024.
	got, err := ParseJalali("1403/01/01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestParseJalaliSeparatorsAndDigits(t *testing.T) {
	slash, err := ParseJalali("1403/05/12")
	require.NoError(t, err)

	dash, err := ParseJalali("1403-05-12")
	require.NoError(t, err)
	assert.Equal(t, slash, dash)

	persian, err := ParseJalali("۱۴۰۳/۰۵/۱۲")
	require.NoError(t, err)
	assert.Equal(t, slash, persian)
}

func TestParseJalaliRejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-date",
		"1403/01",
		"1403/13/01",
		"1403/00/10",
		"1403/01/00",
		"1400/07/31",  // Mehr has 30 days
		"1402/12/30",  // 1402 is not a leap year
		"1299/01/01",  // below MinYear
		"1501/01/01",  // above MaxYear
	}
	for _, raw := range cases {
		_, err := ParseJalali(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", raw)
	}
}

func TestFromJalaliLeapYear(t *testing.T) {
	// 1403 is a leap year, so Esfand runs to day 30.
	_, err := FromJalali(1403, 12, 30)
	require.NoError(t, err)

	_, err = FromJalali(1402, 12, 30)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"1400/01/01", "1403/06/31", "1403/12/30", "1399/11/22"} {
		parsed, err := ParseJalali(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, FormatJalali(parsed))
	}
}

func TestFormatJalaliZeroTime(t *testing.T) {
	assert.Equal(t, "", FormatJalali(time.Time{}))
}
