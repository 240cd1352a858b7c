// Package dates converts between the civic Persian calendar used at the
// edges of the system and the Gregorian dates kept in storage.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

var ErrInvalidDate = errors.New("invalid persian date")

const (
	// MinYear and MaxYear bound acceptable Persian years.
	MinYear = 1300
	MaxYear = 1500
)

// NormalizeDigits rewrites Persian (۰-۹) and Arabic-Indic (٠-٩) digits to
// their ASCII equivalents, leaving everything else untouched.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseJalali parses a Persian date string ("YYYY/MM/DD" or "YYYY-MM-DD",
// Persian or Western digits) and returns the equivalent Gregorian date at
// UTC midnight.
func ParseJalali(raw string) (time.Time, error) {
	raw = strings.TrimSpace(NormalizeDigits(raw))
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	sep := "/"
	if strings.Contains(raw, "-") {
		sep = "-"
	}
	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return FromJalali(year, month, day)
}

// FromJalali converts Persian year/month/day to a Gregorian date, rejecting
// out-of-range components (year outside [MinYear, MaxYear], month outside
// [1,12], day outside the month's length for that year).
func FromJalali(year, month, day int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", ErrInvalidDate, day)
	}

	pt := ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, ptime.Iran())
	// ptime normalizes overflow (e.g. 31 Mehr rolls into Aban); a round trip
	// that does not reproduce the input means the day was invalid for that
	// month and year.
	if pt.Year() != year || int(pt.Month()) != month || pt.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d/%02d/%02d", ErrInvalidDate, year, month, day)
	}

	g := pt.Time()
	return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ToJalali converts a Gregorian date to Persian year/month/day.
func ToJalali(t time.Time) (year, month, day int) {
	pt := ptime.New(time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, ptime.Iran()))
	return pt.Year(), int(pt.Month()), pt.Day()
}

// FormatJalali renders a Gregorian date as the civic "YYYY/MM/DD" string.
// The zero time renders as the empty string.
func FormatJalali(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	y, m, d := ToJalali(t)
	return fmt.Sprintf("%04d/%02d/%02d", y, m, d)
}
