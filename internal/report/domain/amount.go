package report

import (
	"math"
	"strconv"
	"strings"
)

// Amount is the result of normalizing a free-form monetary cell.
// Value is always usable in arithmetic; Valid reports whether the
// raw text actually parsed, so callers can surface data-quality
// diagnostics without breaking the no-error contract.
type Amount struct {
	Value float64
	Valid bool
}

var amountStripper = strings.NewReplacer(
	"€", "",
	"$", "",
	"%", "",
	" ", "",
	" ", "", // no-break space
	" ", "", // narrow no-break space
	"\t", "",
)

// NormalizeAmount converts a RestoTrack export cell such as
// "1.234,56 €", "123,45" or "€ 2 500,00" into a float. Malformed or
// empty cells normalize to zero instead of failing: one bad cell must
// never abort the whole file.
func NormalizeAmount(raw string) Amount {
	s := amountStripper.Replace(strings.TrimSpace(raw))
	if s == "" {
		return Amount{}
	}

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		// The later separator is the decimal one, the other marks thousands.
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		// ParseFloat accepts "NaN" and "inf" spellings; a non-finite
		// value would poison every downstream sum.
		return Amount{}
	}
	return Amount{Value: value, Valid: true}
}
