package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces free-form numeric text to a float64.
// Thousands separators, surrounding whitespace and a leading currency
// symbol are ignored. Malformed or non-finite input yields 0.
// Examples: "480,000" -> 480000, " $1,250.5 " -> 1250.5, "abc" -> 0
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimLeft(s, "$£€")

	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', '_', ' ', '\u00a0':
			return -1
		}
		return r
	}, s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if neg {
		return -f
	}
	return f
}

// AmountPtr is ParseAmount for optional fields: blank input yields nil.
func AmountPtr(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f := ParseAmount(s)
	return &f
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
