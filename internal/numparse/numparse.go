// Package numparse reads the leading number of free-form user text, the way a
// browser's parseInt and parseFloat do: "5 units" is 5, "3.7" as an integer
// is 3, "abc" has no number.
package numparse

import (
	"strconv"
	"strings"
	"unicode"
)

// Prefix returns the leading numeric text of s after whitespace.
// With fraction set it also accepts a decimal point and an exponent.
func Prefix(s string, fraction bool) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if fraction && end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if fraction && end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	return s[:end]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Int parses the leading integer of s. It returns 0, false when there is none
// or when it does not fit in an int.
func Int(s string) (int, bool) {
	n, err := strconv.Atoi(Prefix(s, false))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float parses the leading decimal number of s. It returns 0, false when there is none.
func Float(s string) (float64, bool) {
	f, err := strconv.ParseFloat(Prefix(s, true), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
