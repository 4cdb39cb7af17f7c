package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalRe = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// ToNumber converts a quantity token to a number rounded to three decimal
// places. The token is a decimal ("1.5") or a fraction ("3/4").
// An empty token is 0. Anything else, including a zero denominator, is NaN.
func ToNumber(token string) float64 {
	if token == "" {
		return 0
	}

	num, den, isFraction := strings.Cut(token, "/")
	if !decimalRe.MatchString(num) {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return math.NaN()
	}
	if !isFraction {
		return round3(n)
	}

	if !decimalRe.MatchString(den) {
		return math.NaN()
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return math.NaN()
	}
	return round3(n / d)
}

// round3 is the only place quantities are rounded.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
