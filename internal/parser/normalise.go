package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// A digit run directly followed by a fraction glyph: "1½".
	glyphAfterDigitRe = regexp.MustCompile(`(\d)([\x{00BC}-\x{00BE}\x{2150}-\x{215E}])`)
	parenBeforeNumRe  = regexp.MustCompile(`([^\s\d])\((\d)`)
	// The leading group stops a fraction from being read out of the middle of
	// a decimal or a longer slash run ("0.5/3", "1/2/3"). A whole number may be
	// joined to the fraction with "and" or "&".
	fractionRe   = regexp.MustCompile(`(?i)(^|[^\d./])(?:(\d+)\s+(?:(?:and|&)\s+)?)?(\d+)/(\d+)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	commaRe      = regexp.MustCompile(`\s*,\s*`)
	articleRe    = regexp.MustCompile(`(?i)^an?\s+`)
)

// Normalise rewrites an ingredient line into the form the extraction stages
// expect. Fractions become decimals rounded to three places and a leading
// "a" or "an" becomes "1". Normalise is idempotent.
func Normalise(s string) string {
	s = decodeEntities(s)
	s = glyphAfterDigitRe.ReplaceAllString(s, "$1 $2")
	s = decomposeFractions(s)
	s = strings.Map(foldPunctuation, s)
	s = spaceBeforeSlash(s)
	s = parenBeforeNumRe.ReplaceAllString(s, "$1 ($2")
	s = collapseFractions(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = commaRe.ReplaceAllString(s, ", ")
	s = strings.TrimSpace(s)
	s = articleRe.ReplaceAllString(s, "1 ")
	return strings.TrimSpace(s)
}

// decodeEntities replaces entities until none are left, so "&amp;lt;"
// decodes fully in one call.
func decodeEntities(s string) string {
	for strings.Contains(s, "&") {
		next := htmlEntities.Replace(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// decomposeFractions applies compatibility decomposition to fraction glyphs
// only ("½" becomes "1⁄2"); other text is left as written.
func decomposeFractions(s string) string {
	t := runes.If(runes.In(vulgarFractions), norm.NFKD, nil)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// spaceBeforeSlash separates a slash from the word before it, so that
// "cup/240 ml" reads as a conversion while "1/2" stays a fraction.
func spaceBeforeSlash(s string) string {
	if !strings.Contains(s, "/") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && i > 0 && !isDigit(s[i-1]) && !isSpace(s[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// collapseFractions replaces every "whole? n/d" and "whole and n/d" with its
// decimal value. A fraction that cannot be collapsed (zero denominator, part
// of a slash run) is left as written together with its connector.
func collapseFractions(s string) string {
	matches := fractionRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		// Skip "1/2/3": the slash run continues past the match.
		if m[1] < len(s) && s[m[1]] == '/' {
			continue
		}

		den := s[m[8]:m[9]]
		value := ToNumber(s[m[6]:m[7]] + "/" + den)
		if math.IsNaN(value) {
			continue
		}
		if m[4] >= 0 {
			value = round3(ToNumber(s[m[4]:m[5]]) + value)
		}

		b.WriteString(s[last:m[3]])
		b.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
