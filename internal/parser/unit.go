package parser

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// unitPatterns holds the unit alternations compiled from a UnitLookup.
type unitPatterns struct {
	// pkg finds a package unit anywhere in the unread text.
	pkg *regexp.Regexp

	// direct matches any other unit at the cursor. The unit must be followed
	// by whitespace or the end of the line.
	direct *regexp.Regexp

	// directAlt is the bare alternation behind direct, reused by the
	// conversion pattern.
	directAlt string
}

func compileUnitPatterns(pkgVariants, directVariants []string) unitPatterns {
	var p unitPatterns
	if len(pkgVariants) > 0 {
		p.pkg = regexp.MustCompile(`(?i)\b(` + alternation(pkgVariants) + `)\b(\.?)`)
	}
	if len(directVariants) > 0 {
		p.directAlt = alternation(directVariants)
		p.direct = regexp.MustCompile(`(?i)^(` + p.directAlt + `)(\.?)(?:\s|$)`)
	}
	return p
}

// alternation joins variants into a regexp alternation. Words inside a
// multi-word variant may be separated by a period and any whitespace, so
// "fl. oz" matches "fl oz". Variants must be ordered longest first.
func alternation(variants []string) string {
	parts := make([]string, 0, len(variants))
	for _, v := range variants {
		words := strings.Fields(v)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		parts = append(parts, strings.Join(words, `\.?\s+`))
	}
	return strings.Join(parts, "|")
}

// extractUnit reads a unit. Package units are searched for anywhere in the
// unread text and cut out of it, which handles "1 (8 oz) can tomatoes".
// Otherwise a direct unit must sit at the cursor.
func (p *Parser) extractUnit(c cursor) (string, cursor, bool) {
	if p.units.pkg != nil {
		rest := c.rest()
		if m := p.units.pkg.FindStringSubmatchIndex(rest); m != nil {
			if unit, ok := p.lookup.Resolve(rest[m[2]:m[3]]); ok {
				return unit, c.splice(m[0], m[5]), true
			}
		}
	}
	return p.extractDirectUnit(c)
}

func (p *Parser) extractDirectUnit(c cursor) (string, cursor, bool) {
	if p.units.direct == nil {
		return "", c, false
	}
	rest := c.rest()
	m := p.units.direct.FindStringSubmatchIndex(rest)
	if m == nil {
		return "", c, false
	}
	unit, ok := p.lookup.Resolve(rest[m[2]:m[3]])
	if !ok {
		return "", c, false
	}
	return unit, c.advance(m[5]), true
}

// kindsExcept returns every unit kind other than skip.
func kindsExcept(skip domain.UnitKind) []domain.UnitKind {
	var kinds []domain.UnitKind
	for _, k := range domain.AllUnitKinds() {
		if k != skip {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
