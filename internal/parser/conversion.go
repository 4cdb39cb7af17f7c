package parser

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/larder/internal/core/domain"
)

func compileConversion(directAlt string) *regexp.Regexp {
	if directAlt == "" {
		return nil
	}
	return regexp.MustCompile(
		`(?i)^([(/])\s*(?:about\s+)?` +
			`(\d+(?:\.\d+)?)(?:\s*(?:-|to)\s*(\d+(?:\.\d+)?))?` +
			`\s*(` + directAlt + `)\b(\.?)` +
			`(\s*\))?`,
	)
}

// extractConversion reads a secondary measurement written as "(240 ml)",
// "(about 2-3 oz.)" or "/ 28 g". The closing ")" may be left off when the
// line never closes the parenthesis ("(4 tbsp honey"); a parenthesis closed
// further on ("(8 oz can)") is left to the name stage.
func (p *Parser) extractConversion(c cursor) (*domain.Measurement, cursor, bool) {
	if p.conversion == nil {
		return nil, c, false
	}
	rest := c.rest()
	m := p.conversion.FindStringSubmatchIndex(rest)
	if m == nil {
		return nil, c, false
	}

	opener := rest[m[2]:m[3]]
	closed := m[12] >= 0
	end := m[11]
	switch {
	case opener == "(" && !closed:
		after := rest[end:]
		if strings.Contains(after, ")") || (after != "" && !isSpace(after[0])) {
			return nil, c, false
		}
	case opener == "(":
		end = m[13]
	}

	unit, ok := p.lookup.Resolve(rest[m[8]:m[9]])
	if !ok {
		return nil, c, false
	}

	minValue := ToNumber(rest[m[4]:m[5]])
	q := domain.NewScalar(minValue)
	if m[6] >= 0 {
		q = domain.NewRange(minValue, ToNumber(rest[m[6]:m[7]]))
	}

	return &domain.Measurement{Quantity: q, Unit: unit}, c.advance(end), true
}
