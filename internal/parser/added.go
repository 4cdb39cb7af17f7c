package parser

import (
	"regexp"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// connectorRe matches the words that join an added measurement:
// "1 cup plus 2 tbsp", "1 lb and 4 oz".
var connectorRe = regexp.MustCompile(`(?i)^(?:(?:plus|and)\b|\+|&)`)

// extractAdded reads measurements joined to the primary one. A connector
// that is not followed by a quantity or a unit is left unread, so
// "1 cup and salt" keeps "and salt" for the name.
func (p *Parser) extractAdded(c cursor) ([]domain.Measurement, cursor, bool) {
	var added []domain.Measurement
	for {
		m := connectorRe.FindStringIndex(c.rest())
		if m == nil {
			break
		}
		next := c.advance(m[1])

		q, afterQty, hasQty := extractQuantity(next)
		unit, afterUnit, hasUnit := p.extractUnit(afterQty)
		if !hasQty && !hasUnit {
			break
		}

		added = append(added, domain.Measurement{Quantity: q, Unit: unit})
		c = afterUnit
	}
	return added, c, len(added) > 0
}
