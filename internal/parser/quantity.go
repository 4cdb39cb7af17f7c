package parser

import (
	"regexp"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// quantityRe reads "2", "1.5", "1-2" or "1 to 2". A leftover "n/d" token is
// accepted so that "1/0" reaches ToNumber. The range marker is consumed
// only when a second number follows it.
var quantityRe = regexp.MustCompile(
	`^(\d+(?:\.\d+)?(?:/\d+)?)(?:\s*(?:-|to)\s*(\d+(?:\.\d+)?(?:/\d+)?))?`,
)

// extractQuantity reads a leading quantity. Range endpoints are kept in the
// order written.
func extractQuantity(c cursor) (*domain.Quantity, cursor, bool) {
	m := quantityRe.FindStringSubmatchIndex(c.rest())
	if m == nil {
		return nil, c, false
	}

	rest := c.rest()
	first := ToNumber(rest[m[2]:m[3]])
	if m[4] < 0 {
		return domain.NewScalar(first), c.advance(m[1]), true
	}
	second := ToNumber(rest[m[4]:m[5]])
	return domain.NewRange(first, second), c.advance(m[1]), true
}
