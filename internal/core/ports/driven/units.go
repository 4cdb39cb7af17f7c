package driven

import "github.com/custodia-labs/larder/internal/core/domain"

// UnitLookup resolves unit spellings found in ingredient lines.
// Implementations must be safe for concurrent use.
type UnitLookup interface {
	// Resolve maps a spelling ("Tbsp.", "cups") to its canonical unit name.
	// Matching ignores case and periods. Returns false for unknown tokens.
	Resolve(token string) (string, bool)

	// Kind returns the kind of a canonical unit.
	Kind(canonical string) (domain.UnitKind, bool)

	// Variants returns every spelling of every unit of the given kinds.
	// With no kinds, all spellings are returned.
	Variants(kinds ...domain.UnitKind) []string

	// Units returns the full table in display order.
	Units() []domain.Unit

	// Plural returns the display plural of a canonical unit.
	// Returns the canonical name itself when the unit has no plural.
	Plural(canonical string) string
}
