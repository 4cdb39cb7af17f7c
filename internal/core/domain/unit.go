package domain

const unknownDescription = "Unknown"

// UnitKind groups canonical units by what they measure.
type UnitKind string

// Available unit kinds.
const (
	// UnitKindPackage covers containers such as bags, cans and boxes.
	// Package units may appear anywhere in a line, not only after the quantity.
	UnitKindPackage UnitKind = "package"

	// UnitKindVolume covers cups, spoons, litres and the like.
	UnitKindVolume UnitKind = "volume"

	// UnitKindWeight covers grams, ounces, pounds and the like.
	UnitKindWeight UnitKind = "weight"

	// UnitKindCount covers countable pieces such as cloves, pinches and slices.
	UnitKindCount UnitKind = "count"

	// UnitKindSize covers small, medium and large.
	UnitKindSize UnitKind = "size"

	// UnitKindLength covers inches, feet and centimetres.
	UnitKindLength UnitKind = "length"
)

// IsValid returns true if the unit kind is recognised.
func (k UnitKind) IsValid() bool {
	switch k {
	case UnitKindPackage, UnitKindVolume, UnitKindWeight, UnitKindCount, UnitKindSize, UnitKindLength:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k UnitKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k UnitKind) Description() string {
	switch k {
	case UnitKindPackage:
		return "Package (bag, can, box)"
	case UnitKindVolume:
		return "Volume (cup, tablespoon, litre)"
	case UnitKindWeight:
		return "Weight (gram, ounce, pound)"
	case UnitKindCount:
		return "Count (clove, pinch, slice)"
	case UnitKindSize:
		return "Size (small, medium, large)"
	case UnitKindLength:
		return "Length (inch, foot, centimetre)"
	default:
		return unknownDescription
	}
}

// AllUnitKinds returns all unit kinds in display order.
func AllUnitKinds() []UnitKind {
	return []UnitKind{
		UnitKindPackage,
		UnitKindVolume,
		UnitKindWeight,
		UnitKindCount,
		UnitKindSize,
		UnitKindLength,
	}
}

// Unit is one canonical unit and the spellings that resolve to it.
type Unit struct {
	// Name is the canonical name returned in measurements ("cup").
	Name string

	// Kind is what the unit measures.
	Kind UnitKind

	// Variants are the accepted spellings, lower-case, without periods.
	Variants []string

	// Plural is the display form for amounts other than one ("cups").
	// Empty for units that do not pluralise (size words).
	Plural string
}
