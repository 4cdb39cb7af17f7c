package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// nanToken is how an unparseable quantity is rendered. JSON has no NaN literal.
const nanToken = "NaN"

// Quantity is an amount read from an ingredient line.
// A scalar has Range == false and Max == Min. A range keeps the order it was
// written in; Min > Max is allowed and not corrected.
type Quantity struct {
	// Min is the scalar value, or the first endpoint of a range.
	Min float64

	// Max equals Min for scalars, otherwise the second endpoint.
	Max float64

	// Range is true when the quantity was written as "a-b" or "a to b".
	Range bool
}

// NewScalar returns a scalar quantity.
func NewScalar(v float64) *Quantity {
	return &Quantity{Min: v, Max: v}
}

// NewRange returns a range quantity. The endpoints are stored as given.
func NewRange(minValue, maxValue float64) *Quantity {
	return &Quantity{Min: minValue, Max: maxValue, Range: true}
}

// Value returns the scalar value (the first endpoint for ranges).
func (q Quantity) Value() float64 {
	return q.Min
}

// IsNaN reports whether either endpoint is the not-a-number sentinel.
func (q Quantity) IsNaN() bool {
	return math.IsNaN(q.Min) || math.IsNaN(q.Max)
}

// Values returns one element for scalars and two for ranges.
func (q Quantity) Values() []float64 {
	if q.Range {
		return []float64{q.Min, q.Max}
	}
	return []float64{q.Min}
}

// String formats the quantity as written in a recipe ("1.5", "1-2").
func (q Quantity) String() string {
	if q.Range {
		return formatNumber(q.Min) + "-" + formatNumber(q.Max)
	}
	return formatNumber(q.Min)
}

// Measurement is a quantity paired with a canonical unit.
type Measurement struct {
	// Quantity is nil when no amount was found.
	Quantity *Quantity

	// Unit is the canonical unit name, or empty when none was recognised.
	Unit string
}

// IsRange reports whether the quantity is a two-element range.
func (m Measurement) IsRange() bool {
	return m.Quantity != nil && m.Quantity.Range
}

// HasUnit reports whether a unit was recognised.
func (m Measurement) HasUnit() bool {
	return m.Unit != ""
}

// measurementView is the wire shape shared by the JSON and YAML encodings.
type measurementView struct {
	Quantity any     `json:"quantity" yaml:"quantity"`
	Unit     *string `json:"unit" yaml:"unit"`
	IsRange  bool    `json:"isRange" yaml:"isRange"`
}

func (m Measurement) view() measurementView {
	v := measurementView{
		Quantity: quantityValue(m.Quantity),
		IsRange:  m.IsRange(),
	}
	if m.HasUnit() {
		unit := m.Unit
		v.Unit = &unit
	}
	return v
}

// MarshalJSON renders {quantity: number | [min, max] | null, unit: string | null, isRange}.
func (m Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// MarshalYAML renders the same shape as MarshalJSON.
func (m Measurement) MarshalYAML() (any, error) {
	return m.view(), nil
}

// UnmarshalJSON reads the shape produced by MarshalJSON.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	var raw struct {
		Quantity json.RawMessage `json:"quantity"`
		Unit     *string         `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	q, err := decodeQuantity(raw.Quantity)
	if err != nil {
		return err
	}

	m.Quantity = q
	m.Unit = ""
	if raw.Unit != nil {
		m.Unit = *raw.Unit
	}
	return nil
}

func quantityValue(q *Quantity) any {
	if q == nil {
		return nil
	}
	if q.Range {
		return []any{numberValue(q.Min), numberValue(q.Max)}
	}
	return numberValue(q.Min)
}

func numberValue(v float64) any {
	if math.IsNaN(v) {
		return nanToken
	}
	return v
}

func decodeQuantity(data json.RawMessage) (*Quantity, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var values []json.RawMessage
	if err := json.Unmarshal(data, &values); err == nil {
		if len(values) != 2 {
			return nil, fmt.Errorf("%w: range quantity needs 2 values, got %d", ErrInvalidInput, len(values))
		}
		minValue, err := decodeNumber(values[0])
		if err != nil {
			return nil, err
		}
		maxValue, err := decodeNumber(values[1])
		if err != nil {
			return nil, err
		}
		return NewRange(minValue, maxValue), nil
	}

	v, err := decodeNumber(data)
	if err != nil {
		return nil, err
	}
	return NewScalar(v), nil
}

func decodeNumber(data json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == nanToken {
		return math.NaN(), nil
	}
	return 0, fmt.Errorf("%w: quantity %s is not a number", ErrInvalidInput, string(data))
}
