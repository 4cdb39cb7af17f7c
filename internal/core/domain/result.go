package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseResult is the structured form of one ingredient line.
type ParseResult struct {
	// Input is the line as it was given, before normalisation.
	Input string

	// Names holds the ingredient name. More than one entry means the line
	// listed interchangeable alternatives ("butter or margarine").
	Names []string

	// Measurements is nil when no quantity was found. Otherwise the first
	// entry is the primary measurement and the rest were joined to it with
	// "plus", "and", "&" or "+".
	Measurements []Measurement

	// Converted is the secondary measurement given in parentheses or after
	// a slash ("1 cup (240 ml)"), or nil.
	Converted *Measurement

	// Additional holds preparation notes and other annotations, joined
	// with ", ". Empty when there were none.
	Additional string
}

// Name returns the first (or only) ingredient name.
func (r ParseResult) Name() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0]
}

// Measurement returns the primary measurement, or nil.
func (r ParseResult) Measurement() *Measurement {
	if len(r.Measurements) == 0 {
		return nil
	}
	m := r.Measurements[0]
	return &m
}

// Added returns the measurements joined to the primary one.
func (r ParseResult) Added() []Measurement {
	if len(r.Measurements) < 2 {
		return nil
	}
	return r.Measurements[1:]
}

// HasAddedMeasurements reports whether "plus"/"and" amounts were found.
func (r ParseResult) HasAddedMeasurements() bool {
	return len(r.Measurements) > 1
}

// HasAlternativeIngredients reports whether the line named alternatives.
func (r ParseResult) HasAlternativeIngredients() bool {
	return len(r.Names) > 1
}

// String renders a compact human-readable summary, e.g.
// "1.5 cup | flour | sifted".
func (r ParseResult) String() string {
	var parts []string

	if len(r.Measurements) > 0 {
		amounts := make([]string, 0, len(r.Measurements))
		for _, m := range r.Measurements {
			amounts = append(amounts, m.String())
		}
		amount := strings.Join(amounts, " + ")
		if r.Converted != nil {
			amount += " (" + r.Converted.String() + ")"
		}
		parts = append(parts, amount)
	}

	parts = append(parts, strings.Join(r.Names, " / "))
	if r.Additional != "" {
		parts = append(parts, r.Additional)
	}
	return strings.Join(parts, " | ")
}

// String renders the measurement as "1.5 cup" or "2-3".
func (m Measurement) String() string {
	var parts []string
	if m.Quantity != nil {
		parts = append(parts, m.Quantity.String())
	}
	if m.HasUnit() {
		parts = append(parts, m.Unit)
	}
	return strings.Join(parts, " ")
}

// resultView is the wire shape shared by the JSON and YAML encodings.
type resultView struct {
	Name                      any          `json:"name" yaml:"name"`
	Measurement               any          `json:"measurement" yaml:"measurement"`
	ConvertedMeasurement      *Measurement `json:"convertedMeasurement" yaml:"convertedMeasurement"`
	HasAddedMeasurements      bool         `json:"hasAddedMeasurements" yaml:"hasAddedMeasurements"`
	HasAlternativeIngredients bool         `json:"hasAlternativeIngredients" yaml:"hasAlternativeIngredients"`
	Additional                *string      `json:"additional" yaml:"additional"`
}

func (r ParseResult) view() resultView {
	v := resultView{
		ConvertedMeasurement:      r.Converted,
		HasAddedMeasurements:      r.HasAddedMeasurements(),
		HasAlternativeIngredients: r.HasAlternativeIngredients(),
	}
	switch {
	case r.HasAlternativeIngredients():
		v.Name = r.Names
	case len(r.Names) == 1:
		v.Name = r.Names[0]
	}

	switch {
	case r.HasAddedMeasurements():
		v.Measurement = r.Measurements
	case len(r.Measurements) == 1:
		v.Measurement = r.Measurements[0]
	}

	if r.Additional != "" {
		additional := r.Additional
		v.Additional = &additional
	}
	return v
}

// MarshalJSON renders the result with "name" as a string, a list or null and
// "measurement" as an object, a list (added measurements) or null.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

// MarshalYAML renders the same shape as MarshalJSON.
func (r ParseResult) MarshalYAML() (any, error) {
	return r.view(), nil
}

// UnmarshalJSON reads the shape produced by MarshalJSON. Input is not part
// of that shape and is left untouched.
func (r *ParseResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name                 json.RawMessage `json:"name"`
		Measurement          json.RawMessage `json:"measurement"`
		ConvertedMeasurement *Measurement    `json:"convertedMeasurement"`
		Additional           *string         `json:"additional"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	names, err := decodeNames(raw.Name)
	if err != nil {
		return err
	}
	measurements, err := decodeMeasurements(raw.Measurement)
	if err != nil {
		return err
	}

	r.Names = names
	r.Measurements = measurements
	r.Converted = raw.ConvertedMeasurement
	r.Additional = ""
	if raw.Additional != nil {
		r.Additional = *raw.Additional
	}
	return nil
}

func decodeNames(data json.RawMessage) ([]string, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return []string{name}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: name must be a string or list of strings", ErrInvalidInput)
	}
	return names, nil
}

func decodeMeasurements(data json.RawMessage) ([]Measurement, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		var list []Measurement
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var m Measurement
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return []Measurement{m}, nil
}

func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return nanToken
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
