package parser

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
)

// Stage names reported to a Tracer.
const (
	StageNormalise  = "normalise"
	StageQuantity   = "quantity"
	StageUnit       = "unit"
	StageAdded      = "added"
	StageConversion = "conversion"
	StageName       = "name"
)

// Tracer receives the unread text after each stage that matched.
type Tracer func(stage, rest string)

// Option configures a Parser.
type Option func(*Parser)

// WithTracer reports stage progress to t.
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		p.trace = t
	}
}

// Parser reads ingredient lines. It is immutable after New and safe for
// concurrent use.
type Parser struct {
	lookup     driven.UnitLookup
	units      unitPatterns
	conversion *regexp.Regexp
	trace      Tracer
}

// New compiles the unit patterns for lookup.
func New(lookup driven.UnitLookup, opts ...Option) *Parser {
	units := compileUnitPatterns(
		lookup.Variants(domain.UnitKindPackage),
		lookup.Variants(kindsExcept(domain.UnitKindPackage)...),
	)
	p := &Parser{
		lookup:     lookup,
		units:      units,
		conversion: compileConversion(units.directAlt),
		trace:      func(string, string) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads one ingredient line. It never fails: text that cannot be
// read as a measurement ends up in the name.
func (p *Parser) Parse(line string) domain.ParseResult {
	result := domain.ParseResult{Input: line}

	c := newCursor(Normalise(line))
	p.trace(StageNormalise, c.rest())

	if q, next, ok := extractQuantity(c); ok {
		c = next
		p.trace(StageQuantity, c.rest())

		primary := domain.Measurement{Quantity: q}
		if unit, next, ok := p.extractUnit(c); ok {
			primary.Unit = unit
			c = next
			p.trace(StageUnit, c.rest())
		}
		result.Measurements = []domain.Measurement{primary}

		if added, next, ok := p.extractAdded(c); ok {
			result.Measurements = append(result.Measurements, added...)
			c = next
			p.trace(StageAdded, c.rest())
		}

		if conv, next, ok := p.extractConversion(c); ok {
			result.Converted = conv
			c = next
			p.trace(StageConversion, c.rest())
		}
	}

	name := extractName(c.rest())
	result.Names = name.names
	result.Additional = strings.Join(name.details, ", ")
	p.trace(StageName, strings.Join(name.names, " | "))

	return result
}
