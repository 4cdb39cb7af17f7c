package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// ParseInput is the input schema for the parse_ingredients tool.
type ParseInput struct {
	Lines []string `json:"lines" jsonschema:"ingredient lines to parse, one per entry"`
}

// ParseOutput is the output schema for the parse_ingredients tool.
type ParseOutput struct {
	Results []ParsedLine `json:"results"`
	Count   int          `json:"count"`
}

// ParsedLine is one parsed ingredient line.
type ParsedLine struct {
	Input        string              `json:"input"`
	Summary      string              `json:"summary"`
	Names        []string            `json:"names"`
	Measurements []MeasurementOutput `json:"measurements,omitempty"`
	Converted    *MeasurementOutput  `json:"converted,omitempty"`
	Additional   string              `json:"additional,omitempty"`
}

// MeasurementOutput is a quantity and unit. Quantity is text ("1.5", "2-3",
// "NaN") because unparseable amounts have no JSON number.
type MeasurementOutput struct {
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	IsRange  bool   `json:"is_range"`
}

// NormaliseInput is the input schema for the normalise_ingredient tool.
type NormaliseInput struct {
	Line string `json:"line" jsonschema:"the ingredient line to clean up"`
}

// NormaliseOutput is the output schema for the normalise_ingredient tool.
type NormaliseOutput struct {
	Normalised string `json:"normalised"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_ingredients",
		Description: "Parse recipe ingredient lines into quantity, unit, name and notes",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalise_ingredient",
		Description: "Show an ingredient line after cleanup, as the parser sees it",
	}, s.handleNormalise)
}

// handleParse handles the parse_ingredients tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	if len(input.Lines) == 0 {
		return nil, ParseOutput{}, ErrNoLines
	}

	results, err := s.ports.Parse.ParseBatch(ctx, input.Lines)
	if err != nil {
		return nil, ParseOutput{}, err
	}

	output := ParseOutput{
		Results: make([]ParsedLine, len(results)),
		Count:   len(results),
	}
	for i, r := range results {
		output.Results[i] = toParsedLine(r)
	}
	return nil, output, nil
}

// handleNormalise handles the normalise_ingredient tool invocation.
func (s *Server) handleNormalise(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormaliseInput,
) (*mcp.CallToolResult, NormaliseOutput, error) {
	return nil, NormaliseOutput{Normalised: s.ports.Parse.Normalise(input.Line)}, nil
}

func toParsedLine(r domain.ParseResult) ParsedLine {
	line := ParsedLine{
		Input:      r.Input,
		Summary:    r.String(),
		Names:      r.Names,
		Additional: r.Additional,
	}
	if line.Names == nil {
		line.Names = []string{}
	}
	for _, m := range r.Measurements {
		line.Measurements = append(line.Measurements, toMeasurement(m))
	}
	if r.Converted != nil {
		c := toMeasurement(*r.Converted)
		line.Converted = &c
	}
	return line
}

func toMeasurement(m domain.Measurement) MeasurementOutput {
	out := MeasurementOutput{Unit: m.Unit, IsRange: m.IsRange()}
	if m.Quantity != nil {
		out.Quantity = m.Quantity.String()
	}
	return out
}
