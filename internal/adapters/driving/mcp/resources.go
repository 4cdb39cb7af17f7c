package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/larder/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for larder resources.
	uriScheme = "larder://"

	unitsURI = uriScheme + "units"
)

// unitInfo is the JSON shape of a unit resource entry.
type unitInfo struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Plural   string   `json:"plural,omitempty"`
	Variants []string `json:"variants"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         unitsURI,
		Name:        "units",
		Description: "Every recognised unit with its kind and accepted spellings",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: unitsURI + "/{kind}",
		Name:        "units-by-kind",
		Description: "Units of one kind: package, volume, weight, count, size or length",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)
}

// handleUnitsResource returns the unit table, filtered by kind when the
// URI names one.
func (s *Server) handleUnitsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kind, ok := extractKind(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	units, err := s.ports.Parse.Units(kind)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	infos := make([]unitInfo, len(units))
	for i, u := range units {
		infos[i] = unitInfo{
			Name:     u.Name,
			Kind:     u.Kind.String(),
			Plural:   u.Plural,
			Variants: u.Variants,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling units: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractKind reads the kind from larder://units/{kind}. The bare
// larder://units URI yields the empty kind.
func extractKind(uri string) (domain.UnitKind, bool) {
	if uri == unitsURI {
		return "", true
	}
	kind, ok := strings.CutPrefix(uri, unitsURI+"/")
	if !ok || kind == "" || strings.Contains(kind, "/") {
		return "", false
	}
	return domain.UnitKind(kind), true
}
