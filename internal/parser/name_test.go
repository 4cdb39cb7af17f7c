package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		input   string
		names   []string
		details []string
	}{
		{"water", []string{"water"}, nil},
		{"of water", []string{"water"}, nil},
		{"Of water", []string{"water"}, nil},
		{"butter or margarine", []string{"butter", "margarine"}, nil},
		{"flour, sifted", []string{"flour"}, []string{"sifted"}},
		{"flour, sifted, divided", []string{"flour"}, []string{"sifted, divided"}},
		{"butter (softened)", []string{"butter"}, []string{"softened"}},
		{"butter (or margarine)", []string{"butter", "margarine"}, nil},
		{"butter (or margarine, or oil)", []string{"butter", "margarine", "oil"}, nil},
		{"butter (or margarine or oil)", []string{"butter", "margarine", "oil"}, nil},
		{"butter, or margarine, softened", []string{"butter", "margarine"}, []string{"softened"}},
		{"salt, pepper, or paprika", []string{"salt", "pepper", "paprika"}, nil},
		{
			"chicken (boneless) (skinless), cubed",
			[]string{"chicken"},
			[]string{"boneless", "skinless", "cubed"},
		},
		{"rice (about 2 cups (cooked))", []string{"rice"}, []string{"cooked", "about 2 cups"}},
		{"cheese (8 oz/225 g)", []string{"cheese (8 oz/225 g)"}, nil},
		{"eggs ()", []string{"eggs"}, nil},
		{"", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := extractName(tt.input)

			assert.Equal(t, tt.names, got.names)
			assert.Equal(t, tt.details, got.details)
		})
	}
}

func TestClassifyParen(t *testing.T) {
	tests := []struct {
		content  string
		expected parenKind
	}{
		{"softened", parenNote},
		{"optional", parenNote},
		{"orange zest", parenNote},
		{"or margarine", parenAltSingle},
		{"Or margarine", parenAltSingle},
		{"or margarine, or oil", parenAltList},
		{"or margarine or oil", parenAltList},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyParen(tt.content))
		})
	}
}

func TestSplitAnnotation(t *testing.T) {
	tests := []struct {
		input      string
		name       string
		annotation string
	}{
		{"flour", "flour", ""},
		{"flour, sifted", "flour", "sifted"},
		{"a, or b", "a, or b", ""},
		{"a, or b, chopped", "a, or b", "chopped"},
		{"a, b, or c", "a, b, or c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, annotation := splitAnnotation(tt.input)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.annotation, annotation)
		})
	}
}
