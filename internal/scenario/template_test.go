package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/pkg/message"
)

func TestExpandTokens(t *testing.T) {
	got := ExpandTokens("Expected {name} to {not} equal {expected} ({expected.type})")
	want := "Expected " + message.Place.Name + " to " + message.Place.Not + " equal " +
		message.Place.Expected.Value + " (" + message.Place.Expected.Type + ")"
	assert.Equal(t, want, got)

	assert.Equal(t, "no tokens", ExpandTokens("no tokens"))
}

func TestTemplate_Render(t *testing.T) {
	base := Template{
		Prefix:   "Expected {name} to {not} equal {expected}",
		Actual:   5,
		Expected: 4,
	}

	tests := []struct {
		name     string
		mutate   func(*Template)
		expected string
	}{
		{"failure", func(*Template) {}, "Expected '5' to equal '4'"},
		{"negated", func(t *Template) { t.Pass, t.Negated = true, true }, "Expected '5' to NOT equal '4'"},
		{"named", func(t *Template) { t.Name = "the count" }, "Expected the count to equal '4'"},
		{"path wins over name", func(t *Template) { t.Name, t.Path = "the count", "a.b" }, "Expected a.b to equal '4'"},
		{
			"metadata tokens",
			func(t *Template) { t.Metadata = map[string]any{"Value": "{actual} ({actual.type})"} },
			"Expected '5' to equal '4'\n\nValue: '5' (number)",
		},
		{
			"failure metadata hidden on pass",
			func(t *Template) {
				t.Pass, t.Negated = true, true
				t.FailureMetadata = map[string]any{"Hint": "x"}
			},
			"Expected '5' to NOT equal '4'",
		},
		{
			"reason",
			func(t *Template) { t.Suffix, t.Reason = ", but {reason}", "it was {actual}" },
			"Expected '5' to equal '4', but it was '5'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := base
			tt.mutate(&tmpl)
			assert.Equal(t, tt.expected, tmpl.Render())
		})
	}
}

func TestParseTemplates(t *testing.T) {
	input := `
title: equal
prefix: Expected {name} to {not} equal {expected}
actual: 5
expected: 4
---
title: negated
prefix: Expected {name} to {not} be empty
actual: [1, 2]
pass: true
negated: true
`
	templates, err := ParseTemplates(strings.NewReader(input), "inline")
	require.NoError(t, err)
	require.Len(t, templates, 2)

	assert.Equal(t, "equal", templates[0].Title)
	assert.Equal(t, "Expected '5' to equal '4'", templates[0].Render())
	assert.Equal(t, "Expected '[1,2]' to NOT be empty", templates[1].Render())
}

func TestParseTemplates_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"empty", "", "ERR_TEMPLATE_EMPTY"},
		{"missing prefix", "actual: 1\n", "ERR_VALIDATION_PREFIX"},
		{"unknown field", "prefix: x\nbogus: 1\n", "ERR_TEMPLATE_PARSE"},
		{"second document bad", "prefix: x\n---\nprefix: [\n", "ERR_TEMPLATE_PARSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplates(strings.NewReader(tt.input), "inline")
			require.Error(t, err)
			assert.True(t, errors.HasErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.yml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: Expected {name}\nactual: 1\n"), 0o644))

	templates, err := LoadTemplates(path)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Expected '1'", templates[0].Render())

	_, err = LoadTemplates(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.HasErrorType(err, errors.ErrorTypeIO))
}
