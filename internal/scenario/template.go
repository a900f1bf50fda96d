package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/pkg/message"
)

// Template describes one message for the render command. Text fields use
// short tokens such as {name} and {expected}, see TokenNames.
type Template struct {
	Title                 string         `yaml:"title,omitempty"`
	Prefix                string         `yaml:"prefix"`
	NegationPrefix        string         `yaml:"negation_prefix,omitempty"`
	Suffix                string         `yaml:"suffix,omitempty"`
	NegationSuffix        string         `yaml:"negation_suffix,omitempty"`
	FailureSuffix         string         `yaml:"failure_suffix,omitempty"`
	TrailingFailurePrefix string         `yaml:"trailing_failure_prefix,omitempty"`
	Name                  string         `yaml:"name,omitempty"`
	Path                  string         `yaml:"path,omitempty"`
	Reason                string         `yaml:"reason,omitempty"`
	Index                 any            `yaml:"index,omitempty"`
	Actual                any            `yaml:"actual"`
	ActualType            string         `yaml:"actual_type,omitempty"`
	Expected              any            `yaml:"expected,omitempty"`
	ExpectedType          string         `yaml:"expected_type,omitempty"`
	Metadata              map[string]any `yaml:"metadata,omitempty"`
	FailureMetadata       map[string]any `yaml:"failure_metadata,omitempty"`
	NestedMetadata        map[string]any `yaml:"nested_metadata,omitempty"`
	SurfaceMetadata       map[string]any `yaml:"surface_metadata,omitempty"`
	Pass                  bool           `yaml:"pass"`
	Negated               bool           `yaml:"negated"`
}

// TokenNames maps the short tokens accepted in templates to placeholders.
var TokenNames = map[string]string{
	"{actual}":        message.Place.Actual.Value,
	"{actual.full}":   message.Place.Actual.FullValue,
	"{actual.type}":   message.Place.Actual.Type,
	"{expected}":      message.Place.Expected.Value,
	"{expected.full}": message.Place.Expected.FullValue,
	"{expected.type}": message.Place.Expected.Type,
	"{not}":           message.Place.Not,
	"{reason}":        message.Place.Reason,
	"{path}":          message.Place.Path,
	"{name}":          message.Place.Name,
	"{nil}":           message.Place.Nil,
	"{undefined}":     message.Place.Undefined,
	"{index}":         message.Place.Index,
}

var tokenReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(TokenNames)*2)
	for short, token := range TokenNames {
		pairs = append(pairs, short, token)
	}
	return strings.NewReplacer(pairs...)
}()

// ExpandTokens swaps short tokens for placeholders.
func ExpandTokens(s string) string {
	return tokenReplacer.Replace(s)
}

func expandBag(bag map[string]any) map[string]any {
	out := make(map[string]any, len(bag))
	for k, v := range bag {
		if s, ok := v.(string); ok {
			v = ExpandTokens(s)
		}
		out[ExpandTokens(k)] = v
	}
	return out
}

// Builder turns the template into a message builder.
func (t Template) Builder() *message.Builder {
	var opts []message.BuilderOption
	if t.NegationPrefix != "" {
		opts = append(opts, message.WithNegationPrefix(ExpandTokens(t.NegationPrefix)))
	}

	b := message.New(ExpandTokens(t.Prefix), opts...).
		Suffix(ExpandTokens(t.Suffix)).
		NegationSuffix(ExpandTokens(t.NegationSuffix)).
		FailureSuffix(ExpandTokens(t.FailureSuffix)).
		TrailingFailurePrefix(ExpandTokens(t.TrailingFailurePrefix)).
		Name(ExpandTokens(t.Name)).
		Path(t.Path).
		Reason(ExpandTokens(t.Reason)).
		Index(t.Index).
		Actual(message.VariableData{Value: t.Actual, Type: t.ActualType}).
		Expected(message.VariableData{Value: t.Expected, Type: t.ExpectedType})

	if t.Metadata != nil {
		b.Metadata(expandBag(t.Metadata))
	}
	if t.FailureMetadata != nil {
		b.FailureMetadata(expandBag(t.FailureMetadata))
	}
	if t.NestedMetadata != nil {
		b.NestedMetadata(expandBag(t.NestedMetadata))
	}
	if t.SurfaceMetadata != nil {
		b.SurfaceMetadata(expandBag(t.SurfaceMetadata))
	}
	return b
}

// Render builds the message for the template's pass and negated flags.
func (t Template) Render() string {
	return t.Builder().Build(t.Pass, t.Negated)
}

// ParseTemplates decodes a YAML stream holding one template per document.
func ParseTemplates(r io.Reader, source string) ([]Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var templates []Template
	for {
		var t Template
		err := dec.Decode(&t)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation, "ERR_TEMPLATE_PARSE",
				fmt.Sprintf("parsing template %d of %s", len(templates)+1, source))
		}
		if t.Prefix == "" {
			return nil, errors.ValidationFailure("prefix", "is required", nil).
				WithContext("file", source).
				WithContext("document", len(templates)+1)
		}
		templates = append(templates, t)
	}

	if len(templates) == 0 {
		return nil, errors.NewValidationError("ERR_TEMPLATE_EMPTY", source+" holds no templates")
	}
	return templates, nil
}

// LoadTemplates reads a template file.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileOperationError("read", path, "cannot read template file", err)
	}
	return ParseTemplates(bytes.NewReader(data), path)
}
