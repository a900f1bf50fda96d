package message

import (
	"reflect"
	"strings"

	"github.com/conneroisu/expect/internal/strbuilder"
	"github.com/conneroisu/expect/pkg/config"
)

// EncodeOptions overrides how a single value is encoded.
type EncodeOptions struct {
	// Type is the declared type name; empty derives it with TypeOf.
	Type string
	// Array forces the array collapse form.
	Array bool
	// Collapsible allows collapsing values longer than CollapseLength.
	Collapsible bool
	// CollapseLength overrides the configured collapse length when positive.
	CollapseLength int
	// WrapValues overrides the builder's WrapValues option when set.
	WrapValues *bool
}

// Encode renders value with the builder's options and no collapsing.
func (b *Builder) Encode(value any) string {
	return b.EncodeWith(value, EncodeOptions{})
}

// EncodeWith renders value following the quoting and collapsing rules used
// for the expected and actual variables.
func (b *Builder) EncodeWith(value any, opts EncodeOptions) string {
	return b.encode(strbuilder.New(), value, opts)
}

func (b *Builder) encode(sb *strbuilder.Builder, value any, opts EncodeOptions) string {
	valueType := opts.Type
	if valueType == "" {
		valueType = TypeOf(value)
	}

	transform := "nil"
	if !isNil(value) {
		transform = sb.Encode(value)
	}

	if opts.Collapsible {
		limit := opts.CollapseLength
		if limit <= 0 {
			limit = config.Get().CollapseLength
		}
		if len(transform) > limit {
			transform = collapsed(value, valueType, opts.Array)
		}
	}

	wrap := b.options.WrapValues
	if opts.WrapValues != nil {
		wrap = *opts.WrapValues
	}
	if !wrap {
		return transform
	}

	switch {
	case valueType != TypeString && isString(value):
		// a string standing in for another type, shown as 'value'
		return "'" + unquote(transform) + "'"
	case valueType == TypeString:
		return transform
	default:
		return "'" + transform + "'"
	}
}

func collapsed(value any, valueType string, array bool) string {
	switch kind := TypeOf(value); {
	case kind == TypeArray || kind == TypeObject:
		if array || kind == TypeArray {
			return "[...]"
		}
		return "{...}"
	case valueType == TypeString:
		return `"..."`
	default:
		return "..."
	}
}

func isString(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.String
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
