// Package strbuilder provides the mutable text accumulator used while
// rendering assertion messages. Tokens are located literally; removal can
// also swallow the whitespace next to an elided token.
package strbuilder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/internal/logging"
)

// Builder accumulates text for a single render pass. It is not safe for
// concurrent use.
type Builder struct {
	value string
	cache map[identity]string
}

// identity keys the encode cache. Only reference kinds are cached since
// they are the ones whose encoding can be expensive.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// New creates a builder seeded with the optional initial text.
func New(initial ...string) *Builder {
	return &Builder{value: strings.Join(initial, "")}
}

// Append concatenates text.
func (b *Builder) Append(text string) *Builder {
	b.value += text
	return b
}

// AppendLine concatenates text preceded by a newline. The first line
// appended to an empty builder therefore yields a leading blank line.
func (b *Builder) AppendLine(text string) *Builder {
	b.value += "\n" + text
	return b
}

// Prepend inserts text at the start.
func (b *Builder) Prepend(text string) *Builder {
	b.value = text + b.value
	return b
}

// Clear drops all accumulated text.
func (b *Builder) Clear() *Builder {
	b.value = ""
	return b
}

// Has reports whether token occurs in the current text.
func (b *Builder) Has(token string) bool {
	return strings.Contains(b.value, token)
}

// Replace substitutes every occurrence of token. Strings are inserted as-is,
// everything else goes through Encode.
func (b *Builder) Replace(token string, value any) *Builder {
	if !b.Has(token) {
		return b
	}

	var replacement string
	switch v := value.(type) {
	case string:
		replacement = v
	case fmt.Stringer:
		replacement = v.String()
	default:
		replacement = b.Encode(value)
	}

	b.value = strings.ReplaceAll(b.value, token, replacement)
	return b
}

// Remove deletes every occurrence of token. With trimSpaces, one adjacent
// whitespace run is consumed too, preferring the leading one.
func (b *Builder) Remove(token string, trimSpaces bool) *Builder {
	if !trimSpaces {
		b.value = strings.ReplaceAll(b.value, token, "")
		return b
	}

	b.value = trimPattern(token).ReplaceAllString(b.value, "")
	return b
}

// String returns the accumulated text.
func (b *Builder) String() string {
	return b.value
}

// Build returns the accumulated text verbatim.
func (b *Builder) Build() string {
	return b.value
}

// Encode renders value as JSON. Values that cannot be encoded fall back to
// fmt.Sprint and a warning is logged; encoding never fails. Reference
// values are cached for the lifetime of the builder.
func (b *Builder) Encode(value any) string {
	key, cacheable := identityOf(value)
	if cacheable {
		if cached, ok := b.cache[key]; ok {
			return cached
		}
	}

	encoded := encode(value)

	if cacheable {
		if b.cache == nil {
			b.cache = make(map[identity]string)
		}
		b.cache[key] = encoded
	}

	return encoded
}

func encode(value any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(value); err != nil {
		logging.Default().WithComponent("strbuilder").Warn(
			context.Background(),
			errors.NewEncodingError("value could not be encoded as JSON", err),
			"falling back to plain formatting",
			"type", fmt.Sprintf("%T", value),
		)
		return fmt.Sprint(value)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func identityOf(value any) (identity, bool) {
	if value == nil {
		return identity{}, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: -1}, true
	case reflect.Slice:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	default:
		return identity{}, false
	}
}

var patterns sync.Map

func trimPattern(token string) *regexp.Regexp {
	if re, ok := patterns.Load(token); ok {
		return re.(*regexp.Regexp)
	}

	quoted := regexp.QuoteMeta(token)
	re := regexp.MustCompile(`\s` + quoted + `|` + quoted + `\s*`)
	patterns.Store(token, re)

	return re
}
