package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/pkg/config"
)

func boolPtr(b bool) *bool { return &b }

func TestEncode_Quoting(t *testing.T) {
	b := New("")

	tests := []struct {
		name     string
		value    any
		opts     EncodeOptions
		expected string
	}{
		{"number", 5, EncodeOptions{}, "'5'"},
		{"boolean", true, EncodeOptions{}, "'true'"},
		{"string", "5", EncodeOptions{}, `"5"`},
		{"array", []int{1, 2}, EncodeOptions{}, "'[1,2]'"},
		{"object", map[string]int{"a": 1}, EncodeOptions{}, `'{"a":1}'`},
		{"string shown as another type", "Red", EncodeOptions{Type: "Color"}, "'Red'"},
		{"nil", nil, EncodeOptions{}, "'nil'"},
		{"unwrapped", 5, EncodeOptions{WrapValues: boolPtr(false)}, "5"},
		{"unwrapped string", "5", EncodeOptions{WrapValues: boolPtr(false)}, `"5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.EncodeWith(tt.value, tt.opts))
		})
	}

	assert.Equal(t, "'5'", b.Encode(5))
}

func TestEncode_Collapse(t *testing.T) {
	b := New("")
	longSlice := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	longMap := map[string]string{"name": "Daymon", "city": "Somewhere"}
	longString := "a string that is far too long"

	tests := []struct {
		name     string
		value    any
		opts     EncodeOptions
		expected string
	}{
		{"array", longSlice, EncodeOptions{Collapsible: true}, "'[...]'"},
		{"object", longMap, EncodeOptions{Collapsible: true}, "'{...}'"},
		{"object forced array form", longMap, EncodeOptions{Collapsible: true, Array: true}, "'[...]'"},
		{"string", longString, EncodeOptions{Collapsible: true}, `"..."`},
		{"string of another type", longString, EncodeOptions{Collapsible: true, Type: "Color"}, "'...'"},
		{"number", 1234567890.123456, EncodeOptions{Collapsible: true, CollapseLength: 5}, "'...'"},
		{"short value untouched", []int{1}, EncodeOptions{Collapsible: true}, "'[1]'"},
		{"not collapsible", longSlice, EncodeOptions{}, "'[1,2,3,4,5,6,7,8,9,10,11,12]'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.EncodeWith(tt.value, tt.opts))
		})
	}
}

func TestEncode_ReadsCollapseLengthEveryCall(t *testing.T) {
	t.Cleanup(config.Reset)
	b := New("")
	value := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	assert.Equal(t, "'[...]'", b.EncodeWith(value, EncodeOptions{Collapsible: true}))

	require.NoError(t, config.Set(config.ExpectConfig{CollapseLength: 100}))
	assert.Equal(t, "'[1,2,3,4,5,6,7,8,9,10,11,12]'", b.EncodeWith(value, EncodeOptions{Collapsible: true}))

	config.Reset()
	assert.Equal(t, "'[...]'", b.EncodeWith(value, EncodeOptions{Collapsible: true}))
}

func TestEncode_UnencodableValue(t *testing.T) {
	b := New("")
	out := b.Encode(func() {})

	assert.NotEmpty(t, out)
	assert.Equal(t, byte('\''), out[0])
}
