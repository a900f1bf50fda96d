package extensions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/internal/testutils"
)

func TestDeepEqual(t *testing.T) {
	passes(t, func() { expect(map[string]int{"a": 1}).To().DeepEqual(map[string]int{"a": 1}) })
	passes(t, func() { expect([]int{1, 2}).To().Eql([]int{1, 2}) })
	passes(t, func() { expect(testutils.NewTestParent()).To().DeepEquals(testutils.NewTestParent()) })
	passes(t, func() { expect([]int{1}).To().Not().DeepEqual([]int{2}) })

	tests := []struct {
		name     string
		actual   any
		expected any
		message  string
	}{
		{
			name:     "different root values",
			actual:   1,
			expected: 2,
			message:  "Expected '1' to deep equal '2', but they have different values\n\nExpected: '2' (number)\nActual: '1' (number)",
		},
		{
			name:     "different root types",
			actual:   1,
			expected: "1",
			message:  "Expected '1' to deep equal \"1\", but they have different types\n\nExpected: \"1\" (string)\nActual: '1' (number)",
		},
		{
			name:     "different nested value",
			actual:   map[string]int{"a": 1},
			expected: map[string]int{"a": 2},
			message:  "Expected '{\"a\":1}' to deep equal '{\"a\":2}', but 'a' has a different value\n\nExpected: '2' (number)\nActual: '1' (number)",
		},
		{
			name:     "missing key",
			actual:   map[string]int{"a": 1},
			expected: map[string]int{"a": 1, "b": 2},
			message:  "Expected '{\"a\":1}' to deep equal '{\"a\":1,\"b\":2}', but 'b' was missing\n\nExpected: '2' (number)",
		},
		{
			name:     "extra key",
			actual:   map[string]int{"a": 1, "b": 2},
			expected: map[string]int{"a": 1},
			message:  "Expected '{\"a\":1,\"b\":2}' to deep equal '{\"a\":1}', but it had the extra key 'b'\n\nb: '2' (number)",
		},
		{
			name:     "missing elements",
			actual:   []int{1, 2, 3},
			expected: []int{1, 2, 3, 4},
			message:  "Expected '[1,2,3]' to deep equal '[1,2,3,4]', but there were elements missing\n\nExpected: '[1,2,3,4]'\nActual: '[1,2,3]'\nMissing: '[4]'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failsWith(t, tt.message, func() {
				expect(tt.actual).To().DeepEqual(tt.expected)
			})
		})
	}
}

func TestDeepEqual_NestedPaths(t *testing.T) {
	actual := map[string]any{"parent": map[string]any{"age": 5}}
	expected := map[string]any{"parent": map[string]any{"age": 6}}

	testutils.RequireFailure(t, func() {
		expect(actual).To().DeepEqual(expected)
	}, ", but 'parent.age' has a different value", "Expected: '6' (number)", "Actual: '5' (number)")

	son := testutils.TestSon{Name: "Tim", Age: 1}
	testutils.RequireFailure(t, func() {
		expect(son).To().DeepEqual(testutils.TestSon{Name: "Tim", Age: 2})
	}, ", but 'Age' has a different value")

	testutils.RequireFailure(t, func() {
		expect(map[string][]int{"xs": {1}}).To().DeepEqual(map[string][]int{"xs": {1, 2}})
	}, ", but 'xs' was missing some elements", "Missing: '[2]'")
}

func TestDeepEqual_ExtraElements(t *testing.T) {
	testutils.RequireFailure(t, func() {
		expect([]int{1, 2, 3}).To().DeepEqual([]int{1})
	}, ", but there were extra elements", "Extra Elements: '[2,3]'")
}

func TestMatch(t *testing.T) {
	passes(t, func() { expect(map[string]int{"a": 1, "b": 2}).To().Match(map[string]int{"a": 1}) })
	passes(t, func() {
		expect(map[string]any{"a": map[string]any{"b": 1, "c": 2}}).To().Matches(map[string]any{"a": map[string]any{"b": 1}})
	})

	failsWith(t, "Expected '{\"a\":1}' to match '{\"b\":2}', but 'b' was missing\n\nExpected: '2' (number)", func() {
		expect(map[string]int{"a": 1}).To().Match(map[string]int{"b": 2})
	})
	failsWith(t, "Expected '{\"a\":1,\"b\":2}' to NOT match '{\"a\":1}'", func() {
		expect(map[string]int{"a": 1, "b": 2}).To().Not().Match(map[string]int{"a": 1})
	})
}

func TestFormatPath(t *testing.T) {
	r := &diffReporter{}
	cmp.Equal(
		map[string]any{"children": []any{map[string]any{"name": "a"}}},
		map[string]any{"children": []any{map[string]any{"name": "b"}}},
		cmp.Reporter(r),
	)

	require.NotNil(t, r.first)
	assert.Equal(t, "children[0].name", r.first.path)
	assert.Equal(t, differentValues, r.first.kind)
}
