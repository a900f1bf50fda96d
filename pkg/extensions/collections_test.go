package extensions

import (
	"testing"

	"github.com/conneroisu/expect/internal/testutils"
)

func isEvenInt(v int) bool {
	return v%2 == 0
}

func TestContainExactly(t *testing.T) {
	passes(t, func() { expect([]int{1, 2, 3}).To().ContainExactly([]int{3, 1, 2}) })
	passes(t, func() { expect([]any{[]int{1}, "a"}).To().ContainsExactly([]any{"a", []int{1}}) })
	passes(t, func() { expect([]int{1, 1}).To().Not().ContainExactly([]int{1}) })

	failsWith(t, "Expected '[1,2]' to contain exactly '[1,3]', but it was elements missing and it had extra elements\n\nExtra elements: '[2]'\nMissing elements: '[3]'", func() {
		expect([]int{1, 2}).To().ContainExactly([]int{1, 3})
	})
	failsWith(t, "Expected '[1]' to contain exactly '[1,2]', but it was missing elements\n\nMissing elements: '[2]'", func() {
		expect([]int{1}).To().ContainExactly([]int{1, 2})
	})
	failsWith(t, "Expected '[1,2]' to contain exactly '[1]', but it had extra elements\n\nExtra elements: '[2]'", func() {
		expect([]int{1, 2}).To().ContainExactly([]int{1})
	})
	failsWith(t, "Expected '5' (number) to contain exactly '[1]', but it wasn't an array", func() {
		expect(5).To().ContainExactly([]int{1})
	})
	failsWith(t, "Expected the value to contain exactly '[1]', but it was undefined", func() {
		expect(nil).To().ContainExactly([]int{1})
	})
}

func TestContainExactlyInOrder(t *testing.T) {
	passes(t, func() { expect([]string{"a", "b"}).To().ContainExactlyInOrder([]string{"a", "b"}) })
	passes(t, func() { expect([]int{1, 2}).To().Not().ContainsExactlyInOrder([]int{2, 1}) })

	tests := []struct {
		name     string
		actual   any
		expected any
		message  string
	}{
		{
			name:     "different value",
			actual:   []int{1, 2},
			expected: []int{2, 1},
			message:  "Expected '[1,2]' to contain exactly '[2,1]', but it had a different value for the element at '[0]'\n\nActual [0]: '1'\nExpected [0]: '2'",
		},
		{
			name:     "different type",
			actual:   []any{1},
			expected: []any{"1"},
			message:  "Expected '[1]' to contain exactly '[\"1\"]', but it had a different type of element at '[0]'\n\nActual [0]: '1' (number)\nExpected [0]: \"1\" (string)",
		},
		{
			name:     "one extra",
			actual:   []int{1, 2},
			expected: []int{1},
			message:  "Expected '[1,2]' to contain exactly '[1]', but it had an extra element\n\nExtra element: '2'",
		},
		{
			name:     "several extra",
			actual:   []int{1, 2, 3},
			expected: []int{1},
			message:  "Expected '[1,2,3]' to contain exactly '[1]', but it had extra elements\n\nExtra elements: '[2,3]'",
		},
		{
			name:     "one missing",
			actual:   []int{1},
			expected: []int{1, 2},
			message:  "Expected '[1]' to contain exactly '[1,2]', but it was missing an element\n\nMissing element: '2'",
		},
		{
			name:     "several missing",
			actual:   []int{},
			expected: []int{1, 2},
			message:  "Expected '[]' to contain exactly '[1,2]', but it was missing elements\n\nMissing elements: '[1,2]'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failsWith(t, tt.message, func() {
				expect(tt.actual).To().ContainExactlyInOrder(tt.expected)
			})
		})
	}
}

func TestAll(t *testing.T) {
	passes(t, func() { expect([]int{2, 4}).To().All(isEvenInt) })
	passes(t, func() { expect([]int{}).To().All("be even", isEvenInt) })

	failsWith(t, "Expected '[2,3]' to all be even, but there was an element that failed the check\n\nIndex: 1\nValue: '3'", func() {
		expect([]int{2, 3}).To().All("be even", isEvenInt)
	})
	failsWith(t, "Expected '[2,3]' to all pass some check, but there was an element that failed the check\n\nIndex: 1\nValue: '3'", func() {
		expect([]int{2, 3}).To().All(isEvenInt)
	})
	failsWith(t, "Expected '[2,4]' to NOT all pass some check, but they did", func() {
		expect([]int{2, 4}).To().Not().All(isEvenInt)
	})
	failsWith(t, "Expected '5' to all pass some check, but it wasn't an array", func() {
		expect(5).To().All(isEvenInt)
	})
	failsWith(t, "Expected the values to all be even, but it was undefined", func() {
		expect(nil).To().All("be even", isEvenInt)
	})
}

func TestSome(t *testing.T) {
	passes(t, func() { expect([]int{1, 2}).To().Some(isEvenInt) })
	passes(t, func() { expect([]int{1, 3}).To().Not().Some("is even", isEvenInt) })

	failsWith(t, "Expected '[1,3]' to have at least one element that is even", func() {
		expect([]int{1, 3}).To().Some("is even", isEvenInt)
	})
	failsWith(t, "Expected '[1,2]' to NOT have any elements that is even, but it did at index '1'\n\nValue of [1]: '2'", func() {
		expect([]int{1, 2}).To().Not().Some("is even", isEvenInt)
	})
	failsWith(t, "Expected '[]' to have at least one element that passes some check", func() {
		expect([]int{}).To().Some(isEvenInt)
	})
}

func TestAll_TypedClosure(t *testing.T) {
	parent := testutils.NewTestParent()
	ages := make([]int, 0, len(parent.Children))
	for _, c := range parent.Children {
		ages = append(ages, c.Age)
	}

	passes(t, func() { expect(ages).To().All(func(v int) bool { return v >= 0 }) })
}
