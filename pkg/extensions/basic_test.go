package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/expect/internal/testutils"
	"github.com/conneroisu/expect/pkg/proxy"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		run      func()
		expected string
	}{
		{"same value", func() { expect("daymon").To().Equal("daymon") }, ""},
		{"negated different", func() { expect("daymon").To().Not().Equal("bryan") }, ""},
		{"slices by identity", func() { s := []int{1}; expect(s).To().Equal(s) }, ""},
		{
			"different types",
			func() { expect(5).To().Equal("5") },
			`Expected '5' (number) to strictly equal "5" (string)`,
		},
		{
			"int and float differ",
			func() { expect(5).To().Equal(5.0) },
			"Expected '5' (number) to strictly equal '5' (number)",
		},
		{
			"undefined actual",
			func() { expect(nil).To().Equal(5) },
			"Expected the value to strictly equal '5' (number), but it was undefined",
		},
		{
			"negated",
			func() { expect(5).To().Not().Equal(5) },
			"Expected '5' (number) to NOT strictly equal '5' (number)",
		},
		{
			"aliases",
			func() { expect(1).Equals(1).And().Eq(2) },
			"Expected '1' (number) to strictly equal '2' (number)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == "" {
				passes(t, tt.run)
				return
			}
			failsWith(t, tt.expected, tt.run)
		})
	}
}

func TestStrictEqual(t *testing.T) {
	a, b := []int{1}, []int{1}
	m := map[string]int{}

	assert.True(t, strictEqual(nil, nil))
	assert.False(t, strictEqual(nil, 0))
	assert.True(t, strictEqual(a, a))
	assert.False(t, strictEqual(a, b))
	assert.True(t, strictEqual(m, m))
	assert.False(t, strictEqual(struct{ v []int }{a}, struct{ v []int }{a}))
	assert.True(t, strictEqual(struct{ v int }{1}, struct{ v int }{1}))
}

func TestStrictEqual_EmptySlices(t *testing.T) {
	var nilA, nilB []int
	backing := make([]int, 0, 4)

	assert.True(t, strictEqual(nilA, nilB))
	assert.False(t, strictEqual(nilA, []int{}))
	assert.False(t, strictEqual([]int{}, []int{}))
	assert.False(t, strictEqual(make([]string, 0), make([]string, 0)))
	assert.True(t, strictEqual(backing, backing))
	assert.True(t, strictEqual(backing[:0], backing[:0:4]))
	assert.False(t, strictEqual(backing[:0:2], backing[:0:4]))

	passes(t, func() { expect([]int{}).To().Not().Equal([]int{}) })
	passes(t, func() { expect(backing).To().Equal(backing) })
	testutils.RequireFailure(t, func() { expect([]int{}).To().Equal([]int{}) }, "to strictly equal")
}

func TestInclude(t *testing.T) {
	passes(t, func() { expect([]string{"a", "b"}).To().Include("b") })
	passes(t, func() { expect("hello").To().Include("ell") })
	passes(t, func() { expect(map[string]int{"a": 1}).To().Include("a") })

	failsWith(t, "Expected '[1,2]' to include '3', but it was missing", func() {
		expect([]int{1, 2}).To().Include(3)
	})
	failsWith(t, `Expected '5' (number) to include '3', but it wasn't an array, map or string`, func() {
		expect(5).To().Include(3)
	})
}

func TestLength(t *testing.T) {
	tests := []struct {
		name     string
		run      func()
		expected string
	}{
		{"array", func() { expect([]int{1, 2, 3}).To().Have().Length(3) }, ""},
		{"string", func() { expect("abc").To().Have().SizeOf(3) }, ""},
		{"map", func() { expect(map[string]int{"a": 1}).To().Have().LengthOf(1) }, ""},
		{
			"array mismatch",
			func() { expect([]int{1, 2, 3}).To().Have().Size(2) },
			"Expected '[1,2,3]' to have exactly '2' element(s), but it actually had '3'",
		},
		{
			"empty array still counted",
			func() { expect([]int{}).To().Have().Size(2) },
			"Expected '[]' to have exactly '2' element(s), but it actually had '0'",
		},
		{
			"string mismatch",
			func() { expect("abc").To().Have().Length(2) },
			`Expected "abc" to have a size of exactly '2', but it actually had a size of '3'`,
		},
		{
			"map mismatch",
			func() { expect(map[string]int{"a": 1}).To().Have().Size(2) },
			"Expected the object to have exactly '2' key(s), but it actually had '1'\n\nValue: '{\"a\":1}'",
		},
		{
			"not iterable",
			func() { expect(5).To().Have().Size(1) },
			"Expected '5' to have a size of '1', but it was not a 'string' or iterable type. Instead, it was a 'number'",
		},
		{
			"undefined",
			func() { expect(nil).To().Have().Size(1) },
			"Expected nil to have a size of '1', but it was undefined",
		},
		{
			"negated",
			func() { expect([]int{1}).To().Not().Have().Size(1) },
			"Expected '[1]' to NOT have exactly '1' element(s), but it did",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == "" {
				passes(t, tt.run)
				return
			}
			failsWith(t, tt.expected, tt.run)
		})
	}
}

func TestEmpty(t *testing.T) {
	passes(t, func() { expect([]int{}).To().Be().Empty() })
	passes(t, func() { expect("").To().Be().Empty() })
	passes(t, func() { expect(map[string]int{}).To().Be().Empty() })

	failsWith(t, "Expected '[1,2]' to be empty, but it had 2 elements", func() { expect([]int{1, 2}).To().Be().Empty() })
	failsWith(t, "Expected '[1]' to be empty, but it had an element", func() { expect([]int{1}).To().Be().Empty() })
	failsWith(t, `Expected "a" to be empty, but it was not`, func() { expect("a").To().Be().Empty() })
	failsWith(t, "Expected the object to be empty, but it had the key 'k'\n\nValue of [k]: '1'", func() {
		expect(map[string]int{"k": 1}).To().Be().Empty()
	})
	failsWith(t, "Expected the object to be empty, but it had 2 keys\n\nValue: '{\"a\":1,\"b\":2}'", func() {
		expect(map[string]int{"a": 1, "b": 2}).To().Be().Empty()
	})
	failsWith(t, "Expected '[]' to NOT be empty", func() { expect([]int{}).To().Not().Be().Empty() })
}

func TestBooleans(t *testing.T) {
	tests := []struct {
		name     string
		run      func()
		expected string
	}{
		{"true", func() { expect(true).To().Be().True() }, ""},
		{"false", func() { expect(false).To().Be().False() }, ""},
		{"truthy", func() { expect(1).To().Be().Truthy() }, ""},
		{"falsy zero value", func() { expect("").To().Be().Falsy() }, ""},
		{"falsy nil", func() { expect(nil).To().Be().Falsy() }, ""},
		{
			"wrong boolean",
			func() { expect(false).To().Be().True() },
			"Expected 'false' to be 'true'",
		},
		{
			"not a boolean",
			func() { expect("x").To().Be().True() },
			`Expected "x" (string) to be 'true', but it wasn't a boolean`,
		},
		{
			"undefined",
			func() { expect(nil).To().Be().False() },
			"Expected the value to be 'false', but it was undefined",
		},
		{
			"negated",
			func() { expect(true).To().Not().Be().True() },
			"Expected 'true' to NOT be 'true', but it was",
		},
		{
			"zero is not truthy",
			func() { expect(0).To().Be().Truthy() },
			"Expected '0' to be truthy, but it was not",
		},
		{
			"falsy",
			func() { expect(1).To().Be().Falsy() },
			"Expected '1' to be falsy, but it was not",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == "" {
				passes(t, tt.run)
				return
			}
			failsWith(t, tt.expected, tt.run)
		})
	}
}

func TestDefined(t *testing.T) {
	var nilPtr *int

	passes(t, func() { expect(5).To().Be().Defined() })
	passes(t, func() { expect(nilPtr).To().Be().Nil() })
	passes(t, func() { expect(nil).To().Not().Exist() })

	failsWith(t, "Expected the value to be defined, but it was undefined.", func() { expect(nil).To().Be().Ok() })
	failsWith(t, "Expected '5' (number) to be undefined, but it was defined", func() { expect(5).To().Be().Undefined() })
	failsWith(t, "Expected the value to NOT be undefined, but it was", func() { expect(nil).To().Not().Be().Null() })
	failsWith(t, "Expected '5' (number) to NOT be defined, but it was", func() { expect(5).To().Not().Be().Defined() })
}

func TestDefined_NearestDefinedProxy(t *testing.T) {
	root := proxy.New(map[string]any{
		"parent": map[string]any{"name": "x"},
	}, nil)

	failsWith(t, "Expected parent.age to be defined, but it was undefined.\n\nparent: '{\"name\":\"x\"}'", func() {
		expect(root.Get("parent").Get("age")).To().Be().Defined()
	})

	failsWith(t, "Expected missing to be defined, but it was undefined.\n\nActual: '{\"parent\":{\"name\":\"x\"}}'", func() {
		expect(root.Get("missing")).To().Be().Defined()
	})
}
