package extensions

import (
	"testing"

	"github.com/conneroisu/expect/internal/testutils"
	"github.com/conneroisu/expect/pkg/proxy"
)

func TestScenario_Equal(t *testing.T) {
	passes(t, func() { expect(5).To().Equal(5) })

	testutils.RequireFailure(t, func() { expect(5).To().Equal("5") },
		"'5' (number)", `"5" (string)`)
}

func TestScenario_Include(t *testing.T) {
	passes(t, func() { expect([]int{1, 2}).To().Not().Include(3) })

	testutils.RequireFailure(t, func() { expect([]int{1, 2}).To().Include(3) },
		"'3'", "missing")
}

func TestScenario_ProxyPath(t *testing.T) {
	root := proxy.New(map[string]any{
		"parent": map[string]any{"age": 5},
	}, nil)

	failsWith(t, "Expected parent.age to strictly equal \"5\" (string)\n\nparent.age: '5' (number)", func() {
		expect(root.Get("parent").Get("age")).To().Equal("5")
	})
	passes(t, func() { expect(root.Get("parent").Get("age")).To().Equal(5) })
}

func TestScenario_Size(t *testing.T) {
	passes(t, func() { expect([]int{1, 2, 3}).To().Have().Size(3) })

	testutils.RequireFailure(t, func() { expect([]int{1, 2, 3}).To().Have().Size(2) },
		"'2'", "'3'")
}
