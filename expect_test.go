package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/internal/testutils"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
	"github.com/conneroisu/expect/pkg/proxy"
)

func TestExpect(t *testing.T) {
	assert.Nil(t, Capture(func() {
		Expect(5).To().Equal(5).And().Not().Equal(4)
		Expect([]int{1, 2, 3}).To().Have().Length(3)
		Expect("hello").To().Not().Be().Empty()
	}))

	failure := Capture(func() { Expect(5).To().Equal(4) })
	require.NotNil(t, failure)
	assert.Equal(t, "Expected '5' (number) to strictly equal '4' (number)", failure.Message)
}

func TestExpect_Name(t *testing.T) {
	failure := Capture(func() { Expect(5, "the count").To().Equal(4) })
	require.NotNil(t, failure)
	assert.Contains(t, failure.Message, "Expected the count to strictly equal '4'")
}

func TestCapture_RepanicsOtherValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		Capture(func() { panic("boom") })
	})
}

type recordingT struct {
	fatal []any
}

func (r *recordingT) Helper()           {}
func (r *recordingT) Fatal(args ...any) { r.fatal = args }

func TestFor(t *testing.T) {
	rt := &recordingT{}
	e := For(rt)

	e(3).To().Be().Odd()
	assert.Empty(t, rt.fatal)

	e(3, "three").To().Be().Even()
	require.Len(t, rt.fatal, 1)
	assert.Contains(t, rt.fatal[0], "three")
}

func TestFor_RealTest(t *testing.T) {
	e := For(t)
	e(map[string]int{"a": 1}).To().Have().Key("a")
	e(2.5).To().Be().Between(1, 3)
}

func TestWithProxy(t *testing.T) {
	parent := testutils.NewTestParent()

	msg := testutils.RequireFailure(t, func() {
		WithProxy(parent, func(p *proxy.Node) *chain.Assertion {
			return Expect(p.Get("Son").Get("Age")).To().Equal(4)
		})
	})
	assert.Equal(t, "Expected Son.Age to strictly equal '4' (number)\n\nSon.Age: '5' (number)", msg)

	root := Track(parent)
	testutils.RequireNoFailure(t, func() {
		Expect(root.Get("Children").Get(1).Get("Name")).To().Equal("Ari")
	})
}

func TestExtend(t *testing.T) {
	Extend(map[string]chain.Method{
		"divisibleBy": func(_ *chain.Assertion, actual any, args ...any) message.Result {
			msg := message.New(
				"Expected " + message.Place.Name + " to " + message.Place.Not + " be divisible by " + message.Place.Expected.Value,
			).Use().ExpectedValue(args[0])
			if actual.(int)%args[0].(int) == 0 {
				return msg.Pass()
			}
			return msg.Fail()
		},
	})
	ExtendNOPs("certainly")
	ExtendNegations("hardly")

	assert.Nil(t, Capture(func() {
		Expect(9).Word("certainly").Invoke("divisibleBy", 3)
	}))

	failure := Capture(func() { Expect(9).Word("hardly").Invoke("divisibleBy", 3) })
	require.NotNil(t, failure)
	assert.Equal(t, "Expected '9' to NOT be divisible by '3'", failure.Message)
}
