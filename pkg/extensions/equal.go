package extensions

import (
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var equalMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " strictly equal " + place.Expected.Value + " (" + place.Expected.Type + ")",
).
	Name(namedActual).
	NestedMetadata(map[string]any{place.Path: namedActual})

// equal passes when actual == expected. Values of different types are never
// equal, so 5 and "5" differ, as do int(5) and float64(5).
func equal(_ *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := equalMessage.Use().ExpectedValue(expected)

	if isUndefined(actual) && !isUndefined(expected) {
		return msg.
			Name("the value").
			TrailingFailurePrefix(", but it was undefined").
			Fail()
	}

	if strictEqual(actual, expected) {
		return msg.Pass()
	}
	return msg.Fail()
}

var equalMethods = map[string]chain.Method{
	"eq":     equal,
	"equal":  equal,
	"equals": equal,
}
