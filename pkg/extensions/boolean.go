package extensions

import (
	"reflect"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var booleanMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be ",
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NegationSuffix(", but it was").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func isBoolean(msg *message.Builder, actual any, expected bool) message.Result {
	if isUndefined(actual) {
		return msg.Name("the value").FailWithReason("was undefined")
	}

	b, ok := actual.(bool)
	if !ok {
		return msg.Name(namedActual).FailWithReason("wasn't a boolean")
	}

	if b == expected {
		return msg.Pass()
	}
	return msg.TrailingFailurePrefix("").Fail()
}

func isTrue(_ *chain.Assertion, actual any, _ ...any) message.Result {
	return isBoolean(booleanMessage.Use("'true'"), actual, true)
}

func isFalse(_ *chain.Assertion, actual any, _ ...any) message.Result {
	return isBoolean(booleanMessage.Use("'false'"), actual, false)
}

// truthy reports whether value is set to something other than its zero
// value.
func truthy(value any) bool {
	if isUndefined(value) {
		return false
	}
	return !reflect.ValueOf(value).IsZero()
}

func isTruthy(_ *chain.Assertion, actual any, _ ...any) message.Result {
	msg := booleanMessage.Use("truthy")

	if isUndefined(actual) {
		return msg.Name("the value").FailWithReason("was undefined")
	}
	if truthy(actual) {
		return msg.Pass()
	}
	return msg.FailWithReason("was not")
}

func isFalsy(_ *chain.Assertion, actual any, _ ...any) message.Result {
	msg := booleanMessage.Use("falsy")

	if truthy(actual) {
		return msg.FailWithReason("was not")
	}
	return msg.Pass()
}

var booleanMethods = map[string]chain.Method{
	"true":   isTrue,
	"false":  isFalse,
	"truthy": isTruthy,
	"falsy":  isFalsy,
}
