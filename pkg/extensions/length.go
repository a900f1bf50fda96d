package extensions

import (
	"fmt"
	"reflect"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var lengthMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " have ",
).
	NestedMetadata(map[string]any{place.Path: place.Actual.Value}).
	NegationSuffix(", but it did")

// length counts elements of arrays, keys of maps and bytes of strings.
func length(a *chain.Assertion, actual any, args ...any) message.Result {
	size := arg(args, 0)

	switch {
	case isArray(a, actual):
		return arrayLength(actual, size)
	case isMap(actual):
		return mapLength(actual, size)
	}

	if s, ok := actual.(string); ok {
		return stringLength(s, size)
	}

	msg := lengthMessage.Use("a size of " + place.Expected.Value).ExpectedValue(size)
	if isUndefined(actual) {
		return msg.Suffix(", but it was undefined").Fail()
	}
	return msg.
		Suffix(", but it was not a 'string' or iterable type. Instead, it was a '" + place.Actual.Type + "'").
		Fail()
}

func arrayLength(actual, size any) message.Result {
	msg := lengthMessage.Use("exactly " + place.Expected.Value + " element(s)").ExpectedValue(size)

	n := reflect.ValueOf(actual).Len()
	if sameSize(n, size) {
		return msg.Pass()
	}
	return msg.Suffix(fmt.Sprintf(", but it actually had '%d'", n)).Fail()
}

func mapLength(actual, size any) message.Result {
	msg := lengthMessage.Use("exactly " + place.Expected.Value + " key(s)").
		Name("the object").
		SurfaceMetadata(map[string]any{"Value": place.Actual.Value}).
		ExpectedValue(size)

	n := reflect.ValueOf(actual).Len()
	if sameSize(n, size) {
		return msg.Pass()
	}
	return msg.Suffix(fmt.Sprintf(", but it actually had '%d'", n)).Fail()
}

func stringLength(actual string, size any) message.Result {
	msg := lengthMessage.Use("a size of exactly " + place.Expected.Value).ExpectedValue(size)

	if sameSize(len(actual), size) {
		return msg.Pass()
	}
	return msg.Suffix(fmt.Sprintf(", but it actually had a size of '%d'", len(actual))).Fail()
}

func sameSize(n int, size any) bool {
	expected, ok := toInt(size)
	return ok && n == expected
}

var lengthMethods = map[string]chain.Method{
	"length":   length,
	"lengthOf": length,
	"size":     length,
	"sizeOf":   length,
}
