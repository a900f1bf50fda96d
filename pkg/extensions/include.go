package extensions

import (
	"reflect"
	"strings"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var includeMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " include " + place.Expected.Value,
).
	FailureSuffix(", but it was missing").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

// include checks array elements with strict equality, substrings of a
// string and keys of a map.
func include(a *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := includeMessage.Use().ExpectedValue(expected)

	switch {
	case isUndefined(actual):
		return msg.Name("the value").FailureSuffix(", but it was undefined").Fail()
	case isArray(a, actual):
		for _, el := range elements(actual) {
			if strictEqual(el, expected) {
				return msg.Pass()
			}
		}
		return msg.Fail()
	case isMap(actual):
		if hasMapKey(actual, expected) {
			return msg.Pass()
		}
		return msg.Fail()
	}

	if s, ok := actual.(string); ok {
		if sub, ok := expected.(string); ok && strings.Contains(s, sub) {
			return msg.Pass()
		}
		return msg.Fail()
	}

	return msg.
		Name(namedActual).
		FailureSuffix(", but it wasn't an array, map or string").
		Fail()
}

func hasMapKey(m, key any) bool {
	rv := reflect.ValueOf(m)
	if key == nil {
		return false
	}
	kv := reflect.ValueOf(key)
	if !kv.Type().AssignableTo(rv.Type().Key()) {
		if !kv.Type().ConvertibleTo(rv.Type().Key()) || kv.Kind() != rv.Type().Key().Kind() {
			return false
		}
		kv = kv.Convert(rv.Type().Key())
	}
	return rv.MapIndex(kv).IsValid()
}

var includeMethods = map[string]chain.Method{
	"contain":  include,
	"include":  include,
	"includes": include,
}
