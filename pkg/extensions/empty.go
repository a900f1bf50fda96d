package extensions

import (
	"fmt"
	"reflect"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var emptyMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be empty",
).NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func empty(a *chain.Assertion, actual any, _ ...any) message.Result {
	switch {
	case isArray(a, actual):
		return emptyArray(actual)
	case isMap(actual):
		return emptyMap(actual)
	}

	msg := emptyMessage.Use()
	if s, ok := actual.(string); ok {
		if s == "" {
			return msg.Pass()
		}
		return msg.Suffix(", but it was not").Fail()
	}

	if isUndefined(actual) {
		return msg.Suffix(", but it was undefined").Fail()
	}
	return msg.
		Suffix(", but it was not a 'string' or iterable type. Instead, it was a '" + place.Actual.Type + "'").
		Fail()
}

func emptyArray(actual any) message.Result {
	msg := emptyMessage.Use()

	switch n := reflect.ValueOf(actual).Len(); n {
	case 0:
		return msg.Pass()
	case 1:
		return msg.Suffix(", but it had an element").Fail()
	default:
		return msg.Suffix(fmt.Sprintf(", but it had %d elements", n)).Fail()
	}
}

func emptyMap(actual any) message.Result {
	msg := emptyMessage.Use().Name("the object")

	rv := reflect.ValueOf(actual)
	switch n := rv.Len(); n {
	case 0:
		return msg.Pass()
	case 1:
		iter := rv.MapRange()
		iter.Next()
		key := fmt.Sprint(iter.Key().Interface())
		return msg.
			Suffix(", but it had the key '" + key + "'").
			ExpectedValue(iter.Value().Interface()).
			SurfaceMetadata(map[string]any{"Value of [" + key + "]": place.Expected.Value}).
			Fail()
	default:
		return msg.
			Suffix(fmt.Sprintf(", but it had %d keys", n)).
			SurfaceMetadata(map[string]any{"Value": place.Actual.Value}).
			Fail()
	}
}

var emptyMethods = map[string]chain.Method{
	"empty": empty,
}
