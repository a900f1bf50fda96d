package extensions

import (
	"fmt"
	"reflect"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var keyMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " have the key " + place.Expected.Value,
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NestedMetadata(map[string]any{place.Path: namedActual})

// lookupKey reads key from a map, or the exported field named key from a
// struct or struct pointer.
func lookupKey(container, key any) (any, bool) {
	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if !hasMapKey(rv.Interface(), key) {
			return nil, false
		}
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(rv.Type().Key()) {
			kv = kv.Convert(rv.Type().Key())
		}
		return rv.MapIndex(kv).Interface(), true
	case reflect.Struct:
		name, ok := key.(string)
		if !ok {
			return nil, false
		}
		field, ok := rv.Type().FieldByName(name)
		if !ok || !field.IsExported() {
			return nil, false
		}
		return rv.FieldByIndex(field.Index).Interface(), true
	}
	return nil, false
}

func isObject(value any) bool {
	return message.TypeOf(value) == message.TypeObject
}

func key(_ *chain.Assertion, actual any, args ...any) message.Result {
	k := arg(args, 0)
	msg := keyMessage.Use().ExpectedValue(k)

	if isUndefined(actual) {
		return msg.Name("the value").FailWithReason("was undefined")
	}
	if !isObject(actual) {
		return msg.Name(namedActual).FailWithReason("wasn't a map or struct")
	}

	value, ok := lookupKey(actual, k)
	if !ok {
		return msg.FailWithReason("was missing")
	}
	return msg.
		Metadata(map[string]any{fmt.Sprint(k): msg.Encode(value)}).
		Pass()
}

var anyOfMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be any of " + place.Expected.Value,
).
	Name(namedActual).
	NestedMetadata(map[string]any{"Value": place.Actual.Value})

// anyOf takes the candidates as arguments, or a single slice holding them.
func anyOf(_ *chain.Assertion, actual any, args ...any) message.Result {
	candidates := args
	if len(args) == 1 && message.IsArray(args[0]) {
		candidates = elements(args[0])
	}

	msg := anyOfMessage.Use().ExpectedValue(candidates)
	for _, c := range candidates {
		if strictEqual(actual, c) {
			return msg.Pass()
		}
	}
	return msg.Fail()
}

var satisfyMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " satisfy ",
).
	Name(namedActual).
	NestedMetadata(map[string]any{place.Path: namedActual})

func satisfy(_ *chain.Assertion, actual any, args ...any) message.Result {
	fn := arg(args, 0)
	check := predicate("satisfy", fn)

	name := funcName(fn)
	if name == "" {
		name = "a given callback"
	}
	msg := satisfyMessage.Use(name)

	if check(actual) {
		return msg.Pass()
	}
	return msg.TrailingFailurePrefix(", but it didn't").Fail()
}

var objectMethods = map[string]chain.Method{
	"key":       key,
	"property":  key,
	"anyOf":     anyOf,
	"satisfy":   satisfy,
	"satisfies": satisfy,
}
