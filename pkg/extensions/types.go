package extensions

import (
	"fmt"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

// checkType runs a user-defined type check. fn may be a func(any) error,
// a func(any) bool or any other single-argument function returning bool.
// A panic counts as a failure, with the panic as the reason.
func checkType(method string, fn any, value any) (ok bool, reason string) {
	errCheck, isErrCheck := fn.(func(any) error)

	var boolCheck func(any) bool
	if !isErrCheck {
		boolCheck = predicate(method, fn)
	}

	panicMsg, panicked := recoverMessage(func() {
		if !isErrCheck {
			ok = boolCheck(value)
			return
		}
		if err := errCheck(value); err != nil {
			reason = err.Error()
			return
		}
		ok = true
	})
	if panicked {
		return false, panicMsg
	}
	return ok, reason
}

func isCallback(v any) bool {
	return v != nil && message.TypeOf(v) == message.TypeFunction
}

var arrayMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be an array",
).NestedMetadata(map[string]any{place.Path: place.Actual.Value})

// array checks for a slice or array and, when given, the type of every
// element. On success later checks in the chain treat the value as an
// array without inspecting it again.
func array(a *chain.Assertion, actual any, args ...any) message.Result {
	msg := arrayMessage.Use().TrailingFailurePrefix(", but it " + place.Reason)

	if isUndefined(actual) {
		return msg.FailWithReason("was undefined")
	}
	if !message.IsArray(actual) {
		return msg.FailWithReason("was a '" + message.TypeOf(actual) + "'")
	}

	var res message.Result
	switch elem := arg(args, 0); {
	case elem == nil:
		res = msg.Pass()
	case isCallback(elem):
		res = arrayByCallback(actual, elem)
	default:
		res = arrayByTypeName(actual, fmt.Sprint(elem))
	}

	if res.IsOk() {
		a.SetFlag(isArrayFlag, true)
	}
	return res
}

func arrayByCallback(actual, fn any) message.Result {
	msg := arrayMessage.Use(" of a certain (user-defined) type").
		FailureSuffix(", but there was an element that was not")

	for i, el := range elements(actual) {
		msg.FailureMetadata(map[string]any{"Index": i, "Value": msg.Encode(el)})

		ok, reason := checkType("array", fn, el)
		if reason != "" {
			return msg.FailWithReason(reason)
		}
		if !ok {
			return msg.Fail()
		}
	}
	return msg.Pass()
}

func arrayByTypeName(actual any, typeName string) message.Result {
	msg := arrayMessage.Use(" of type '" + typeName + "'")

	for i, el := range elements(actual) {
		if got := message.TypeOf(el); got != typeName {
			return msg.
				Metadata(map[string]any{"Index": i, "Value": msg.Encode(el)}).
				Suffix(", but there was an element that was a '" + got + "'").
				Fail()
		}
	}
	return msg.Pass()
}

// arrayOf is array with a required element check.
func arrayOf(a *chain.Assertion, actual any, args ...any) message.Result {
	if arg(args, 0) == nil {
		panic(errors.NewMisuseError("ERR_MISSING_ARGUMENT", "'arrayOf' needs an element type name or callback"))
	}
	return array(a, actual, args...)
}

var instanceOfMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be of ",
).NestedMetadata(map[string]any{place.Path: place.Actual.Value})

// instanceOf checks the value against a type name reported by
// message.TypeOf ("number", "string", "object", "*bytes.Buffer", ...) or a
// user-defined callback.
func instanceOf(_ *chain.Assertion, actual any, args ...any) message.Result {
	target := arg(args, 0)

	if isCallback(target) {
		msg := instanceOfMessage.Use("a certain (user-defined) type").
			FailureSuffix(", but it was not")

		ok, reason := checkType("instanceOf", target, actual)
		if reason != "" {
			return msg.Metadata(map[string]any{"Reason": reason}).Fail()
		}
		if !ok {
			return msg.Fail()
		}
		return msg.Pass()
	}

	typeName := fmt.Sprint(target)
	msg := instanceOfMessage.Use("type '" + typeName + "'").
		FailureSuffix(", but it was a '" + place.Actual.Type + "'")

	if message.TypeOf(actual) != typeName {
		return msg.Fail()
	}
	return msg.Pass()
}

func certainType(typeName string) chain.Method {
	return func(a *chain.Assertion, actual any, _ ...any) message.Result {
		return instanceOf(a, actual, typeName)
	}
}

var typeMethods = map[string]chain.Method{
	"array":      array,
	"arrayOf":    arrayOf,
	"instanceOf": instanceOf,
	"typeOf":     instanceOf,
	"number":     certainType(message.TypeNumber),
	"string":     certainType(message.TypeString),
	"boolean":    certainType(message.TypeBoolean),
	"object":     certainType(message.TypeObject),
	"table":      certainType(message.TypeObject),
	"function":   certainType(message.TypeFunction),
}
