package extensions

import (
	"fmt"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

// filterArgs splits the optional leading description from the predicate.
func filterArgs(method string, args []any) (reason string, check func(any) bool) {
	fn := arg(args, 0)
	if s, ok := fn.(string); ok {
		reason = s
		fn = arg(args, 1)
	}
	return reason, predicate(method, fn)
}

var allMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " all " + place.Reason,
).
	NegationSuffix(", but they did").
	Reason("pass some check").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func all(a *chain.Assertion, actual any, args ...any) message.Result {
	reason, check := filterArgs("all", args)

	msg := allMessage.Use()
	if reason != "" {
		msg.Reason(reason)
	}

	if isUndefined(actual) {
		return msg.Name("the values").TrailingFailurePrefix(", but it was undefined").Fail()
	}
	if !isArray(a, actual) {
		return msg.TrailingFailurePrefix(", but it wasn't an array").Fail()
	}

	for i, el := range elements(actual) {
		if !check(el) {
			return msg.
				TrailingFailurePrefix(", but there was an element that failed the check").
				Metadata(map[string]any{"Index": i, "Value": msg.Encode(el)}).
				Fail()
		}
	}
	return msg.Pass()
}

var someMessage = message.New(
	"Expected "+place.Name+" to have at least one element that "+place.Reason,
	message.WithNegationPrefix("Expected "+place.Name+" to "+place.Not+" have any elements that "+place.Reason),
).
	Reason("passes some check").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func some(a *chain.Assertion, actual any, args ...any) message.Result {
	reason, check := filterArgs("some", args)

	msg := someMessage.Use()
	if reason != "" {
		msg.Reason(reason)
	}

	if isUndefined(actual) {
		return msg.Name("the value").TrailingFailurePrefix(", but it was undefined").Fail()
	}
	if !isArray(a, actual) {
		return msg.TrailingFailurePrefix(", but it wasn't an array").Fail()
	}

	for i, el := range elements(actual) {
		if check(el) {
			return msg.
				NegationSuffix(fmt.Sprintf(", but it did at index '%d'", i)).
				Metadata(map[string]any{fmt.Sprintf("Value of [%d]", i): msg.Encode(el)}).
				Pass()
		}
	}
	return msg.Fail()
}

var quantifierMethods = map[string]chain.Method{
	"all":  all,
	"some": some,
}
