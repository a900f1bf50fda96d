package extensions

import (
	"fmt"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var containExactlyMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " contain exactly " + place.Expected.Value,
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

// arrayOperand returns the elements of actual, or the failure to report when
// it is not an array.
func arrayOperand(a *chain.Assertion, msg *message.Builder, actual any) ([]any, *message.Result) {
	if isUndefined(actual) {
		res := msg.Name("the value").FailWithReason("was undefined")
		return nil, &res
	}
	if !isArray(a, actual) {
		res := msg.Name(namedActual).FailWithReason("wasn't an array")
		return nil, &res
	}
	return elements(actual), nil
}

// containExactly compares the elements as multisets.
func containExactly(a *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := containExactlyMessage.Use().ExpectedValue(expected)

	got, failure := arrayOperand(a, msg, actual)
	if failure != nil {
		return *failure
	}

	extra := make([]any, 0, len(got))
	matched := make([]bool, len(got))
	var missing []any

	for _, want := range elements(expected) {
		found := false
		for i, el := range got {
			if !matched[i] && deepEquals(el, want) {
				matched[i], found = true, true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	for i, el := range got {
		if !matched[i] {
			extra = append(extra, el)
		}
	}

	switch {
	case len(missing) > 0 && len(extra) > 0:
		return msg.
			Metadata(map[string]any{
				"Extra elements":   msg.Encode(extra),
				"Missing elements": msg.Encode(missing),
			}).
			FailWithReason("was elements missing and it had extra elements")
	case len(missing) > 0:
		return msg.
			Metadata(map[string]any{"Missing elements": msg.Encode(missing)}).
			FailWithReason("was missing elements")
	case len(extra) > 0:
		return msg.
			Metadata(map[string]any{"Extra elements": msg.Encode(extra)}).
			FailWithReason("had extra elements")
	}
	return msg.Pass()
}

// containExactlyInOrder compares the elements position by position.
func containExactlyInOrder(a *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := containExactlyMessage.Use().ExpectedValue(expected)

	got, failure := arrayOperand(a, msg, actual)
	if failure != nil {
		return *failure
	}
	want := elements(expected)

	for i := 0; i < len(got) && i < len(want); i++ {
		if deepEquals(got[i], want[i]) {
			continue
		}

		at := fmt.Sprintf("[%d]", i)
		gotType, wantType := message.TypeOf(got[i]), message.TypeOf(want[i])
		if gotType != wantType {
			return msg.
				Metadata(map[string]any{
					"Expected " + at: msg.Encode(want[i]) + " (" + wantType + ")",
					"Actual " + at:   msg.Encode(got[i]) + " (" + gotType + ")",
				}).
				FailWithReason("had a different type of element at '" + at + "'")
		}
		return msg.
			Metadata(map[string]any{
				"Expected " + at: msg.Encode(want[i]),
				"Actual " + at:   msg.Encode(got[i]),
			}).
			FailWithReason("had a different value for the element at '" + at + "'")
	}

	switch {
	case len(got)-len(want) == 1:
		return msg.
			Metadata(map[string]any{"Extra element": msg.Encode(got[len(want)])}).
			FailWithReason("had an extra element")
	case len(got) > len(want):
		return msg.
			Metadata(map[string]any{"Extra elements": msg.Encode(got[len(want):])}).
			FailWithReason("had extra elements")
	case len(want)-len(got) == 1:
		return msg.
			Metadata(map[string]any{"Missing element": msg.Encode(want[len(got)])}).
			FailWithReason("was missing an element")
	case len(want) > len(got):
		return msg.
			Metadata(map[string]any{"Missing elements": msg.Encode(want[len(got):])}).
			FailWithReason("was missing elements")
	}
	return msg.Pass()
}

var exactlyMethods = map[string]chain.Method{
	"containExactly":         containExactly,
	"containsExactly":        containExactly,
	"containExactlyInOrder":  containExactlyInOrder,
	"containsExactlyInOrder": containExactlyInOrder,
}
