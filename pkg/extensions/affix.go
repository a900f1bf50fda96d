package extensions

import (
	"fmt"
	"strings"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var affixMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be ",
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NestedMetadata(map[string]any{place.Path: place.Actual.Value}).
	NegationSuffix(", but it did")

// affix implements startWith and endWith. Strings are matched as a prefix
// or suffix; arrays compare their leading or trailing elements.
type affix struct {
	verb      string
	fromStart bool
}

func (f affix) method(a *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	if s, ok := expected.(string); ok {
		return f.matchString(actual, s)
	}
	return f.matchArray(a, actual, expected)
}

func (f affix) matchString(actual any, expected string) message.Result {
	msg := affixMessage.Use("a string that " + f.verb + " " + place.Expected.Value).ExpectedValue(expected)

	if isUndefined(actual) {
		return msg.Name("the value").FailWithReason("was undefined")
	}

	s, ok := actual.(string)
	if !ok {
		return msg.Name(namedActual).FailWithReason("wasn't a string")
	}

	matched := strings.HasSuffix(s, expected)
	if f.fromStart {
		matched = strings.HasPrefix(s, expected)
	}
	if matched {
		return msg.Pass()
	}
	return msg.FailWithReason("was missing")
}

func (f affix) matchArray(a *chain.Assertion, actual, expected any) message.Result {
	msg := affixMessage.Use("an array that " + f.verb + " " + place.Expected.Value).ExpectedValue(expected)

	if isUndefined(actual) {
		return msg.Name("the value").FailWithReason("was undefined")
	}
	if !isArray(a, actual) {
		return msg.Name(namedActual).FailWithReason("wasn't an array")
	}

	got, want := elements(actual), elements(expected)
	offset := 0
	if !f.fromStart {
		offset = len(got) - len(want)
	}

	var missing []any
	for i, el := range want {
		j := offset + i
		if j < 0 || j >= len(got) || !strictEqual(got[j], el) {
			missing = append(missing, el)
		}
	}

	switch {
	case len(missing) == 0:
		return msg.Pass()
	case len(missing) == len(want):
		return msg.FailWithReason("was missing all of them")
	case len(missing) > 1:
		return msg.
			Metadata(map[string]any{"Missing": msg.Encode(missing)}).
			FailWithReason(fmt.Sprintf("was missing %d elements", len(missing)))
	default:
		return msg.FailWithReason("was missing " + msg.Encode(missing[0]))
	}
}

var affixMethods = func() map[string]chain.Method {
	start := affix{verb: "starts with", fromStart: true}.method
	end := affix{verb: "ends with"}.method

	return map[string]chain.Method{
		"startWith":  start,
		"startsWith": start,
		"endWith":    end,
		"endsWith":   end,
	}
}()
