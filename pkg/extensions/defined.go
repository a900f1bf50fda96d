package extensions

import (
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
	"github.com/conneroisu/expect/pkg/proxy"
)

var definedMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be ",
).
	Name(namedActual).
	TrailingFailurePrefix(", but it " + place.Reason).
	NegationSuffix(", but it was")

// defined fails on nil. When the value came through a proxy, the deepest
// ancestor that is still set is attached to help locate the gap.
func defined(a *chain.Assertion, actual any, _ ...any) message.Result {
	msg := definedMessage.Use("defined")

	if isUndefined(actual) {
		if node := a.Proxy(); node != nil {
			if nearest := proxy.NearestDefined(node); nearest != nil {
				key, ok := proxy.ComputeFullPath(nearest)
				if !ok {
					key = "Actual"
				}
				msg.NestedMetadata(map[string]any{key: msg.Encode(nearest.Value())})
			} else {
				msg.NestedMetadata(map[string]any{"Actual": place.Nil})
			}
		}
		return msg.Name("the value").FailWithReason("was undefined.")
	}

	return msg.
		NestedMetadata(map[string]any{place.Path: place.Actual.Value}).
		Pass()
}

func undefined(_ *chain.Assertion, actual any, _ ...any) message.Result {
	msg := definedMessage.Use("undefined")

	if isUndefined(actual) {
		return msg.Name("the value").Pass()
	}

	return msg.
		NestedMetadata(map[string]any{place.Path: place.Actual.Value}).
		FailWithReason("was defined")
}

var definedMethods = map[string]chain.Method{
	"defined":   defined,
	"ok":        defined,
	"exist":     defined,
	"exists":    defined,
	"undefined": undefined,
	"nil":       undefined,
	"null":      undefined,
}
