package extensions

import (
	"math"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var comparatorMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be " + place.Reason + " " + place.Expected.Value,
).
	NegationSuffix(", but it was").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

type comparison struct {
	reason  string
	greater bool
	orEqual bool
}

func (c comparison) method(_ *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := comparatorMessage.Use().Reason(c.reason).ExpectedValue(expected)

	if isUndefined(actual) {
		return msg.Name("the value").TrailingFailurePrefix(", but it was undefined").Fail()
	}

	n, ok := toFloat(actual)
	if !ok {
		return msg.Name(namedActual).TrailingFailurePrefix(", but it wasn't a number").Fail()
	}
	target, _ := toFloat(expected)

	if c.orEqual && n == target {
		return msg.NegationSuffix(", but they were equal").Pass()
	}

	if (c.greater && n > target) || (!c.greater && n < target) {
		return msg.Pass()
	}
	return msg.Fail()
}

var signMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be ",
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NegationSuffix(", but it was").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

// number returns actual as a float64, or the failure to report when it is
// not a number.
func number(msg *message.Builder, actual any) (float64, *message.Result) {
	if isUndefined(actual) {
		res := msg.Name("the value").FailWithReason("was undefined")
		return 0, &res
	}

	n, ok := toFloat(actual)
	if !ok {
		res := msg.Name(namedActual).FailWithReason("wasn't a number")
		return 0, &res
	}
	return n, nil
}

func parity(even bool) chain.Method {
	word, opposite := "odd", "even"
	if even {
		word, opposite = "even", "odd"
	}

	return func(_ *chain.Assertion, actual any, _ ...any) message.Result {
		msg := signMessage.Use(word)

		n, failure := number(msg, actual)
		if failure != nil {
			return *failure
		}

		if (math.Mod(n, 2) == 0) == even {
			return msg.Pass()
		}
		return msg.FailWithReason("was " + opposite)
	}
}

func sign(positive bool) chain.Method {
	word, opposite := "negative", "positive"
	if positive {
		word, opposite = "positive", "negative"
	}

	return func(_ *chain.Assertion, actual any, _ ...any) message.Result {
		msg := signMessage.Use("a " + word + " number").Reason("was " + opposite)

		n, failure := number(msg, actual)
		if failure != nil {
			return *failure
		}

		switch {
		case n == 0:
			return msg.FailWithReason("was neutral")
		case (n > 0) == positive:
			return msg.Pass()
		default:
			return msg.Fail()
		}
	}
}

func finite(_ *chain.Assertion, actual any, _ ...any) message.Result {
	msg := signMessage.Use("a finite number")

	n, failure := number(msg, actual)
	if failure != nil {
		return *failure
	}

	switch {
	case math.IsInf(n, 1):
		return msg.FailWithReason("was '+Inf'")
	case math.IsInf(n, -1):
		return msg.FailWithReason("was '-Inf'")
	case math.IsNaN(n):
		return msg.FailWithReason("was 'NaN'")
	}
	return msg.Pass()
}

var numericMethods = func() map[string]chain.Method {
	gt := comparison{reason: "greater than", greater: true}.method
	gte := comparison{reason: "greater than or equal to", greater: true, orEqual: true}.method
	lt := comparison{reason: "less than"}.method
	lte := comparison{reason: "less than or equal to", orEqual: true}.method

	return map[string]chain.Method{
		"greaterThan":          gt,
		"gt":                   gt,
		"above":                gt,
		"greaterThanOrEqualTo": gte,
		"gte":                  gte,
		"least":                gte,
		"lessThan":             lt,
		"lt":                   lt,
		"below":                lt,
		"lessThanOrEqualTo":    lte,
		"lte":                  lte,
		"most":                 lte,
		"even":                 parity(true),
		"odd":                  parity(false),
		"positive":             sign(true),
		"negative":             sign(false),
		"finite":               finite,
	}
}()
