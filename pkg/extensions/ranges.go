package extensions

import (
	"context"
	"math"
	"strconv"

	"github.com/conneroisu/expect/internal/logging"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

// Epsilon is the default margin of near, the gap between 1 and the next
// representable float64.
const Epsilon = 2.220446049250313e-16

var betweenMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be a number between ",
).
	NegationSuffix(", but it was").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func between(_ *chain.Assertion, actual any, args ...any) message.Result {
	lower, _ := toFloat(arg(args, 0))
	upper, _ := toFloat(arg(args, 1))

	msg := betweenMessage.
		Use(formatNumber(lower)+" and "+formatNumber(upper)).
		TrailingFailurePrefix(", but it " + place.Reason)

	if upper < lower {
		logging.Default().WithComponent("extensions").Warn(context.Background(), nil,
			"'between' called with a max that is less than the min; this is undefined behavior",
			"min", lower,
			"max", upper,
		)
	}

	n, failure := number(msg, actual)
	if failure != nil {
		return *failure
	}

	switch {
	case n > upper:
		return msg.FailWithReason("was too high")
	case n < lower:
		return msg.FailWithReason("was too low")
	}
	return msg.Pass()
}

var nearMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " be a number close to " + place.Expected.Value,
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NegationSuffix(", but it was").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func near(_ *chain.Assertion, actual any, args ...any) message.Result {
	target, _ := toFloat(arg(args, 0))
	margin := Epsilon
	if m, ok := toFloat(arg(args, 1)); ok {
		margin = m
	}

	msg := nearMessage.Use().ExpectedValue(arg(args, 0))

	if margin < 0 {
		logging.Default().WithComponent("extensions").Warn(context.Background(), nil,
			"'near' called with a negative margin; this is undefined behavior",
			"target", target,
			"margin", margin,
		)
	}

	n, failure := number(msg, actual)
	if failure != nil {
		return *failure
	}

	difference := target - n
	if math.Abs(difference) <= margin {
		return msg.Pass()
	}
	if difference > 0 {
		return msg.FailWithReason("was too low")
	}
	return msg.FailWithReason("was too high")
}

var rangeMethods = map[string]chain.Method{
	"between": between,
	"within":  between,
	"near":    near,
	"closeTo": near,
}
