package extensions

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var substringMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " have the substring " + place.Expected.Value,
).NestedMetadata(map[string]any{place.Path: place.Actual.Value})

func substring(_ *chain.Assertion, actual any, args ...any) message.Result {
	expected, _ := arg(args, 0).(string)
	msg := substringMessage.Use().ExpectedValue(expected)

	if isUndefined(actual) {
		return msg.Name("the value").TrailingFailurePrefix(", but it was undefined").Fail()
	}

	s, ok := actual.(string)
	if !ok {
		return msg.Name(namedActual).TrailingFailurePrefix(", but it wasn't a string").Fail()
	}

	if strings.Contains(s, expected) {
		return msg.Pass()
	}
	return msg.Fail()
}

var patternMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " have a match for the pattern ",
).
	TrailingFailurePrefix(", but it " + place.Reason).
	NegationSuffix(", but it did").
	NestedMetadata(map[string]any{place.Path: place.Actual.Value})

var patterns sync.Map

// compilePattern compiles and caches pattern. An invalid pattern is a
// programming error.
func compilePattern(method, pattern string) *regexp.Regexp {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(errors.Wrap(err, errors.ErrorTypeMisuse, "ERR_INVALID_PATTERN",
			fmt.Sprintf("'%s' was given an invalid pattern /%s/", method, pattern)))
	}

	patterns.Store(pattern, re)
	return re
}

func pattern(_ *chain.Assertion, actual any, args ...any) message.Result {
	expr, _ := arg(args, 0).(string)
	msg := patternMessage.Use("/" + expr + "/")

	if isUndefined(actual) {
		return msg.Name("the value").FailWithReason("was undefined")
	}

	s, ok := actual.(string)
	if !ok {
		return msg.Name(namedActual).FailWithReason("wasn't a string")
	}

	match := compilePattern("pattern", expr).FindStringIndex(s)
	if match == nil {
		return msg.FailWithReason("was missing")
	}
	return msg.
		Metadata(map[string]any{"Match": msg.Encode(s[match[0]:match[1]])}).
		Pass()
}

var textMethods = map[string]chain.Method{
	"substring": substring,
	"pattern":   pattern,
}
