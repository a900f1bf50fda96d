package extensions

import (
	"strings"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var throwsMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " throw",
)

// callable returns actual as a func() and the name to show for it.
func callable(actual any) (func(), string) {
	fn, _ := actual.(func())

	name := funcName(actual)
	if name == "" {
		name = "the function"
	}
	return fn, name
}

// throws calls the value, a func(), and passes when it panics. With a
// substring the panic message must contain it.
func throws(_ *chain.Assertion, actual any, args ...any) message.Result {
	msg := throwsMessage.Use()

	fn, name := callable(actual)
	msg.Name(name)
	if fn == nil {
		return msg.Suffix(", but it wasn't a func()").Fail()
	}

	sub, hasSub := arg(args, 0).(string)
	if hasSub {
		msg.AppendPrefix(` with the substring "` + sub + `"`)
	}

	text, panicked := recoverMessage(fn)
	switch {
	case !panicked:
		return msg.Suffix(", but it didn't throw at all").Fail()
	case !hasSub:
		return msg.NegationSuffix(", but it did with the message:\n" + text).Pass()
	case strings.Contains(text, sub):
		return msg.Metadata(map[string]any{"ErrorMessage": text}).Pass()
	default:
		return msg.Suffix(", but it threw a message without it:\n" + text).Fail()
	}
}

func throwsMatch(_ *chain.Assertion, actual any, args ...any) message.Result {
	expr, _ := arg(args, 0).(string)
	msg := throwsMessage.Use(" with a message that matched /" + expr + "/")

	fn, name := callable(actual)
	msg.Name(name)
	if fn == nil {
		return msg.Suffix(", but it wasn't a func()").Fail()
	}

	re := compilePattern("throwsMatch", expr)

	text, panicked := recoverMessage(fn)
	switch {
	case !panicked:
		return msg.Suffix(", but it didn't throw at all.").Fail()
	case re.MatchString(text):
		return msg.Metadata(map[string]any{"Error": text}).Pass()
	default:
		return msg.Suffix(`, but it threw a message without it: "` + text + `"`).Fail()
	}
}

var throwsMethods = map[string]chain.Method{
	"throws":      throws,
	"throw":       throws,
	"throwsMatch": throwsMatch,
	"throwMatch":  throwsMatch,
}
