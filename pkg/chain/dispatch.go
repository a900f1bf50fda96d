package chain

import (
	"context"
	"maps"
	"slices"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/internal/logging"
	"github.com/conneroisu/expect/pkg/message"
	"github.com/conneroisu/expect/pkg/proxy"
)

// Invoke runs the method registered as name against the chain's value.
//
//	check passed, not negated  -> chain returned
//	check passed, negated      -> raised, rendered as Build(true, true)
//	check failed, negated      -> chain returned
//	check failed, not negated  -> raised, rendered as Build(false, false)
//
// Unknown names panic with a misuse error.
func (a *Assertion) Invoke(name string, args ...any) *Assertion {
	method, ok := a.methods[name]
	if !ok {
		panic(errors.UnknownNameError("method", name, slices.Sorted(maps.Keys(a.methods))))
	}

	for i, arg := range args {
		if proxy.IsProxy(arg) {
			logging.Default().WithComponent("chain").Warn(context.Background(), nil,
				"using proxies on the expected side of an assertion is undefined behavior",
				"method", name,
				"argument", i,
			)
		}
	}

	result := method(a, a.value, args...)

	switch {
	case result.IsOk() && a.negated:
		a.raise(name, result.Builder(), true, true)
	case result.IsErr() && !a.negated:
		a.raise(name, result.Builder(), false, false)
	}

	return a
}

func (a *Assertion) raise(name string, msg *message.Builder, pass, negated bool) {
	if msg == nil {
		msg = message.NewDynamic().Reason("'" + name + "' did not hold")
	}

	if a.proxy != nil {
		if path, ok := proxy.ComputeFullPath(a.proxy); ok {
			msg.Path(path)
		}
	}
	if a.name != "" {
		msg.Name(a.name)
	}

	a.fail(&AssertionFailure{
		Message: msg.ActualValue(a.value).Build(pass, negated),
	})
}

// Word applies a chain word. Negation words toggle negation, no-op words
// do nothing; a word registered as both is treated as a negation. Unknown
// words panic with a misuse error.
func (a *Assertion) Word(name string) *Assertion {
	switch {
	case a.negations.Has(name):
		a.negated = !a.negated
	case a.nops.Has(name):
	default:
		known := append(a.negations.Names(), a.nops.Names()...)
		panic(errors.UnknownNameError("word", name, known))
	}

	return a
}

// Has reports whether name is a registered method.
func (a *Assertion) Has(name string) bool {
	_, ok := a.methods[name]
	return ok
}
