package expect

import (
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/extensions"
	"github.com/conneroisu/expect/pkg/proxy"
)

// Expect starts an assertion chain for value. An optional name replaces
// the rendered value in failure messages when value carries no path.
func Expect(value any, name ...string) *chain.Assertion {
	extensions.Register()

	var opts []chain.Option
	if len(name) > 0 && name[0] != "" {
		opts = append(opts, chain.WithName(name[0]))
	}
	return chain.New(value, opts...)
}

// For returns an Expect bound to t. Failures call t.Fatal instead of
// panicking.
func For(t chain.TestingT) func(value any, name ...string) *chain.Assertion {
	extensions.Register()
	failer := chain.TestingFailer(t)

	return func(value any, name ...string) *chain.Assertion {
		t.Helper()

		opts := []chain.Option{chain.WithFailer(failer)}
		if len(name) > 0 && name[0] != "" {
			opts = append(opts, chain.WithName(name[0]))
		}
		return chain.New(value, opts...)
	}
}

// Capture runs fn and returns the assertion failure it raised, or nil.
// Panics that are not assertion failures propagate.
func Capture(fn func()) (failure *chain.AssertionFailure) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*chain.AssertionFailure)
			if !ok {
				panic(r)
			}
			failure = f
		}
	}()

	fn()
	return nil
}

// Track wraps value in a root proxy node. Values read through Get remember
// their path.
func Track(value any) *proxy.Node {
	return proxy.New(value, nil)
}

// WithProxy calls fn with a root proxy node wrapping value.
func WithProxy[T, R any](value T, fn func(*proxy.Node) R) R {
	return proxy.With(value, fn)
}

// Extend registers checks under the given names. Later registrations
// replace earlier ones with the same name.
func Extend(methods map[string]chain.Method) {
	extensions.Register()
	chain.ExtendMethods(methods)
}

// ExtendNegations registers words that flip the expectation.
func ExtendNegations(words ...string) {
	extensions.Register()
	chain.ExtendNegations(words)
}

// ExtendNOPs registers words that only improve readability.
func ExtendNOPs(words ...string) {
	extensions.Register()
	chain.ExtendNOPs(words)
}
