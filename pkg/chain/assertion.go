// Package chain implements the assertion chain returned by expect.Expect:
// the method, negation and no-op registries, and the dispatcher that turns
// a check's outcome into a raised failure.
package chain

import (
	"github.com/conneroisu/expect/pkg/proxy"
)

// AssertionFailure is raised when an assertion does not hold. Message is
// the fully rendered failure text.
type AssertionFailure struct {
	Message string
}

func (f *AssertionFailure) Error() string {
	return f.Message
}

// Failer receives raised failures.
type Failer func(failure *AssertionFailure)

// PanicFailer panics with the failure. It is the default.
func PanicFailer(failure *AssertionFailure) {
	panic(failure)
}

// TestingT is the subset of testing.TB used to report failures.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// TestingFailer reports failures through t and stops the test.
func TestingFailer(t TestingT) Failer {
	return func(failure *AssertionFailure) {
		t.Helper()
		t.Fatal(failure.Message)
	}
}

// Option configures an Assertion.
type Option func(*Assertion)

// WithName sets the display name used in place of the rendered actual
// value when there is no path to show.
func WithName(name string) Option {
	return func(a *Assertion) {
		a.name = name
	}
}

// WithFailer routes raised failures to f.
func WithFailer(f Failer) Option {
	return func(a *Assertion) {
		if f != nil {
			a.fail = f
		}
	}
}

// Assertion is one expect statement. It is mutated in place while chaining
// and must not be reused across statements.
type Assertion struct {
	value   any
	negated bool
	proxy   *proxy.Node
	name    string
	flags   map[string]any

	methods   map[string]Method
	negations NameSet
	nops      NameSet

	fail Failer
}

// New starts a chain for value. A *proxy.Node is unwrapped and kept so
// failures can report its path.
func New(value any, opts ...Option) *Assertion {
	a := &Assertion{
		methods:   MethodExtensions(),
		negations: NegationExtensions(),
		nops:      NOPExtensions(),
		fail:      PanicFailer,
	}

	if node, ok := value.(*proxy.Node); ok && node != nil {
		a.value = node.Value()
		a.proxy = node
	} else {
		a.value = value
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Value returns the value under test, unwrapped from any proxy.
func (a *Assertion) Value() any { return a.value }

// Negated reports whether an odd number of negation words was chained.
func (a *Assertion) Negated() bool { return a.negated }

// Proxy returns the node the chain was created from, or nil.
func (a *Assertion) Proxy() *proxy.Node { return a.proxy }

// DisplayName returns the name set with WithName.
func (a *Assertion) DisplayName() string { return a.name }

// SetFlag stores chain-scoped state for later checks in the same
// statement, such as a check that already verified the value is an array.
func (a *Assertion) SetFlag(key string, value any) *Assertion {
	if a.flags == nil {
		a.flags = make(map[string]any)
	}
	a.flags[key] = value
	return a
}

// Flag returns state stored with SetFlag.
func (a *Assertion) Flag(key string) (any, bool) {
	v, ok := a.flags[key]
	return v, ok
}
