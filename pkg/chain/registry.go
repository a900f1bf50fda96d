package chain

import (
	"maps"
	"slices"

	"github.com/conneroisu/expect/pkg/message"
)

// Method is a registered check. It reports whether the check itself passed;
// negation is resolved by the dispatcher.
type Method func(a *Assertion, actual any, args ...any) message.Result

// NameSet is a set of chain words.
type NameSet map[string]struct{}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members of the set in sorted order.
func (s NameSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// The registries are written during initialization only and read without
// locking afterwards. Extend before the first Expect runs concurrently.
var (
	methods   = map[string]Method{}
	negations = NameSet{}
	nops      = NameSet{}
)

// ExtendMethods merges impls into the method registry. A later
// registration for a name replaces the earlier one. Assertions created
// before the call keep the registry they started with.
func ExtendMethods(impls map[string]Method) {
	merged := maps.Clone(methods)
	maps.Copy(merged, impls)
	methods = merged
}

// MethodExtensions returns the current method registry. Callers must not
// mutate it.
func MethodExtensions() map[string]Method {
	return methods
}

// ExtendNegations registers words that toggle negation. Like
// ExtendMethods it swaps in a new set, so existing assertions are
// unaffected.
func ExtendNegations(names []string) {
	negations = extendSet(negations, names)
}

// NegationExtensions returns the current negation registry. Callers must
// not mutate it.
func NegationExtensions() NameSet {
	return negations
}

// ExtendNOPs registers words that only exist for readability. Existing
// assertions are unaffected.
func ExtendNOPs(names []string) {
	nops = extendSet(nops, names)
}

// NOPExtensions returns the current no-op registry. Callers must not
// mutate it.
func NOPExtensions() NameSet {
	return nops
}

func extendSet(set NameSet, names []string) NameSet {
	merged := maps.Clone(set)
	if merged == nil {
		merged = NameSet{}
	}
	for _, name := range names {
		merged[name] = struct{}{}
	}
	return merged
}

// MethodNames returns every registered method name in sorted order.
func MethodNames() []string {
	return slices.Sorted(maps.Keys(methods))
}
