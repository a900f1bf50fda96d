// Package extensions holds the built-in checks, negation words and no-op
// words. Register installs them into the chain registries; the expect
// package calls it before the first assertion.
package extensions

import (
	"sync"

	"github.com/conneroisu/expect/pkg/chain"
)

var registerOnce sync.Once

// Register installs every built-in. It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		chain.ExtendNOPs(noops)
		chain.ExtendNegations(negations)

		for _, methods := range []map[string]chain.Method{
			equalMethods,
			deepMethods,
			includeMethods,
			lengthMethods,
			emptyMethods,
			booleanMethods,
			definedMethods,
			rangeMethods,
			numericMethods,
			affixMethods,
			textMethods,
			objectMethods,
			typeMethods,
			throwsMethods,
			quantifierMethods,
			exactlyMethods,
		} {
			chain.ExtendMethods(methods)
		}
	})
}
