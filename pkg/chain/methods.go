package chain

// Typed entry points for the built-in checks. Each delegates to Invoke, so
// a check only works once the extensions package has registered it.

// Equal checks strict equality.
func (a *Assertion) Equal(expected any) *Assertion { return a.Invoke("equal", expected) }

// Equals is an alias of Equal.
func (a *Assertion) Equals(expected any) *Assertion { return a.Invoke("equals", expected) }

// Eq is an alias of Equal.
func (a *Assertion) Eq(expected any) *Assertion { return a.Invoke("eq", expected) }

// DeepEqual checks structural equality and reports the first differing path.
func (a *Assertion) DeepEqual(expected any) *Assertion { return a.Invoke("deepEqual", expected) }

// DeepEquals is an alias of DeepEqual.
func (a *Assertion) DeepEquals(expected any) *Assertion { return a.Invoke("deepEquals", expected) }

// Eql is an alias of DeepEqual.
func (a *Assertion) Eql(expected any) *Assertion { return a.Invoke("eql", expected) }

// Match checks that every key of expected is present in the value with an
// equal value. Extra keys in the value are ignored.
func (a *Assertion) Match(expected any) *Assertion { return a.Invoke("match", expected) }

// Matches is an alias of Match.
func (a *Assertion) Matches(expected any) *Assertion { return a.Invoke("matches", expected) }

// Include checks that an array contains the element, a string contains the
// substring or a map contains the key.
func (a *Assertion) Include(value any) *Assertion { return a.Invoke("include", value) }

// Includes is an alias of Include.
func (a *Assertion) Includes(value any) *Assertion { return a.Invoke("includes", value) }

// Contain is an alias of Include.
func (a *Assertion) Contain(value any) *Assertion { return a.Invoke("contain", value) }

// Length checks the element count, key count or string length.
func (a *Assertion) Length(size int) *Assertion { return a.Invoke("length", size) }

// LengthOf is an alias of Length.
func (a *Assertion) LengthOf(size int) *Assertion { return a.Invoke("lengthOf", size) }

// Size is an alias of Length.
func (a *Assertion) Size(size int) *Assertion { return a.Invoke("size", size) }

// SizeOf is an alias of Length.
func (a *Assertion) SizeOf(size int) *Assertion { return a.Invoke("sizeOf", size) }

func (a *Assertion) Empty() *Assertion  { return a.Invoke("empty") }
func (a *Assertion) True() *Assertion   { return a.Invoke("true") }
func (a *Assertion) False() *Assertion  { return a.Invoke("false") }
func (a *Assertion) Truthy() *Assertion { return a.Invoke("truthy") }
func (a *Assertion) Falsy() *Assertion  { return a.Invoke("falsy") }

// Defined checks that the value is not nil.
func (a *Assertion) Defined() *Assertion { return a.Invoke("defined") }

func (a *Assertion) Ok() *Assertion     { return a.Invoke("ok") }
func (a *Assertion) Exist() *Assertion  { return a.Invoke("exist") }
func (a *Assertion) Exists() *Assertion { return a.Invoke("exists") }

// Undefined checks that the value is nil.
func (a *Assertion) Undefined() *Assertion { return a.Invoke("undefined") }

func (a *Assertion) Nil() *Assertion  { return a.Invoke("nil") }
func (a *Assertion) Null() *Assertion { return a.Invoke("null") }

// Between checks min <= value <= max.
func (a *Assertion) Between(min, max float64) *Assertion { return a.Invoke("between", min, max) }

// Within is an alias of Between.
func (a *Assertion) Within(min, max float64) *Assertion { return a.Invoke("within", min, max) }

// Near checks that the value is within margin of target. The margin
// defaults to the float64 machine epsilon.
func (a *Assertion) Near(target float64, margin ...float64) *Assertion {
	return a.Invoke("near", floatArgs(target, margin)...)
}

// CloseTo is an alias of Near.
func (a *Assertion) CloseTo(target float64, margin ...float64) *Assertion {
	return a.Invoke("closeTo", floatArgs(target, margin)...)
}

func (a *Assertion) GreaterThan(n float64) *Assertion { return a.Invoke("greaterThan", n) }
func (a *Assertion) Gt(n float64) *Assertion          { return a.Invoke("gt", n) }
func (a *Assertion) Above(n float64) *Assertion       { return a.Invoke("above", n) }

func (a *Assertion) GreaterThanOrEqualTo(n float64) *Assertion {
	return a.Invoke("greaterThanOrEqualTo", n)
}
func (a *Assertion) Gte(n float64) *Assertion   { return a.Invoke("gte", n) }
func (a *Assertion) Least(n float64) *Assertion { return a.Invoke("least", n) }

func (a *Assertion) LessThan(n float64) *Assertion { return a.Invoke("lessThan", n) }
func (a *Assertion) Lt(n float64) *Assertion       { return a.Invoke("lt", n) }
func (a *Assertion) Below(n float64) *Assertion    { return a.Invoke("below", n) }

func (a *Assertion) LessThanOrEqualTo(n float64) *Assertion {
	return a.Invoke("lessThanOrEqualTo", n)
}
func (a *Assertion) Lte(n float64) *Assertion  { return a.Invoke("lte", n) }
func (a *Assertion) Most(n float64) *Assertion { return a.Invoke("most", n) }

func (a *Assertion) Even() *Assertion     { return a.Invoke("even") }
func (a *Assertion) Odd() *Assertion      { return a.Invoke("odd") }
func (a *Assertion) Positive() *Assertion { return a.Invoke("positive") }
func (a *Assertion) Negative() *Assertion { return a.Invoke("negative") }

// Finite checks that the value is a number other than NaN or an infinity.
func (a *Assertion) Finite() *Assertion { return a.Invoke("finite") }

// StartWith checks a string prefix, or the leading elements of an array.
func (a *Assertion) StartWith(expected any) *Assertion  { return a.Invoke("startWith", expected) }
func (a *Assertion) StartsWith(expected any) *Assertion { return a.Invoke("startsWith", expected) }

// EndWith checks a string suffix, or the trailing elements of an array.
func (a *Assertion) EndWith(expected any) *Assertion  { return a.Invoke("endWith", expected) }
func (a *Assertion) EndsWith(expected any) *Assertion { return a.Invoke("endsWith", expected) }

// Substring checks that a string contains s literally.
func (a *Assertion) Substring(s string) *Assertion { return a.Invoke("substring", s) }

// Pattern checks that a string matches the regular expression.
func (a *Assertion) Pattern(pattern string) *Assertion { return a.Invoke("pattern", pattern) }

// Key checks that a map has the key or a struct has the exported field.
func (a *Assertion) Key(key any) *Assertion      { return a.Invoke("key", key) }
func (a *Assertion) Property(key any) *Assertion { return a.Invoke("property", key) }

// Array checks that the value is a slice or array. An optional type name or
// func(any) bool is checked against every element.
func (a *Assertion) Array(elem ...any) *Assertion { return a.Invoke("array", elem...) }

// ArrayOf is Array with a required element check.
func (a *Assertion) ArrayOf(elem any) *Assertion { return a.Invoke("arrayOf", elem) }

// AnyOf checks that the value equals one of the candidates.
func (a *Assertion) AnyOf(candidates ...any) *Assertion { return a.Invoke("anyOf", candidates...) }

// Satisfy checks that fn returns true for the value. fn is a func(any) bool
// or any single-argument function returning bool.
func (a *Assertion) Satisfy(fn any) *Assertion   { return a.Invoke("satisfy", fn) }
func (a *Assertion) Satisfies(fn any) *Assertion { return a.Invoke("satisfies", fn) }

// Throws checks that the value, a func(), panics. With a substring the
// panic message must contain it.
func (a *Assertion) Throws(substring ...string) *Assertion {
	return a.Invoke("throws", stringArgs(substring)...)
}

func (a *Assertion) Throw(substring ...string) *Assertion {
	return a.Invoke("throw", stringArgs(substring)...)
}

// ThrowsMatch checks that the value panics with a message matching pattern.
func (a *Assertion) ThrowsMatch(pattern string) *Assertion { return a.Invoke("throwsMatch", pattern) }
func (a *Assertion) ThrowMatch(pattern string) *Assertion  { return a.Invoke("throwMatch", pattern) }

// InstanceOf checks the value's type by name ("number", "string", "object",
// a Go type string) or with a func(any) bool.
func (a *Assertion) InstanceOf(kind any) *Assertion { return a.Invoke("instanceOf", kind) }
func (a *Assertion) TypeOf(kind any) *Assertion     { return a.Invoke("typeOf", kind) }

func (a *Assertion) Number() *Assertion   { return a.Invoke("number") }
func (a *Assertion) Boolean() *Assertion  { return a.Invoke("boolean") }
func (a *Assertion) Object() *Assertion   { return a.Invoke("object") }
func (a *Assertion) Function() *Assertion { return a.Invoke("function") }

// ContainExactly checks that an array holds the same elements as expected
// in any order.
func (a *Assertion) ContainExactly(expected any) *Assertion {
	return a.Invoke("containExactly", expected)
}

func (a *Assertion) ContainsExactly(expected any) *Assertion {
	return a.Invoke("containsExactly", expected)
}

// ContainExactlyInOrder checks that an array holds the same elements as
// expected in the same order.
func (a *Assertion) ContainExactlyInOrder(expected any) *Assertion {
	return a.Invoke("containExactlyInOrder", expected)
}

func (a *Assertion) ContainsExactlyInOrder(expected any) *Assertion {
	return a.Invoke("containsExactlyInOrder", expected)
}

// All checks that every element passes fn. An optional leading string
// describes the check in the failure message.
func (a *Assertion) All(args ...any) *Assertion { return a.Invoke("all", args...) }

// Some checks that at least one element passes fn.
func (a *Assertion) Some(args ...any) *Assertion { return a.Invoke("some", args...) }

func floatArgs(first float64, rest []float64) []any {
	args := make([]any, 0, len(rest)+1)
	args = append(args, first)
	for _, v := range rest {
		args = append(args, v)
	}
	return args
}

func stringArgs(values []string) []any {
	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}
