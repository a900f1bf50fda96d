package message

// Result is the outcome of a check: Ok when the check passed and Err when it
// failed. Negation is resolved by the dispatcher, never by the check.
type Result struct {
	builder *Builder
	ok      bool
}

// Ok wraps a passing check.
func Ok(b *Builder) Result {
	return Result{builder: b, ok: true}
}

// Err wraps a failing check.
func Err(b *Builder) Result {
	return Result{builder: b}
}

func (r Result) IsOk() bool  { return r.ok }
func (r Result) IsErr() bool { return !r.ok }

// Builder returns the message carried by the result.
func (r Result) Builder() *Builder {
	return r.builder
}

// Match calls ok or err depending on the outcome.
func (r Result) Match(ok, err func(*Builder)) {
	if r.ok {
		ok(r.builder)
		return
	}
	err(r.builder)
}
