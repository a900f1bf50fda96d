// Package message composes the human readable failure messages raised by
// assertions. Templates embed the tokens in Place; Build substitutes them
// once the outcome of a check is known.
package message

import "maps"

// VariableData describes the actual or expected side of a check. An empty
// Type is derived from Value at render time.
type VariableData struct {
	Value any
	Type  string
}

// Options toggles rendering behavior. Every option defaults to true.
type Options struct {
	// TrimSpaces removes the whitespace around tokens that render empty.
	TrimSpaces bool
	// WrapValues quotes encoded values.
	WrapValues bool
	// AttachFullOnCollapse appends "<Variable> (full):" lines for collapsed
	// values.
	AttachFullOnCollapse bool
	// TrimWhiteSpace trims the rendered message.
	TrimWhiteSpace bool
}

// DefaultOptions returns the options every builder starts from.
func DefaultOptions() Options {
	return Options{
		TrimSpaces:           true,
		WrapValues:           true,
		AttachFullOnCollapse: true,
		TrimWhiteSpace:       true,
	}
}

type data struct {
	prefix                string
	negationPrefix        string
	suffix                string
	negationSuffix        string
	failureSuffix         string
	trailingFailurePrefix string
	reason                string
	index                 any
	expected              VariableData
	actual                VariableData
	metadata              map[string]any
	surfaceMetadata       map[string]any
	failureMetadata       map[string]any
	nestedMetadata        map[string]any
	name                  string
	path                  string
	hasPath               bool
}

// Builder holds a message template and the data of one check invocation.
//
// Checks keep a shared base Builder and call Use on it for every
// invocation; setters mutate in place, so skipping Use leaks data into
// later calls.
type Builder struct {
	data    data
	options Options
}

// BuilderOption configures a Builder at construction.
type BuilderOption func(*Builder)

// WithNegationPrefix sets a distinct prefix for negated chains.
func WithNegationPrefix(prefix string) BuilderOption {
	return func(b *Builder) {
		b.data.negationPrefix = prefix
	}
}

// WithOptions replaces the rendering options.
func WithOptions(options Options) BuilderOption {
	return func(b *Builder) {
		b.options = options
	}
}

// New creates a builder for the given prefix template.
func New(prefix string, opts ...BuilderOption) *Builder {
	b := &Builder{
		data: data{
			prefix:          prefix,
			metadata:        map[string]any{},
			surfaceMetadata: map[string]any{},
			failureMetadata: map[string]any{},
			nestedMetadata:  map[string]any{},
		},
		options: DefaultOptions(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewDynamic creates a builder whose whole message is its reason.
func NewDynamic(opts ...BuilderOption) *Builder {
	return New(Place.Reason, opts...)
}

// Options returns the rendering options.
func (b *Builder) Options() Options {
	return b.options
}

// Copy returns a deep clone sharing no mutable state with b.
func (b *Builder) Copy() *Builder {
	clone := &Builder{
		data:    b.data,
		options: b.options,
	}

	clone.data.metadata = cloneBag(b.data.metadata)
	clone.data.surfaceMetadata = cloneBag(b.data.surfaceMetadata)
	clone.data.failureMetadata = cloneBag(b.data.failureMetadata)
	clone.data.nestedMetadata = cloneBag(b.data.nestedMetadata)

	return clone
}

// Use returns a copy ready for one invocation. trailing[0], when given, is
// appended to both prefixes; trailing[1], when given, replaces the trailing
// failure prefix.
func (b *Builder) Use(trailing ...string) *Builder {
	instance := b.Copy()

	if len(trailing) > 0 {
		instance.AppendPrefix(trailing[0])
	}
	if len(trailing) > 1 {
		instance.data.trailingFailurePrefix = trailing[1]
	}

	return instance
}

func cloneBag(bag map[string]any) map[string]any {
	if bag == nil {
		return map[string]any{}
	}
	return maps.Clone(bag)
}

// AppendPrefix appends str to the prefix and, if set, the negation prefix.
func (b *Builder) AppendPrefix(str string) *Builder {
	b.data.prefix += str
	if b.data.negationPrefix != "" {
		b.data.negationPrefix += str
	}
	return b
}

// Suffix is appended after the prefix in every outcome.
func (b *Builder) Suffix(str string) *Builder {
	b.data.suffix = str
	return b
}

// NegationSuffix is appended only on negated chains.
func (b *Builder) NegationSuffix(str string) *Builder {
	b.data.negationSuffix = str
	return b
}

// FailureSuffix is appended only when the check failed.
func (b *Builder) FailureSuffix(str string) *Builder {
	b.data.failureSuffix = str
	return b
}

// TrailingFailurePrefix is appended directly after the prefix, only when
// the check failed.
func (b *Builder) TrailingFailurePrefix(str string) *Builder {
	b.data.trailingFailurePrefix = str
	return b
}

// Name sets the display name used by Place.Name when no path is set.
func (b *Builder) Name(name string) *Builder {
	b.data.name = name
	return b
}

// Path sets the dotted path of a proxied value. An empty path is still a
// path: the value was reached through an empty key.
func (b *Builder) Path(path string) *Builder {
	b.data.path = path
	b.data.hasPath = true
	return b
}

func (b *Builder) Reason(reason string) *Builder {
	b.data.reason = reason
	return b
}

// Index accepts a number or a string. nil clears it.
func (b *Builder) Index(index any) *Builder {
	b.data.index = index
	return b
}

// Metadata is rendered for every outcome.
func (b *Builder) Metadata(bag map[string]any) *Builder {
	maps.Copy(b.data.metadata, bag)
	return b
}

// FailureMetadata is rendered only when the check failed.
func (b *Builder) FailureMetadata(bag map[string]any) *Builder {
	maps.Copy(b.data.failureMetadata, bag)
	return b
}

// NestedMetadata is rendered only when a path is set.
func (b *Builder) NestedMetadata(bag map[string]any) *Builder {
	maps.Copy(b.data.nestedMetadata, bag)
	return b
}

// SurfaceMetadata is rendered only when no path is set.
func (b *Builder) SurfaceMetadata(bag map[string]any) *Builder {
	maps.Copy(b.data.surfaceMetadata, bag)
	return b
}

// ExpectedValue overwrites the expected value.
func (b *Builder) ExpectedValue(value any) *Builder {
	b.data.expected.Value = value
	return b
}

func (b *Builder) ExpectedType(typ string) *Builder {
	b.data.expected.Type = typ
	return b
}

// Expected overwrites the expected value and type.
func (b *Builder) Expected(d VariableData) *Builder {
	b.data.expected = d
	return b
}

// ActualValue sets the actual value only if none is set yet. The
// dispatcher offers the asserted value before raising, so a check that
// already set a more specific actual value keeps it.
func (b *Builder) ActualValue(value any) *Builder {
	if b.data.actual.Value == nil {
		b.data.actual.Value = value
	}
	return b
}

func (b *Builder) ActualType(typ string) *Builder {
	b.data.actual.Type = typ
	return b
}

// Actual overwrites the actual value and type.
func (b *Builder) Actual(d VariableData) *Builder {
	b.data.actual = d
	return b
}

// Pass reports a passing check.
func (b *Builder) Pass() Result {
	return Ok(b)
}

// Fail reports a failing check.
func (b *Builder) Fail() Result {
	return Err(b)
}

// FailWithReason sets the reason and reports a failing check.
func (b *Builder) FailWithReason(reason string) Result {
	return b.Reason(reason).Fail()
}

// String renders the message as a passing, non-negated check.
func (b *Builder) String() string {
	return b.Build(true, false)
}
