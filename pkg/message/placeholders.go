package message

// ActualPlaceholder groups the tokens describing the value under test.
type ActualPlaceholder struct {
	// Value is the actual value, collapsed when it exceeds the collapse length.
	Value string
	// FullValue is the actual value, never collapsed.
	FullValue string
	// Type is the type name of the actual value.
	Type string
}

// ExpectedPlaceholder groups the tokens describing the value a check
// compares against.
type ExpectedPlaceholder struct {
	Value     string
	FullValue string
	Type      string
}

// Placeholder is the closed set of tokens understood by Build.
type Placeholder struct {
	Actual   ActualPlaceholder
	Expected ExpectedPlaceholder

	// Not renders as "NOT" on negated chains and disappears otherwise.
	Not string
	// Reason is filled from Builder.Reason; without the token the reason is
	// attached as a "Reason:" line instead.
	Reason string
	// Path is the dotted path of a proxied value.
	Path string
	// Name is the path when there is one, else the display name, else the
	// actual value.
	Name string
	// Nil renders as the bare word nil.
	Nil string
	// Undefined is an alias of Nil.
	Undefined string
	Index     string
}

const namespace = "__goexpect_"

func placeholder(name string) string {
	return "{" + namespace + name + "}"
}

// Place holds the tokens to embed in message templates.
//
//	message.New("Expected " + message.Place.Name + " to " + message.Place.Not + " be empty")
var Place = Placeholder{
	Actual: ActualPlaceholder{
		Value:     placeholder("actual_value"),
		FullValue: placeholder("full_actual_value"),
		Type:      placeholder("actual_type"),
	},
	Expected: ExpectedPlaceholder{
		Value:     placeholder("expected_value"),
		FullValue: placeholder("full_expected_value"),
		Type:      placeholder("expected_type"),
	},
	Not:       placeholder("not"),
	Reason:    placeholder("reason"),
	Path:      placeholder("path"),
	Name:      placeholder("name"),
	Nil:       placeholder("nil"),
	Undefined: placeholder("nil"),
	Index:     placeholder("index"),
}

// Tokens returns every distinct token, in a stable order.
func Tokens() []string {
	return []string{
		Place.Actual.Value,
		Place.Actual.FullValue,
		Place.Actual.Type,
		Place.Expected.Value,
		Place.Expected.FullValue,
		Place.Expected.Type,
		Place.Not,
		Place.Reason,
		Place.Path,
		Place.Name,
		Place.Nil,
		Place.Index,
	}
}
