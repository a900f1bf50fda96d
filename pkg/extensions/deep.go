package extensions

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

type failureKind int

const (
	differentValues failureKind = iota
	differentTypes
	missingKey
	extraKey
	missingElements
	extraElements
)

// difference is the first mismatch found between actual and expected.
// Element mismatches also collect every other missing or extra element
// under the same parent.
type difference struct {
	kind     failureKind
	path     string
	actual   reflect.Value
	expected reflect.Value
	missing  []any
	extra    []any
}

// diffReporter is a cmp.Reporter that keeps the first difference.
type diffReporter struct {
	path  cmp.Path
	first *difference
}

func (r *diffReporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *diffReporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func (r *diffReporter) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}

	vx, vy := r.path.Last().Values()
	_, isElement := r.path.Last().(cmp.SliceIndex)
	isElement = isElement && (!vx.IsValid() || !vy.IsValid())

	if r.first != nil {
		if isElement && (r.first.kind == missingElements || r.first.kind == extraElements) &&
			r.first.path == formatPath(r.path[:len(r.path)-1]) {
			r.first.collect(vx, vy)
		}
		return
	}

	if isElement {
		parent := r.path[:len(r.path)-1]
		px, py := parent.Last().Values()
		r.first = &difference{path: formatPath(parent), actual: px, expected: py}
		r.first.collect(vx, vy)
		return
	}

	d := &difference{path: formatPath(r.path), actual: vx, expected: vy}
	switch {
	case !vx.IsValid():
		d.kind = missingKey
	case !vy.IsValid():
		d.kind = extraKey
	default:
		d.actual, d.expected = unwrap(vx), unwrap(vy)
		if d.actual.IsValid() && d.expected.IsValid() && d.actual.Type() != d.expected.Type() {
			d.kind = differentTypes
		}
	}
	r.first = d
}

func (d *difference) collect(vx, vy reflect.Value) {
	if !vx.IsValid() {
		d.missing = append(d.missing, vy.Interface())
	} else {
		d.extra = append(d.extra, vx.Interface())
	}

	d.kind = extraElements
	if len(d.missing) > 0 {
		d.kind = missingElements
	}
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// formatPath renders map keys and struct fields joined by dots and slice
// indexes in brackets, e.g. parent.children[1].name.
func formatPath(path cmp.Path) string {
	var sb strings.Builder
	for _, step := range path {
		switch s := step.(type) {
		case cmp.MapIndex:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(fmt.Sprint(s.Key().Interface()))
		case cmp.StructField:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name())
		case cmp.SliceIndex:
			ix, iy := s.SplitKeys()
			if ix < 0 {
				ix = iy
			}
			fmt.Fprintf(&sb, "[%d]", ix)
		}
	}
	return sb.String()
}

// exportAll lets comparisons look at unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// ignoreExtraKeys skips map keys the expected side does not mention.
var ignoreExtraKeys = cmp.FilterPath(func(p cmp.Path) bool {
	mi, ok := p.Last().(cmp.MapIndex)
	if !ok {
		return false
	}
	_, vy := mi.Values()
	return !vy.IsValid()
}, cmp.Ignore())

// diff returns the first difference between actual and expected, or nil.
func diff(actual, expected any, opts ...cmp.Option) *difference {
	r := &diffReporter{}
	opts = append(opts, exportAll, cmp.Reporter(r))
	if cmp.Equal(actual, expected, opts...) {
		return nil
	}
	if r.first == nil {
		return &difference{}
	}
	return r.first
}

func deepEquals(actual, expected any) bool {
	return cmp.Equal(actual, expected, exportAll)
}

func valueOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

func typedValue(msg *message.Builder, v reflect.Value) string {
	value := valueOf(v)
	return msg.Encode(value) + " (" + message.TypeOf(value) + ")"
}

// reportDifference turns d into the failure for msg.
func reportDifference(msg *message.Builder, d *difference) message.Result {
	root := d.path == ""

	switch d.kind {
	case differentTypes, differentValues:
		what := "value"
		if d.kind == differentTypes {
			what = "type"
		}
		if root {
			return msg.
				Suffix(", but they have different " + what + "s").
				Metadata(map[string]any{"Actual": namedActual, "Expected": place.Expected.Value + " (" + place.Expected.Type + ")"}).
				Fail()
		}
		return msg.
			Suffix(", but '" + d.path + "' has a different " + what).
			Metadata(map[string]any{"Actual": typedValue(msg, d.actual), "Expected": typedValue(msg, d.expected)}).
			Fail()

	case missingKey:
		return msg.
			Suffix(", but '" + d.path + "' was missing").
			Metadata(map[string]any{"Expected": typedValue(msg, d.expected)}).
			Fail()

	case extraKey:
		return msg.
			Suffix(", but it had the extra key '" + d.path + "'").
			Metadata(map[string]any{d.path: typedValue(msg, d.actual)}).
			Fail()
	}

	actual, expected := place.Actual.Value, place.Expected.Value
	if !root {
		actual, expected = msg.Encode(valueOf(d.actual)), msg.Encode(valueOf(d.expected))
	}
	bag := map[string]any{"Actual": actual, "Expected": expected}

	if d.kind == missingElements {
		bag["Missing"] = msg.Encode(d.missing)
		if root {
			return msg.Suffix(", but there were elements missing").Metadata(bag).Fail()
		}
		return msg.Suffix(", but '" + d.path + "' was missing some elements").Metadata(bag).Fail()
	}

	bag["Extra Elements"] = msg.Encode(d.extra)
	if root {
		return msg.Suffix(", but there were extra elements").Metadata(bag).Fail()
	}
	return msg.Suffix(", but '" + d.path + "' had extra elements").Metadata(bag).Fail()
}

var deepEqualMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " deep equal " + place.Expected.Value,
)

func deepEqual(_ *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := deepEqualMessage.Use().ExpectedValue(expected)

	if d := diff(actual, expected); d != nil {
		return reportDifference(msg, d)
	}
	return msg.Pass()
}

var matchMessage = message.New(
	"Expected " + place.Name + " to " + place.Not + " match " + place.Expected.Value,
)

// match is deepEqual that ignores map keys missing from expected.
func match(_ *chain.Assertion, actual any, args ...any) message.Result {
	expected := arg(args, 0)
	msg := matchMessage.Use().ExpectedValue(expected)

	if d := diff(actual, expected, ignoreExtraKeys); d != nil {
		return reportDifference(msg, d)
	}
	return msg.Pass()
}

var deepMethods = map[string]chain.Method{
	"deepEqual":  deepEqual,
	"deepEquals": deepEqual,
	"eql":        deepEqual,
	"match":      match,
	"matches":    match,
}
