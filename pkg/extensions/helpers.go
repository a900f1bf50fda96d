package extensions

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/message"
)

var place = message.Place

// namedActual renders the actual value followed by its type, e.g. '5' (number).
var namedActual = place.Actual.Value + " (" + place.Actual.Type + ")"

// isArrayFlag is set by the array check so later checks in the same chain
// skip re-inspecting the value.
const isArrayFlag = "is_array"

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// isUndefined reports whether value is nil or a nil pointer, interface,
// func or channel. Nil maps and slices are empty collections, not undefined.
func isUndefined(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isArray(a *chain.Assertion, value any) bool {
	if flag, ok := a.Flag(isArrayFlag); ok && flag == true {
		return true
	}
	return message.IsArray(value)
}

// elements returns the elements of a slice or array.
func elements(value any) []any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func isMap(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Map
}

// toFloat converts any numeric kind to float64.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toInt(value any) (int, bool) {
	f, ok := toFloat(value)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// strictEqual compares like ==, falling back to identity for slices, maps
// and funcs, which == cannot compare. Two slices are identical when their
// headers match. Non-nil slices without capacity share the runtime's
// zero-size base address, so they never count as identical.
func strictEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}

	ra, re := reflect.ValueOf(actual), reflect.ValueOf(expected)
	if ra.Type() != re.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Slice:
		if ra.IsNil() || re.IsNil() {
			return ra.IsNil() && re.IsNil()
		}
		if ra.Cap() == 0 || re.Cap() == 0 {
			return false
		}
		return ra.Len() == re.Len() && ra.Cap() == re.Cap() && ra.UnsafePointer() == re.UnsafePointer()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return ra.UnsafePointer() == re.UnsafePointer()
	}

	if !ra.Comparable() {
		return false
	}
	return ra.Equal(re)
}

// funcName returns the short name of a named function, or "" for closures.
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}

	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	name = name[strings.LastIndex(name, "/")+1:]
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if anonymousFunc.MatchString(name) {
		return ""
	}
	return name
}

var anonymousFunc = regexp.MustCompile(`^(func)?\d+$`)

// predicate adapts fn into a func(any) bool. fn must take one argument and
// return a bool; any other shape is a programming error.
func predicate(method string, fn any) func(any) bool {
	if p, ok := fn.(func(any) bool); ok {
		return p
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() || rv.Type().NumIn() != 1 ||
		rv.Type().NumOut() != 1 || rv.Type().Out(0).Kind() != reflect.Bool {
		panic(errors.NewMisuseError(
			"ERR_INVALID_CALLBACK",
			fmt.Sprintf("'%s' expects a func(T) bool, got %T", method, fn),
		))
	}

	in := rv.Type().In(0)
	return func(value any) bool {
		param := reflect.Zero(in)
		if value != nil {
			v := reflect.ValueOf(value)
			if !v.Type().AssignableTo(in) {
				return false
			}
			param = v
		}
		return rv.Call([]reflect.Value{param})[0].Bool()
	}
}

// recoverMessage runs fn and returns the panic it raised as text.
func recoverMessage(fn func()) (msg string, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			switch v := r.(type) {
			case error:
				msg = v.Error()
			case string:
				msg = v
			default:
				msg = fmt.Sprint(v)
			}
		}
	}()
	fn()
	return "", false
}
