// Package proxy wraps values so that navigation through them remembers the
// path taken. Assertions made on a node report that dotted path instead of
// the raw value.
//
//	proxy.With(person, func(p *proxy.Node) any {
//		return expect.Expect(p.Get("parent").Get("age")).To().Equal(5)
//	})
package proxy

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/conneroisu/expect/internal/errors"
)

// Reserved keys name the node's own bookkeeping. They cannot be navigated
// with Get; use the accessor functions instead.
const (
	KeyIsProxy = "_is_proxy"
	KeyValue   = "_proxy_value"
	KeyParent  = "_proxy_parent"
	KeyPath    = "_proxy_path"
)

var reservedKeys = []string{KeyIsProxy, KeyValue, KeyParent, KeyPath}

// Node is an immutable carrier of a value, the node it was reached from and
// the key used to reach it.
type Node struct {
	value   any
	parent  *Node
	segment *string
}

// New wraps value. Root nodes have no parent and no segment.
func New(value any, parent *Node, segment ...string) *Node {
	n := &Node{value: value, parent: parent}
	if len(segment) > 0 {
		s := segment[0]
		n.segment = &s
	}
	return n
}

// With wraps value in a root node and hands it to fn.
func With[T, R any](value T, fn func(*Node) R) R {
	return fn(New(value, nil))
}

// Get returns a child node for key. Maps are indexed by key, structs by
// field name, slices and arrays by integer index; pointers and
// interfaces are followed. Keys that cannot be resolved produce a child
// wrapping nil.
func (n *Node) Get(key any) *Node {
	segment := fmt.Sprint(key)
	if slices.Contains(reservedKeys, segment) {
		panic(errors.ReservedKeyError(segment))
	}
	return New(lookup(n.value, key), n, segment)
}

// Value returns the wrapped value.
func (n *Node) Value() any { return n.value }

// Parent returns the node this one was reached from, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Path returns the key used to reach this node.
func (n *Node) Path() (string, bool) {
	if n.segment == nil {
		return "", false
	}
	return *n.segment, true
}

// Value returns the value wrapped by n.
func Value(n *Node) any { return n.value }

// Parent returns n's parent node.
func Parent(n *Node) *Node { return n.parent }

// Path returns n's own path segment.
func Path(n *Node) (string, bool) { return n.Path() }

// IsProxy reports whether v is a *Node. It never panics.
func IsProxy(v any) bool {
	n, ok := v.(*Node)
	return ok && n != nil
}

// ComputeFullPath joins the segments from the root down to n with dots.
// It reports false when no node on the way has a segment.
func ComputeFullPath(n *Node) (string, bool) {
	var segments []string
	for current := n; current != nil; current = current.parent {
		if current.segment != nil {
			segments = append(segments, *current.segment)
		}
	}
	if len(segments) == 0 {
		return "", false
	}

	slices.Reverse(segments)
	return strings.Join(segments, "."), true
}

// NearestDefined returns the closest node, starting at n and walking up,
// whose value is not nil. It returns nil if there is none.
func NearestDefined(n *Node) *Node {
	for current := n; current != nil; current = current.parent {
		if !isNil(current.value) {
			return current
		}
	}
	return nil
}

func lookup(value any, key any) any {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Map:
		return lookupMap(rv, key)
	case reflect.Struct:
		name, ok := key.(string)
		if !ok {
			return nil
		}
		field := rv.FieldByName(name)
		if !field.IsValid() || !field.CanInterface() {
			return nil
		}
		return field.Interface()
	case reflect.Slice, reflect.Array:
		i, ok := toIndex(key)
		if !ok || i < 0 || i >= rv.Len() {
			return nil
		}
		return rv.Index(i).Interface()
	default:
		return nil
	}
}

func lookupMap(rv reflect.Value, key any) any {
	if key == nil {
		return nil
	}

	k := reflect.ValueOf(key)
	keyType := rv.Type().Key()
	switch {
	case k.Type().AssignableTo(keyType):
	case k.Type().ConvertibleTo(keyType) && k.Kind() == keyType.Kind():
		k = k.Convert(keyType)
	default:
		return nil
	}

	v := rv.MapIndex(k)
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

func toIndex(key any) (int, bool) {
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	default:
		return 0, false
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
