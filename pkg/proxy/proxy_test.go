package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/internal/errors"
)

type parent struct {
	Name string
	Age  int
	Cars []string
	Data map[string]any
}

type son struct {
	Name   string
	Age    int
	Parent *parent
	secret string
}

func fixture() son {
	return son{
		Name: "Kyle",
		Age:  4,
		Parent: &parent{
			Name: "Daymon",
			Age:  5,
			Cars: []string{"Tesla", "Civic"},
			Data: map[string]any{"id": 1},
		},
		secret: "hidden",
	}
}

func TestGet_Navigation(t *testing.T) {
	root := New(fixture(), nil)

	assert.Equal(t, "Kyle", root.Get("Name").Value())
	assert.Equal(t, 5, root.Get("Parent").Get("Age").Value())
	assert.Equal(t, "Civic", root.Get("Parent").Get("Cars").Get(1).Value())
	assert.Equal(t, 1, root.Get("Parent").Get("Data").Get("id").Value())
}

func TestGet_MissingKeysYieldNil(t *testing.T) {
	root := New(fixture(), nil)

	tests := []struct {
		name string
		node *Node
	}{
		{"unknown field", root.Get("Nope")},
		{"unexported field", root.Get("secret")},
		{"index out of range", root.Get("Parent").Get("Cars").Get(5)},
		{"negative index", root.Get("Parent").Get("Cars").Get(-1)},
		{"string index on slice", root.Get("Parent").Get("Cars").Get("first")},
		{"missing map key", root.Get("Parent").Get("Data").Get("missing")},
		{"through nil", root.Get("Nope").Get("deeper")},
		{"scalar", root.Get("Age").Get("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.node.Value())
		})
	}
}

func TestGet_MapKeyConversion(t *testing.T) {
	type id int
	root := New(map[id]string{1: "one"}, nil)

	assert.Equal(t, "one", root.Get(1).Value())
	assert.Nil(t, root.Get("1").Value())
}

func TestGet_ReservedKeysPanic(t *testing.T) {
	root := New(map[string]any{KeyValue: "x"}, nil)

	for _, key := range []string{KeyIsProxy, KeyValue, KeyParent, KeyPath} {
		t.Run(key, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(*errors.ExpectError)
				require.True(t, ok)
				assert.True(t, errors.IsMisuse(err))
				assert.Contains(t, err.Error(), key)
			}()
			root.Get(key)
		})
	}
}

func TestGet_CreatesDistinctChildren(t *testing.T) {
	root := New(fixture(), nil)

	first := root.Get("Name")
	second := root.Get("Name")

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Value(), second.Value())
	assert.Same(t, root, first.Parent())
}

func TestAccessors(t *testing.T) {
	root := New(42, nil)
	child := New("v", root, "segment")

	assert.Equal(t, 42, Value(root))
	assert.Nil(t, Parent(root))
	_, ok := Path(root)
	assert.False(t, ok)

	assert.Same(t, root, Parent(child))
	path, ok := Path(child)
	assert.True(t, ok)
	assert.Equal(t, "segment", path)
}

func TestIsProxy(t *testing.T) {
	var nilNode *Node

	assert.True(t, IsProxy(New(1, nil)))
	assert.False(t, IsProxy(nilNode))
	assert.False(t, IsProxy(nil))
	assert.False(t, IsProxy(5))
	assert.False(t, IsProxy("string"))
	assert.False(t, IsProxy(map[string]any{KeyIsProxy: true}))
}

func TestComputeFullPath(t *testing.T) {
	root := New(fixture(), nil)

	_, ok := ComputeFullPath(root)
	assert.False(t, ok)

	path, ok := ComputeFullPath(root.Get("Parent").Get("Cars").Get(0))
	assert.True(t, ok)
	assert.Equal(t, "Parent.Cars.0", path)

	detached := New("x", New("y", nil))
	_, ok = ComputeFullPath(detached)
	assert.False(t, ok)

	rootWithSegment := New(fixture(), nil, "son")
	path, _ = ComputeFullPath(rootWithSegment.Get("Age"))
	assert.Equal(t, "son.Age", path)
}

func TestComputeFullPath_EmptyKey(t *testing.T) {
	root := New(map[string]any{"": 5}, nil)

	child := root.Get("")
	assert.Equal(t, 5, child.Value())

	path, ok := ComputeFullPath(child)
	assert.True(t, ok)
	assert.Empty(t, path)
}

func TestNearestDefined(t *testing.T) {
	root := New(fixture(), nil)
	missing := root.Get("Parent").Get("Data").Get("missing").Get("deeper")

	nearest := NearestDefined(missing)
	require.NotNil(t, nearest)
	path, _ := ComputeFullPath(nearest)
	assert.Equal(t, "Parent.Data", path)

	assert.Same(t, root, NearestDefined(root))
	assert.Nil(t, NearestDefined(New(nil, nil)))
}

func TestWith(t *testing.T) {
	age := With(fixture(), func(p *Node) any {
		return p.Get("Parent").Get("Age").Value()
	})
	assert.Equal(t, 5, age)

	path := With(map[string]any{"a": map[string]any{"b": 1}}, func(p *Node) string {
		full, _ := ComputeFullPath(p.Get("a").Get("b"))
		return full
	})
	assert.Equal(t, "a.b", path)
}
