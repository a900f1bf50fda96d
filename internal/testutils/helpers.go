package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/expect/pkg/chain"
)

// TestSon is the leaf fixture used by nested-value tests.
type TestSon struct {
	Name string
	Age  int
}

// TestParent nests a TestSon under both a pointer and a map.
type TestParent struct {
	Name     string
	Age      int
	Son      *TestSon
	Children []TestSon
	Tags     map[string]any
}

// NewTestParent returns a fully populated fixture.
func NewTestParent() TestParent {
	return TestParent{
		Name: "Daymon",
		Age:  24,
		Son:  &TestSon{Name: "Bryan", Age: 5},
		Children: []TestSon{
			{Name: "Bryan", Age: 5},
			{Name: "Ari", Age: 3},
		},
		Tags: map[string]any{
			"role": "parent",
			"son": map[string]any{
				"age": 5,
			},
		},
	}
}

// CaptureFailure runs fn and returns the assertion failure it raised, or
// nil. Any other panic is re-raised.
func CaptureFailure(fn func()) (failure *chain.AssertionFailure) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*chain.AssertionFailure)
			if !ok {
				panic(r)
			}
			failure = f
		}
	}()

	fn()
	return nil
}

// RequireFailure requires fn to raise an assertion failure whose message
// contains every substring, and returns the message.
func RequireFailure(t testing.TB, fn func(), substrings ...string) string {
	t.Helper()

	failure := CaptureFailure(fn)
	require.NotNil(t, failure, "expected an assertion failure")

	for _, s := range substrings {
		require.Contains(t, failure.Message, s)
	}
	return failure.Message
}

// RequireNoFailure requires fn to run without raising an assertion failure.
func RequireNoFailure(t testing.TB, fn func()) {
	t.Helper()

	failure := CaptureFailure(fn)
	if failure != nil {
		require.Failf(t, "unexpected assertion failure", "%s", failure.Message)
	}
}

// CreateTempProject creates a directory holding a scenarios folder.
func CreateTempProject(t *testing.T) string {
	tempDir := t.TempDir()

	err := os.MkdirAll(filepath.Join(tempDir, "scenarios"), 0755)
	require.NoError(t, err)

	return tempDir
}

// WriteFile writes content under dir, trimming the leading newline of raw
// string literals.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimPrefix(content, "\n")), 0644))
	return path
}
