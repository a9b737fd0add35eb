package builtin_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/builtin"
	"github.com/wisplang/wisp/objects"
)

func call(t *testing.T, name string, args ...objects.Value) (objects.Value, *bytes.Buffer) {
	t.Helper()
	fn, ok := builtin.Lookup(name)
	require.True(t, ok, "builtin %q should be registered", name)
	buf := &bytes.Buffer{}
	v, err := fn(buf, args)
	require.NoError(t, err)
	return v, buf
}

func TestPrintConcatenatesWithoutSeparator(t *testing.T) {
	_, out := call(t, "print", &objects.Int{Value: 1}, &objects.Str{Value: "x"})
	assert.Equal(t, "1x", out.String())
}

func TestPrintlnJoinsWithSpaceAndNewline(t *testing.T) {
	_, out := call(t, "println", &objects.Int{Value: 1}, &objects.Int{Value: 2})
	assert.Equal(t, "1 2\n", out.String())
}

func TestSqrtOnInt(t *testing.T) {
	v, _ := call(t, "sqrt", &objects.Int{Value: 9})
	assert.Equal(t, 3.0, v.(*objects.Float).Value)
}

func TestAbsPreservesKind(t *testing.T) {
	vi, _ := call(t, "abs", &objects.Int{Value: -5})
	assert.IsType(t, &objects.Int{}, vi)
	assert.Equal(t, int64(5), vi.(*objects.Int).Value)

	vf, _ := call(t, "abs", &objects.Float{Value: -2.5})
	assert.IsType(t, &objects.Float{}, vf)
	assert.Equal(t, 2.5, vf.(*objects.Float).Value)
}

func TestFloorIntPassesThrough(t *testing.T) {
	v, _ := call(t, "floor", &objects.Int{Value: 7})
	assert.Equal(t, int64(7), v.(*objects.Int).Value)
}

func TestFloorFloatTruncatesDown(t *testing.T) {
	v, _ := call(t, "floor", &objects.Float{Value: 7.9})
	assert.Equal(t, int64(7), v.(*objects.Int).Value)
}

func TestLenOfArrayAndString(t *testing.T) {
	v, _ := call(t, "len", &objects.Array{Elements: []objects.Value{&objects.Int{Value: 1}, &objects.Int{Value: 2}}})
	assert.Equal(t, int64(2), v.(*objects.Int).Value)

	v, _ = call(t, "len", &objects.Str{Value: "hi"})
	assert.Equal(t, int64(2), v.(*objects.Int).Value)
}

func TestWrongArityIsAnError(t *testing.T) {
	fn, ok := builtin.Lookup("sin")
	require.True(t, ok)
	_, err := fn(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes 1 argument")
}

func TestWrongKindIsAnError(t *testing.T) {
	fn, ok := builtin.Lookup("sqrt")
	require.True(t, ok)
	_, err := fn(&bytes.Buffer{}, []objects.Value{&objects.Str{Value: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a number")
}

func TestUnknownNameIsNotRegistered(t *testing.T) {
	_, ok := builtin.Lookup("not_a_builtin")
	assert.False(t, ok)
}
