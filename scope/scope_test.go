package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/scope"
)

func TestDeclareAndLookupInRootFrame(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", &objects.Int{Value: 1})
	v, err := s.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*objects.Int).Value)
}

func TestLookupFallsBackToGlobal(t *testing.T) {
	s := scope.NewStack()
	s.Global["pi"] = &objects.Float{Value: 3.14}
	v, err := s.Lookup("pi")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v.(*objects.Float).Value)
}

func TestLookupUndefinedFails(t *testing.T) {
	s := scope.NewStack()
	_, err := s.Lookup("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined Variable: nope")
}

func TestCallFrameCannotSeeCallerLocals(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", &objects.Int{Value: 1})
	s.PushCall()
	_, err := s.Lookup("x")
	require.Error(t, err)
	s.Pop()
	v, err := s.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*objects.Int).Value)
}

func TestLoopFrameCanSeeEnclosingLocals(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", &objects.Int{Value: 7})
	s.PushLoop()
	v, err := s.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.(*objects.Int).Value)
}

func TestLookupReturnsACopyOfArrays(t *testing.T) {
	s := scope.NewStack()
	original := &objects.Array{Elements: []objects.Value{&objects.Int{Value: 1}}}
	s.Declare("a", original)

	v, err := s.Lookup("a")
	require.NoError(t, err)
	copied := v.(*objects.Array)
	copied.Elements[0] = &objects.Int{Value: 99}

	assert.Equal(t, int64(1), original.Elements[0].(*objects.Int).Value)
}

func TestAssignOverwritesInPlace(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", &objects.Int{Value: 1})
	require.NoError(t, s.Assign("x", &objects.Int{Value: 2}))
	v, _ := s.Lookup("x")
	assert.Equal(t, int64(2), v.(*objects.Int).Value)
}

func TestAssignUndeclaredFails(t *testing.T) {
	s := scope.NewStack()
	err := s.Assign("x", &objects.Int{Value: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestResolvableChecksFullChain(t *testing.T) {
	s := scope.NewStack()
	s.Global["g"] = &objects.Int{Value: 1}
	s.Declare("outer", &objects.Int{Value: 2})
	s.PushLoop()
	assert.True(t, s.Resolvable("outer"))
	assert.True(t, s.Resolvable("g"))
	assert.False(t, s.Resolvable("missing"))
}
