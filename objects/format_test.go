package objects_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/wisplang/wisp/function"
	"github.com/wisplang/wisp/objects"
)

// TestValueDisplayFormatting snapshots the user-facing String() rendering
// of each value kind (spec §6's formatting contract), so a future change
// to one variant's format is caught even if nothing else about the
// change looks wrong.
func TestValueDisplayFormatting(t *testing.T) {
	values := map[string]objects.Value{
		"int":      &objects.Int{Value: 42},
		"float":    &objects.Float{Value: 3.5},
		"float_whole": &objects.Float{Value: 2},
		"bool":     &objects.Bool{Value: true},
		"string":   &objects.Str{Value: "hello"},
		"array": &objects.Array{Elements: []objects.Value{
			&objects.Int{Value: 1},
			&objects.Str{Value: "two"},
			&objects.Bool{Value: false},
		}},
		"nested_array": &objects.Array{Elements: []objects.Value{
			&objects.Array{Elements: []objects.Value{&objects.Int{Value: 1}}},
		}},
		"unit":     objects.TheUnit,
		"function": &function.Function{Name: "add", Params: []string{"a", "b"}},
	}

	for name, v := range values {
		snaps.MatchSnapshot(t, name, v.String())
	}
}
