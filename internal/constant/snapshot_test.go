package constant

import (
	"testing"

	"github.com/cwbudde/go-pascal-sema/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestConstStringRendering snapshots String() across every Const variant,
// the rendering spec.md §3.2 requires for diagnostic and debug output.
func TestConstStringRendering(t *testing.T) {
	colors := types.NewEnum("Color", "Red", "Green", "Blue")

	tests := []struct {
		name string
		c    Const
	}{
		{"int", NewInt(zeroPos, 42)},
		{"real", NewReal(zeroPos, 3.5)},
		{"char", NewChar(zeroPos, 'x')},
		{"bool", NewBool(zeroPos, true)},
		{"string", NewString(zeroPos, "hello")},
		{"enum", NewEnum(zeroPos, colors, 1)},
		{"enum out of range", NewEnum(zeroPos, colors, 9)},
		{"range", NewRange(zeroPos, types.NewRange(1, 10, types.IntegerType))},
		{"set", NewSet(zeroPos, NewInt(zeroPos, 1), NewInt(zeroPos, 2), NewInt(zeroPos, 3))},
		{"empty set", NewSet(zeroPos)},
		{"compound", NewCompound(zeroPos, "unresolved-expr")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, tt.c.String())
		})
	}
}
