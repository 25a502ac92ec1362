package cherry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cherrypit/cherry/quantity"
)

func TestRender(t *testing.T) {
	leaf := func(name string, v int) Node[int] {
		return Leaf[int]().Name(name).Value(v).Build()
	}

	t.Run("one line per node", func(t *testing.T) {
		res := Mul(Add(leaf("a", 2), leaf("b", 3)), Sub(leaf("c", 4), leaf("d", 1)))

		var buf strings.Builder
		res.Document().Render(&buf)
		out := buf.String()

		require.Contains(t, out, "(mul) = 15")
		require.Contains(t, out, "(add) = 5")
		require.Contains(t, out, "(sub) = 3")
		require.Contains(t, out, "a = 2")
		require.Contains(t, out, "d = 1")
		require.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 7)
	})

	t.Run("units are printed", func(t *testing.T) {
		x := Leaf[quantity.Quantity]().Name("x").Value(quantity.New(2, "m")).Build()

		var buf strings.Builder
		x.Document().Render(&buf)
		require.Contains(t, buf.String(), "x = 2 m^1")
	})
}
