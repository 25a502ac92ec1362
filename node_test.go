package cherry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLeafBuilder(t *testing.T) {
	t.Run("name and value are kept", func(t *testing.T) {
		n := Leaf[int]().Name("x").Value(2).Build()
		require.Equal(t, "x", n.Name())
		require.Equal(t, 2, n.Quantity())
	})

	t.Run("value before name", func(t *testing.T) {
		n := Leaf[int]().Value(2).Name("x").Build()
		require.Equal(t, "x", n.Name())
		require.Equal(t, 2, n.Quantity())
	})

	t.Run("unnamed leaf gets a synthetic name", func(t *testing.T) {
		n := Leaf[string]().Value("payload").Build()
		require.Equal(t, "(leaf)", n.Name())
	})
}

func TestLabeled(t *testing.T) {
	t.Run("rename is pure", func(t *testing.T) {
		n := Leaf[int]().Name("node").Value(1).Build()
		renamed := n.Labeled("renamed")

		require.Equal(t, "renamed", renamed.Name())
		require.Equal(t, n.Quantity(), renamed.Quantity())
		require.Equal(t, "node", n.Name(), "original must be untouched")
	})

	t.Run("children survive a rename", func(t *testing.T) {
		res := Add(
			Leaf[int]().Name("a").Value(2).Build(),
			Leaf[int]().Name("b").Value(3).Build(),
		)
		renamed := res.Labeled("total")

		want := res.Document()
		want.Label = "total"
		if diff := cmp.Diff(want, renamed.Document()); diff != "" {
			t.Fatalf("document mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("records provenance", func(t *testing.T) {
		x := Leaf[float64]().Name("x").Value(2.1).Build()
		res := Map(x, math.Floor)

		require.Equal(t, 2.0, res.Quantity())
		require.Equal(t, "(map)", res.Name())

		doc := res.Document()
		require.Len(t, doc.Subexpr, 1)
		if diff := cmp.Diff(x.Document(), doc.Subexpr[0]); diff != "" {
			t.Fatalf("child mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("can change the payload type", func(t *testing.T) {
		x := Leaf[float64]().Name("x").Value(2.9).Build()
		res := Map(x, func(v float64) int { return int(v) })
		require.Equal(t, 2, res.Quantity())
	})

	t.Run("label override", func(t *testing.T) {
		x := Leaf[float64]().Name("x").Value(2.1).Build()
		res := Map(x, math.Floor).Labeled("floor")
		require.Equal(t, "floor", res.Name())
	})
}
