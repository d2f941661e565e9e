package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func eqString(a, b string) bool { return a == b }
func eqInt(a, b int) bool       { return a == b }

// two inputs feeding a sum
func sumGraph(order []string) (*Graph[string, int], map[string]NodeID) {
	g := New[string, int]()
	ids := make(map[string]NodeID)
	for _, name := range order {
		ids[name] = g.AddNode(name)
	}
	g.AddEdge(ids["a"], ids["sum"], 0)
	g.AddEdge(ids["b"], ids["sum"], 1)
	return g, ids
}

func TestIsomorphicReflexive(t *testing.T) {
	g, _ := sumGraph([]string{"a", "b", "sum"})
	require.True(t, Isomorphic(g, g, eqString, eqInt))
}

func TestIsomorphicInsensitiveToInsertionOrder(t *testing.T) {
	g1, _ := sumGraph([]string{"a", "b", "sum"})
	g2, _ := sumGraph([]string{"b", "sum", "a"})
	require.True(t, Isomorphic(g1, g2, eqString, eqInt))
	require.True(t, Isomorphic(g2, g1, eqString, eqInt))
}

func TestNotIsomorphic(t *testing.T) {
	g1, _ := sumGraph([]string{"a", "b", "sum"})

	// different node payload
	g2 := New[string, int]()
	a := g2.AddNode("a")
	b := g2.AddNode("b")
	s := g2.AddNode("product")
	g2.AddEdge(a, s, 0)
	g2.AddEdge(b, s, 1)
	require.False(t, Isomorphic(g1, g2, eqString, eqInt))

	// different edge payload
	g3, ids := sumGraph([]string{"a", "b", "sum"})
	_ = ids
	g3.edges[1].Data = 2
	require.False(t, Isomorphic(g1, g3, eqString, eqInt))

	// different shape
	g4 := New[string, int]()
	g4.AddNode("a")
	g4.AddNode("b")
	g4.AddNode("sum")
	require.False(t, Isomorphic(g1, g4, eqString, eqInt))
}

func TestIsomorphicParallelEdges(t *testing.T) {
	// the same literal used as both operands of a multiply
	build := func(first, second int) *Graph[string, int] {
		g := New[string, int]()
		lit := g.AddNode("lit")
		mul := g.AddNode("mul")
		g.AddEdge(lit, mul, first)
		g.AddEdge(lit, mul, second)
		return g
	}
	require.True(t, Isomorphic(build(0, 1), build(1, 0), eqString, eqInt))
	require.False(t, Isomorphic(build(0, 1), build(0, 0), eqString, eqInt))
}

func TestIsomorphicIgnoresRemovedNodes(t *testing.T) {
	g1, _ := sumGraph([]string{"a", "b", "sum"})
	g2, ids := sumGraph([]string{"a", "b", "sum"})
	tmp := g2.AddNode("scratch")
	g2.AddEdge(ids["sum"], tmp, 9)
	g2.RemoveNode(tmp)
	require.True(t, Isomorphic(g1, g2, eqString, eqInt))
}
