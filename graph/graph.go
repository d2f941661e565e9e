// Package graph implements the directed value-dependency graph backing the
// frontend intermediate representation. Node identifiers are stable for the
// lifetime of a graph: they are never reassigned, even when nodes are removed.
package graph

import "fmt"

// NodeID identifies a node within a single Graph. IDs are only meaningful for
// the graph that issued them.
type NodeID int

// Edge records that the output of From feeds To as an operand. Data carries
// the operand role.
type Edge[E any] struct {
	From NodeID
	To   NodeID
	Data E
}

// Graph is a directed graph with per-node payloads of type N and per-edge
// payloads of type E. The zero value is not usable; call New.
type Graph[N, E any] struct {
	nodes   []N
	removed []bool
	nbAlive int
	edges   []Edge[E]
}

func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

// AddNode appends a node and returns its id. It always succeeds.
func (g *Graph[N, E]) AddNode(data N) NodeID {
	g.nodes = append(g.nodes, data)
	g.removed = append(g.removed, false)
	g.nbAlive++
	return NodeID(len(g.nodes) - 1)
}

// AddEdge appends an edge between two nodes of this graph. Both ids must have
// been issued by this graph and still be present.
func (g *Graph[N, E]) AddEdge(from, to NodeID, data E) {
	g.checkID(from)
	g.checkID(to)
	g.edges = append(g.edges, Edge[E]{From: from, To: to, Data: data})
}

// RemoveNode removes a node and all of its incident edges. The id is retired,
// never reused.
func (g *Graph[N, E]) RemoveNode(id NodeID) {
	g.checkID(id)
	g.removed[id] = true
	g.nbAlive--
	var zero N
	g.nodes[id] = zero
	edges := g.edges[:0]
	for _, e := range g.edges {
		if e.From != id && e.To != id {
			edges = append(edges, e)
		}
	}
	g.edges = edges
}

// Contains reports whether id refers to a present node of this graph.
func (g *Graph[N, E]) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && !g.removed[id]
}

func (g *Graph[N, E]) checkID(id NodeID) {
	if !g.Contains(id) {
		panic(fmt.Sprintf("graph: invalid node id %d", id))
	}
}

// NodeData returns the payload of a present node.
func (g *Graph[N, E]) NodeData(id NodeID) N {
	g.checkID(id)
	return g.nodes[id]
}

// NumNodes returns the number of present nodes.
func (g *Graph[N, E]) NumNodes() int {
	return g.nbAlive
}

func (g *Graph[N, E]) NumEdges() int {
	return len(g.edges)
}

// Nodes returns the ids of all present nodes in ascending id order. The order
// is stable across calls as long as the graph is not mutated.
func (g *Graph[N, E]) Nodes() []NodeID {
	ids := make([]NodeID, 0, g.nbAlive)
	for i := range g.nodes {
		if !g.removed[i] {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// Edges returns all edges in insertion order.
func (g *Graph[N, E]) Edges() []Edge[E] {
	edges := make([]Edge[E], len(g.edges))
	copy(edges, g.edges)
	return edges
}

// InEdges returns the edges ending at id, in insertion order.
func (g *Graph[N, E]) InEdges(id NodeID) []Edge[E] {
	g.checkID(id)
	var in []Edge[E]
	for _, e := range g.edges {
		if e.To == id {
			in = append(in, e)
		}
	}
	return in
}

// OutEdges returns the edges starting at id, in insertion order.
func (g *Graph[N, E]) OutEdges(id NodeID) []Edge[E] {
	g.checkID(id)
	var out []Edge[E]
	for _, e := range g.edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

func (g *Graph[N, E]) InDegree(id NodeID) int {
	g.checkID(id)
	d := 0
	for _, e := range g.edges {
		if e.To == id {
			d++
		}
	}
	return d
}

func (g *Graph[N, E]) OutDegree(id NodeID) int {
	g.checkID(id)
	d := 0
	for _, e := range g.edges {
		if e.From == id {
			d++
		}
	}
	return d
}
