package graph

import "github.com/bits-and-blooms/bitset"

// Isomorphic reports whether a and b are isomorphic: whether some relabeling
// of a's nodes onto b's nodes preserves every edge, with node and edge
// payloads compared by the given predicates. Both predicates must be
// equivalence relations.
//
// This is a verification utility for tests and debugging on program-sized
// graphs. The search is super-polynomial in the worst case; do not call it on
// large graphs or hot paths.
func Isomorphic[N, E any](a, b *Graph[N, E], nodeEq func(N, N) bool, edgeEq func(E, E) bool) bool {
	if a.NumNodes() != b.NumNodes() || a.NumEdges() != b.NumEdges() {
		return false
	}
	m := &isoMatcher[N, E]{
		a:      a,
		b:      b,
		nodeEq: nodeEq,
		edgeEq: edgeEq,
		aIDs:   a.Nodes(),
		bIDs:   b.Nodes(),
	}
	m.used = bitset.New(uint(len(m.bIDs)))
	m.mapping = make(map[NodeID]NodeID, len(m.aIDs))
	return m.match(0)
}

type isoMatcher[N, E any] struct {
	a, b    *Graph[N, E]
	nodeEq  func(N, N) bool
	edgeEq  func(E, E) bool
	aIDs    []NodeID
	bIDs    []NodeID
	used    *bitset.BitSet
	mapping map[NodeID]NodeID
}

func (m *isoMatcher[N, E]) match(i int) bool {
	if i == len(m.aIDs) {
		return true
	}
	u := m.aIDs[i]
	for j, v := range m.bIDs {
		if m.used.Test(uint(j)) {
			continue
		}
		if !m.candidate(u, v) {
			continue
		}
		m.used.Set(uint(j))
		m.mapping[u] = v
		if m.consistent(u, v) && m.match(i+1) {
			return true
		}
		delete(m.mapping, u)
		m.used.Clear(uint(j))
	}
	return false
}

func (m *isoMatcher[N, E]) candidate(u, v NodeID) bool {
	if !m.nodeEq(m.a.NodeData(u), m.b.NodeData(v)) {
		return false
	}
	return m.a.InDegree(u) == m.b.InDegree(v) && m.a.OutDegree(u) == m.b.OutDegree(v)
}

// consistent checks that every edge between u and an already-mapped node has a
// payload-equal counterpart between their images, and vice versa.
func (m *isoMatcher[N, E]) consistent(u, v NodeID) bool {
	for w, x := range m.mapping {
		if !m.matchPayloads(edgesBetween(m.a, u, w), edgesBetween(m.b, v, x)) {
			return false
		}
		if w == u {
			continue
		}
		if !m.matchPayloads(edgesBetween(m.a, w, u), edgesBetween(m.b, x, v)) {
			return false
		}
	}
	return true
}

// matchPayloads matches two edge-payload multisets under edgeEq.
func (m *isoMatcher[N, E]) matchPayloads(as, bs []E) bool {
	if len(as) != len(bs) {
		return false
	}
	taken := make([]bool, len(bs))
	for _, ae := range as {
		found := false
		for k, be := range bs {
			if !taken[k] && m.edgeEq(ae, be) {
				taken[k] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func edgesBetween[N, E any](g *Graph[N, E], from, to NodeID) []E {
	var payloads []E
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			payloads = append(payloads, e.Data)
		}
	}
	return payloads
}
