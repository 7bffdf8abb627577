// Package graph provides a weighted directed-graph interface and a
// shortest-path implementation whose fringe is held in a Fibonacci
// heap, so that relaxing the distance of a pending node costs
// amortized constant time.
package graph

type Graph[Node comparable, Edge any] interface {
	// EdgesFrom returns the edges leaving n. It returns false if
	// n is not a node of the graph.
	EdgesFrom(n Node) ([]Edge, bool)
	// Nodes returns the two endpoints of e.
	Nodes(e Edge) (from, to Node)
}

// Weighting returns the cost of traversing an edge. Costs must be
// non-negative for ShortestPath to produce correct results.
type Weighting[Edge any] func(e Edge) float64

// UniformCost is a Weighting that charges 1 for every edge.
func UniformCost[Edge any](Edge) float64 {
	return 1
}
