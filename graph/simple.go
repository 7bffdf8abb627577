package graph

// WeightedEdge is the edge type used by Simple.
type WeightedEdge[Node comparable] struct {
	From, To Node
	Weight   float64
}

// Simple implements Graph for a concrete set of comparable nodes
// with weighted edges. The zero value is an empty graph ready to
// use.
type Simple[Node comparable] struct {
	nodes map[Node][]WeightedEdge[Node]
}

// Graph returns g as the Graph interface. This avoids the annoying
// explicit type conversion needed by the current Go generics
// implementation. See https://github.com/golang/go/issues/41176.
func (g *Simple[Node]) Graph() Graph[Node, WeightedEdge[Node]] {
	return g
}

// Weight implements Weighting for g's edges.
func (g *Simple[Node]) Weight(e WeightedEdge[Node]) float64 {
	return e.Weight
}

// AddNode adds a node. Typically this is only used to add
// nodes with no incoming or outgoing edges.
func (g *Simple[Node]) AddNode(n Node) {
	g.addNode(n)
}

// AddEdge adds nodes from and to, and adds an edge from -> to with
// the given weight. You don't need to call AddNode first; the
// nodes will be implicitly added if they don't already exist.
// Cycles are allowed.
func (g *Simple[Node]) AddEdge(from, to Node, weight float64) {
	g.addNode(from, WeightedEdge[Node]{From: from, To: to, Weight: weight})
	g.addNode(to)
}

func (g *Simple[Node]) addNode(n Node, edges ...WeightedEdge[Node]) {
	if g.nodes == nil {
		g.nodes = make(map[Node][]WeightedEdge[Node])
	}
	if _, ok := g.nodes[n]; !ok {
		g.nodes[n] = nil
	}
	g.nodes[n] = append(g.nodes[n], edges...)
}

// EdgesFrom implements Graph.EdgesFrom.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) EdgesFrom(n Node) ([]WeightedEdge[Node], bool) {
	edges, ok := g.nodes[n]
	return edges, ok
}

// Nodes implements Graph.Nodes.
func (g *Simple[Node]) Nodes(e WeightedEdge[Node]) (from, to Node) {
	return e.From, e.To
}
