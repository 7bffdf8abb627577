package graph

import (
	"github.com/rogpeppe/fibheap"
)

// item holds one node of the fringe being calculated by
// ShortestPath. The node's current best distance lives in the
// heap, reached through handle; edge is the last edge on the best
// known path to the node.
type item[Node, Edge any] struct {
	n      Node
	edge   Edge
	handle *fibheap.Node[float64]
	done   bool
}

// ShortestPath returns the cheapest path from -> to in the graph g
// under the weighting w, using Dijkstra's algorithm, along with
// its total cost. The returned slice holds the edges leading from
// the source to the destination. It returns false if no path
// exists.
func ShortestPath[Node comparable, Edge any](g Graph[Node, Edge], w Weighting[Edge], from, to Node) ([]Edge, float64, bool) {
	var h fibheap.Heap[float64]
	items := make(map[Node]*item[Node, Edge])
	byHandle := make(map[*fibheap.Node[float64]]*item[Node, Edge])

	start := &item[Node, Edge]{n: from, handle: h.Insert(0)}
	items[from] = start
	byHandle[start.handle] = start

	var found *item[Node, Edge]
	for {
		hn, ok := h.ExtractMinNode()
		if !ok {
			break
		}
		nearest := byHandle[hn]
		delete(byHandle, hn)
		nearest.done = true
		if nearest.n == to {
			found = nearest
			break
		}
		edges, _ := g.EdgesFrom(nearest.n)
		for _, e := range edges {
			edgeFrom, edgeTo := g.Nodes(e)
			if edgeFrom != nearest.n {
				continue
			}
			dist := hn.Key() + w(e)
			toItem, ok := items[edgeTo]
			if !ok {
				it := &item[Node, Edge]{
					n:      edgeTo,
					edge:   e,
					handle: h.Insert(dist),
				}
				items[edgeTo] = it
				byHandle[it.handle] = it
			} else if !toItem.done && dist < toItem.handle.Key() {
				toItem.edge = e
				// dist is strictly below the handle's current
				// key, so DecreaseKey cannot fail.
				h.DecreaseKey(toItem.handle, dist)
			}
		}
	}
	if found == nil {
		return nil, 0, false
	}
	var edges []Edge
	for it := found; it.n != from; {
		edges = append(edges, it.edge)
		edgeFrom, _ := g.Nodes(it.edge)
		it = items[edgeFrom]
	}
	reverse(edges)
	return edges, found.handle.Key(), true
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
