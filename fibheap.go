// Package fibheap implements a Fibonacci heap: a priority queue
// with O(1) amortized insertion and key decrease, and O(log n)
// amortized extraction of the minimum.
//
// Insert returns a handle to the inserted node, and DecreaseKey
// lowers that node's key in amortized constant time. This is the
// combination needed by graph algorithms such as Dijkstra's
// shortest path, which repeatedly relax the priority of pending
// items.
//
// A Heap is not safe for concurrent use. Callers sharing one
// across goroutines must serialize access themselves.
package fibheap

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// ErrGreaterKey is the error reported by DecreaseKey when the new
// key is greater than the node's current key.
var ErrGreaterKey = errors.New("new key is greater than current key")

// Node holds one element of a Heap.
//
// A Node is created by Insert and remains a valid handle for
// DecreaseKey until it is returned by ExtractMin or
// ExtractMinNode. Passing an extracted node to DecreaseKey is
// undefined.
type Node[K cmp.Ordered] struct {
	key    K
	degree int
	parent *Node[K]
	child  *Node[K]

	// left and right link the node into the circular list of its
	// siblings: the root list, or the child list of parent.
	left, right *Node[K]

	// mark records that the node has lost a child since it last
	// became the child of another node. Roots are never marked.
	mark bool
}

// Key returns the node's key. For an extracted node it returns the
// key the node held when it was removed.
func (x *Node[K]) Key() K {
	return x.key
}

// Heap implements a Fibonacci heap holding keys of type K.
// The zero value is an empty heap ready to use.
type Heap[K cmp.Ordered] struct {
	min *Node[K]
	n   int
}

// Len returns the number of elements in the heap.
func (h *Heap[K]) Len() int {
	return h.n
}

// Min returns the minimum key without removing it.
// It returns false if the heap is empty.
func (h *Heap[K]) Min() (K, bool) {
	if h.min == nil {
		return *new(K), false
	}
	return h.min.key, true
}

// Insert adds key to the heap and returns a handle to the new
// node for use with DecreaseKey.
// The complexity is O(1).
func (h *Heap[K]) Insert(key K) *Node[K] {
	x := &Node[K]{key: key}
	x.left, x.right = x, x
	if h.min == nil {
		h.min = x
	} else {
		splice(h.min, x)
		if x.key < h.min.key {
			h.min = x
		}
	}
	h.n++
	return x
}

// ExtractMin removes the minimum key from the heap and returns it.
// It returns false if the heap is empty.
// The complexity is O(log n) amortized.
func (h *Heap[K]) ExtractMin() (K, bool) {
	z, ok := h.ExtractMinNode()
	if !ok {
		return *new(K), false
	}
	return z.key, true
}

// ExtractMinNode is like ExtractMin but returns the extracted node
// itself rather than just its key, so callers that index nodes by
// handle can tell which node was removed. The returned node is no
// longer in the heap.
func (h *Heap[K]) ExtractMinNode() (*Node[K], bool) {
	z := h.min
	if z == nil {
		return nil, false
	}
	// Promote z's children to the root list.
	for z.child != nil {
		c := z.child
		if c.right == c {
			z.child = nil
		} else {
			z.child = c.right
		}
		remove(c)
		c.parent = nil
		c.mark = false
		splice(z, c)
	}
	if z.right == z {
		h.min = nil
	} else {
		h.min = z.right
		remove(z)
		h.consolidate()
	}
	h.n--
	return z, true
}

// DecreaseKey lowers the key of node x to key. If key is greater
// than x's current key, it returns an error wrapping ErrGreaterKey
// and leaves the heap unchanged. The node must have been returned
// by Insert on this heap and not yet extracted.
// The complexity is O(1) amortized.
func (h *Heap[K]) DecreaseKey(x *Node[K], key K) error {
	if key > x.key {
		return fmt.Errorf("fibheap: cannot decrease key %v to %v: %w", x.key, key, ErrGreaterKey)
	}
	x.key = key
	if y := x.parent; y != nil && x.key < y.key {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if x.key < h.min.key {
		h.min = x
	}
	return nil
}

// cut detaches x from its parent y and promotes it to the root
// list, clearing its mark.
func (h *Heap[K]) cut(x, y *Node[K]) {
	if x.right == x {
		y.child = nil
	} else if y.child == x {
		y.child = x.right
	}
	remove(x)
	y.degree--
	splice(h.min, x)
	x.parent = nil
	x.mark = false
}

// cascadingCut walks up from y, cutting marked ancestors until it
// reaches a root or an unmarked node, which it marks. The walk is
// iterative so that a long chain of cuts cannot exhaust the stack.
func (h *Heap[K]) cascadingCut(y *Node[K]) {
	for {
		z := y.parent
		if z == nil {
			return
		}
		if !y.mark {
			y.mark = true
			return
		}
		h.cut(y, z)
		y = z
	}
}

// consolidate merges root trees of equal degree until every root
// has a distinct degree, then recomputes the minimum. It is called
// by ExtractMinNode before h.n is decremented.
func (h *Heap[K]) consolidate() {
	slots := make([]*Node[K], maxDegree(h.n))

	// Snapshot the root list: linking mutates it mid-scan.
	var roots []*Node[K]
	for w := h.min; ; {
		roots = append(roots, w)
		w = w.right
		if w == h.min {
			break
		}
	}

	for _, x := range roots {
		d := x.degree
		for slots[d] != nil {
			y := slots[d]
			if y.key < x.key {
				x, y = y, x
			}
			h.link(y, x)
			slots[d] = nil
			d++
			if d >= len(slots) {
				panic("fibheap: degree bound exceeded during consolidation")
			}
		}
		slots[d] = x
	}

	h.min = nil
	for _, x := range slots {
		if x == nil {
			continue
		}
		x.left, x.right = x, x
		if h.min == nil {
			h.min = x
		} else {
			splice(h.min, x)
			if x.key < h.min.key {
				h.min = x
			}
		}
	}
}

// link makes y a child of x. The caller has established that
// x.key <= y.key and that y is a root.
func (h *Heap[K]) link(y, x *Node[K]) {
	remove(y)
	y.parent = x
	if x.child == nil {
		x.child = y
	} else {
		splice(x.child, y)
	}
	x.degree++
	y.mark = false
}

// maxDegree returns an upper bound on the degree of any node in a
// heap of n nodes: floor(log_phi(n)) + 2, where phi is the golden
// ratio. A tree of degree d in a Fibonacci heap has at least
// phi**d nodes.
func maxDegree(n int) int {
	phi := (1 + math.Sqrt(5)) / 2
	return int(math.Floor(math.Log(float64(n))/math.Log(phi))) + 2
}

// splice inserts x, a singleton, into anchor's circular list as
// anchor's right neighbor.
func splice[K cmp.Ordered](anchor, x *Node[K]) {
	x.left = anchor
	x.right = anchor.right
	anchor.right.left = x
	anchor.right = x
}

// remove detaches x from its circular list, relinking its
// neighbors. x becomes a singleton.
func remove[K cmp.Ordered](x *Node[K]) {
	x.left.right = x.right
	x.right.left = x.left
	x.left, x.right = x, x
}
