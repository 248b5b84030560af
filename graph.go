package tabletop

import (
	"fmt"

	"go.uber.org/zap"
)

// Handle is an opaque reference to a graph node. A handle becomes stale once
// its node is destroyed; the slot's generation moves on and the handle no
// longer resolves. The zero Handle never resolves.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Generation)
}

type slot struct {
	node       Node
	generation uint32
	live       bool
}

// Graph is an arena-backed tree of nodes anchored at a single root.
// Graph is not safe for concurrent use; the whole scene runs inside one
// update pass at a time.
type Graph struct {
	slots []slot
	free  []uint32
	root  Handle
	live  int

	// reused DFS stack for DestroyDescendants
	stack []Handle

	log *zap.Logger
}

// NewGraph returns an empty graph with no root.
func NewGraph() *Graph {
	return &Graph{log: zap.NewNop()}
}

// SetLogger sets the sink for debug-mode warnings. nil installs a no-op logger.
func (g *Graph) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	g.log = log
}

// CreateRoot creates the permanent root anchor. Panics if called twice.
func (g *Graph) CreateRoot() Handle {
	if !g.root.IsZero() {
		panic("tabletop: root already created")
	}
	g.root = g.alloc(Node{Name: "root", Type: NodeTypeRoot, Visible: true, Color: ColorWhite})
	return g.root
}

// Root returns the root handle, or the zero Handle if CreateRoot has not
// been called.
func (g *Graph) Root() Handle {
	return g.root
}

// AttachChild creates a new node as the last child of parent and returns its
// handle. Panics if parent is stale.
func (g *Graph) AttachChild(parent Handle, spec NodeSpec) Handle {
	p := g.Node(parent)
	if p == nil {
		panic(fmt.Sprintf("tabletop: attach %q to stale handle %s", spec.Name, parent))
	}
	if spec.Type == NodeTypeRoot {
		panic("tabletop: cannot attach a root node")
	}
	h := g.alloc(newNode(parent, spec))
	// alloc may grow g.slots; re-resolve the parent.
	p = &g.slots[parent.Index].node
	p.children = append(p.children, h)
	if globalDebug {
		debugCheckChildCount(g.log, p)
	}
	return h
}

// DestroyDescendants removes every node transitively parented under h and
// invalidates their handles. h itself survives with no children. No-op if h
// has no children or is stale.
func (g *Graph) DestroyDescendants(h Handle) {
	n := g.Node(h)
	if n == nil || len(n.children) == 0 {
		return
	}
	g.stack = append(g.stack[:0], n.children...)
	n.children = n.children[:0]
	for len(g.stack) > 0 {
		last := len(g.stack) - 1
		cur := g.stack[last]
		g.stack = g.stack[:last]
		s := &g.slots[cur.Index]
		if !s.live || s.generation != cur.Generation {
			continue
		}
		g.stack = append(g.stack, s.node.children...)
		g.release(cur.Index)
	}
}

// Valid reports whether h refers to a live node.
func (g *Graph) Valid(h Handle) bool {
	if h.IsZero() || int(h.Index) >= len(g.slots) {
		return false
	}
	s := &g.slots[h.Index]
	return s.live && s.generation == h.Generation
}

// Node returns the node referenced by h, or nil if h is stale. The pointer is
// only valid until the next AttachChild or DestroyDescendants call.
func (g *Graph) Node(h Handle) *Node {
	if !g.Valid(h) {
		return nil
	}
	return &g.slots[h.Index].node
}

// Children returns the child handles of h, or nil if h is stale.
func (g *Graph) Children(h Handle) []Handle {
	n := g.Node(h)
	if n == nil {
		return nil
	}
	return n.children
}

// Len returns the number of live nodes, root included.
func (g *Graph) Len() int {
	return g.live
}

// Each calls fn for every live node in arena order until fn returns false.
// fn must not attach or destroy nodes.
func (g *Graph) Each(fn func(h Handle, n *Node) bool) {
	for i := range g.slots {
		s := &g.slots[i]
		if !s.live {
			continue
		}
		if !fn(Handle{Index: uint32(i), Generation: s.generation}, &s.node) {
			return
		}
	}
}

// IsDescendant reports whether h sits anywhere below ancestor.
func (g *Graph) IsDescendant(h, ancestor Handle) bool {
	n := g.Node(h)
	for n != nil {
		p := n.parent
		if p == ancestor {
			return g.Valid(ancestor)
		}
		n = g.Node(p)
	}
	return false
}

// WorldPosition sums local positions from h up to the root.
func (g *Graph) WorldPosition(h Handle) (Vec2, bool) {
	n := g.Node(h)
	if n == nil {
		return Vec2{}, false
	}
	var pos Vec2
	for n != nil {
		pos.X += n.X
		pos.Y += n.Y
		n = g.Node(n.parent)
	}
	return pos, true
}

func (g *Graph) alloc(n Node) Handle {
	g.live++
	if k := len(g.free); k > 0 {
		idx := g.free[k-1]
		g.free = g.free[:k-1]
		s := &g.slots[idx]
		s.node = n
		s.live = true
		return Handle{Index: idx, Generation: s.generation}
	}
	g.slots = append(g.slots, slot{node: n, generation: 1, live: true})
	return Handle{Index: uint32(len(g.slots) - 1), Generation: 1}
}

func (g *Graph) release(idx uint32) {
	s := &g.slots[idx]
	s.node = Node{}
	s.live = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	g.free = append(g.free, idx)
	g.live--
}
