package tabletop

// Card is the identity data carried by a named card. Zones carry none.
type Card struct {
	Name     string
	Value    int
	BaseFame int
}

// NodeSpec describes a node to be created by Graph.AttachChild.
type NodeSpec struct {
	Name   string
	Type   NodeType
	X, Y   float64 // local position, relative to the parent
	Width  float64
	Height float64
	Color  Color
	Text   string // NodeTypeLabel content
	Card   *Card  // nil for the table, labels and unlabeled zones
}

// Node is the stored form of every graph element. A single flat struct is
// used for all node types; Type selects which fields are meaningful.
type Node struct {
	Name string
	Type NodeType

	// Hierarchy
	parent   Handle
	children []Handle

	// Transform (local)
	X, Y float64

	// Visual
	Width   float64
	Height  float64
	Color   Color
	Text    string
	Visible bool

	// Card identity; nil for zones, labels, the table and the root.
	Card *Card
}

// Size returns the visual extent of the node.
func (n *Node) Size() Vec2 {
	return Vec2{n.Width, n.Height}
}

// IsCard reports whether the node is a card carrying identity data.
func (n *Node) IsCard() bool {
	return n.Type == NodeTypeCard && n.Card != nil
}

// Children returns the child handles. The returned slice MUST NOT be mutated
// by the caller.
func (n *Node) Children() []Handle {
	return n.children
}

// Parent returns the parent handle, or the zero Handle for the root.
func (n *Node) Parent() Handle {
	return n.parent
}

func newNode(parent Handle, spec NodeSpec) Node {
	n := Node{
		Name:    spec.Name,
		Type:    spec.Type,
		parent:  parent,
		X:       spec.X,
		Y:       spec.Y,
		Width:   spec.Width,
		Height:  spec.Height,
		Color:   spec.Color,
		Text:    spec.Text,
		Visible: true,
	}
	if n.Color == (Color{}) {
		n.Color = ColorWhite
	}
	if spec.Card != nil {
		c := *spec.Card
		n.Card = &c
	}
	return n
}
