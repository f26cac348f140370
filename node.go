package rbtree

// Color is the color of a tree node.
type Color uint8

// Nodes are either red or black. The zero value is Red, which is the color of
// freshly inserted nodes.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a node of a red-black tree.
//
// Nodes are owned by their tree and must be treated as read-only by clients.
// A node stays valid for its key until the key is deleted.
// The parent link is a back-reference for upward traversal only.
type Node struct {
	key    int
	color  Color
	left   *Node
	right  *Node
	parent *Node
	isnil  bool // true for the sentinel only
}

// Key returns the key stored in n. The sentinel's key is meaningless.
func (n *Node) Key() int {
	return n.key
}

// Color returns the color of n. The sentinel is always black.
func (n *Node) Color() Color {
	return n.color
}

// Left returns the left child of n, which may be the sentinel.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child of n, which may be the sentinel.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the parent of n. The parent of the root is the sentinel.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsSentinel reports whether n is the sentinel of its tree, i.e. represents an
// absent node. A nil node is treated as a sentinel as well.
func (n *Node) IsSentinel() bool {
	return n == nil || n.isnil
}

func (n *Node) isRed() bool {
	return n.color == Red
}

func (n *Node) isBlack() bool {
	return n.color == Black
}
