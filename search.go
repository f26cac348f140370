package rbtree

// Search returns the node holding key, or the sentinel if key is not present.
// With duplicates allowed, the first matching node on the path from the root
// is returned.
func (t *Tree) Search(key int) *Node {
	n := t.root
	for n != t.nil && key != n.key {
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// Contains reports whether key is present in the tree.
func (t *Tree) Contains(key int) bool {
	return t.Search(key) != t.nil
}

// Minimum returns the node with the smallest key in the subtree rooted at n.
// For the sentinel, Minimum returns the sentinel.
func (t *Tree) Minimum(n *Node) *Node {
	if n.IsSentinel() {
		return t.nil
	}
	for n.left != t.nil {
		n = n.left
	}
	return n
}

// Maximum returns the node with the largest key in the subtree rooted at n.
// For the sentinel, Maximum returns the sentinel.
func (t *Tree) Maximum(n *Node) *Node {
	if n.IsSentinel() {
		return t.nil
	}
	for n.right != t.nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key of the tree, or ErrEmptyTree.
func (t *Tree) Min() (int, error) {
	n := t.Minimum(t.root)
	if n == t.nil {
		return 0, ErrEmptyTree
	}
	return n.key, nil
}

// Max returns the largest key of the tree, or ErrEmptyTree.
func (t *Tree) Max() (int, error) {
	n := t.Maximum(t.root)
	if n == t.nil {
		return 0, ErrEmptyTree
	}
	return n.key, nil
}

// Successor returns the in-order successor of n, or the sentinel if n holds
// the largest key.
func (t *Tree) Successor(n *Node) *Node {
	if n.IsSentinel() {
		return t.nil
	}
	if n.right != t.nil {
		return t.Minimum(n.right)
	}
	p := n.parent
	for p != t.nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// Predecessor returns the in-order predecessor of n, or the sentinel if n holds
// the smallest key.
func (t *Tree) Predecessor(n *Node) *Node {
	if n.IsSentinel() {
		return t.nil
	}
	if n.left != t.nil {
		return t.Maximum(n.left)
	}
	p := n.parent
	for p != t.nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}
