package rbtree

import "fmt"

// Delete removes key from the tree. If key is not present, Delete returns
// ErrKeyNotFound and the tree is left unchanged. With duplicates allowed, a
// single occurrence of key is removed.
//
// Nodes for other keys stay valid, i.e. Delete never moves keys between nodes.
func (t *Tree) Delete(key int) error {
	z := t.Search(key)
	if z == t.nil {
		T().Debugf("rbtree: cannot delete key %d", key)
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	t.deleteNode(z)
	return nil
}

// ExtractMin removes the smallest key from the tree and returns it.
// For an empty tree ExtractMin returns ErrEmptyTree.
func (t *Tree) ExtractMin() (int, error) {
	z := t.Minimum(t.root)
	if z == t.nil {
		return 0, ErrEmptyTree
	}
	key := z.key
	t.deleteNode(z)
	return key, nil
}

// deleteNode splices z out of the tree. y is the node which is physically
// removed from its position: z itself if z has at most one child, z's in-order
// successor otherwise. x takes y's former position and may be the sentinel,
// in which case the sentinel's parent link is used as scratch space.
func (t *Tree) deleteNode(z *Node) {
	y := z
	yColor := y.color
	var x *Node
	switch {
	case z.left == t.nil:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.nil:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.Minimum(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if yColor == Black {
		t.deleteFixup(x)
	}
	t.size--
	t.nil.parent = t.nil
	z.left, z.right, z.parent = nil, nil, nil
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
func (t *Tree) transplant(u, v *Node) {
	if u.parent == t.nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteFixup restores the red-black invariants after a black node has been
// removed above x. x carries an extra black until the loop resolves it.
func (t *Tree) deleteFixup(x *Node) {
	for x != t.root && x.isBlack() {
		if x == x.parent.left {
			w := x.parent.right
			if w.isRed() {
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.color = Red
				x = x.parent
				continue
			}
			if w.right.isBlack() { // near child red, far child black
				w.left.color = Black
				w.color = Red
				t.rotateRight(w)
				w = x.parent.right
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.right.color = Black
			t.rotateLeft(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.isRed() {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.isBlack() && w.left.isBlack() {
				w.color = Red
				x = x.parent
				continue
			}
			if w.left.isBlack() {
				w.right.color = Black
				w.color = Red
				t.rotateLeft(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.left.color = Black
			t.rotateRight(x.parent)
			x = t.root
		}
	}
	x.color = Black
}
