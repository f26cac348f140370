package rbtree

import "fmt"

// Insert adds key to the tree.
//
// For a tree configured with RejectDuplicates, inserting a key which is already
// present returns ErrDuplicateKey and leaves the tree unchanged.
func (t *Tree) Insert(key int) error {
	y, x := t.nil, t.root
	for x != t.nil {
		y = x
		if key < x.key {
			x = x.left
		} else {
			if key == x.key && t.cfg.Duplicates == RejectDuplicates {
				T().Debugf("rbtree: rejecting duplicate key %d", key)
				return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
			}
			x = x.right
		}
	}
	z := &Node{key: key, color: Red, left: t.nil, right: t.nil, parent: y}
	t.size++
	if y == t.nil {
		t.root = z
		z.color = Black
		return nil
	}
	if key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	if y.parent == t.nil { // z is a child of the (black) root
		return nil
	}
	t.insertFixup(z)
	return nil
}

// InsertAll inserts keys in order and stops at the first error.
func (t *Tree) InsertAll(keys ...int) error {
	for _, key := range keys {
		if err := t.Insert(key); err != nil {
			return err
		}
	}
	return nil
}

// insertFixup restores the red-black invariants after red node z has been
// attached as a leaf.
func (t *Tree) insertFixup(z *Node) {
	for z != t.root && z.parent.isRed() {
		g := z.parent.parent
		if z.parent == g.right {
			u := g.left
			if u.isRed() {
				z.parent.color = Black
				u.color = Black
				g.color = Red
				z = g
				continue
			}
			if z == z.parent.left { // inner child: turn into outer case
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateLeft(z.parent.parent)
		} else {
			u := g.right
			if u.isRed() {
				z.parent.color = Black
				u.color = Black
				g.color = Red
				z = g
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateRight(z.parent.parent)
		}
	}
	t.root.color = Black
}
