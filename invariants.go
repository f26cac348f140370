package rbtree

import "fmt"

// Check validates the red-black invariants and the structural consistency of
// the tree. It returns an error wrapping ErrInvariant for the first violation
// found.
//
// Check is O(n) and is meant to be used in tests.
func (t *Tree) Check() error {
	if t == nil || t.nil == nil || t.root == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvariant)
	}
	s := t.nil
	if !s.isnil || !s.isBlack() {
		return fmt.Errorf("%w: sentinel must be black", ErrInvariant)
	}
	if s.left != s || s.right != s || s.parent != s {
		return fmt.Errorf("%w: sentinel links modified", ErrInvariant)
	}
	if t.root == s {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root.isRed() {
		return fmt.Errorf("%w: root %d is red", ErrInvariant, t.root.key)
	}
	if t.root.parent != s {
		return fmt.Errorf("%w: root %d has a parent", ErrInvariant, t.root.key)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, count, t.size)
	}
	return t.checkOrder()
}

// checkNode returns the number of nodes and the black-height of the subtree
// rooted at n.
func (t *Tree) checkNode(n *Node) (count int, blackHeight int, err error) {
	if n == t.nil {
		return 0, 0, nil
	}
	if n.isnil {
		return 0, 0, fmt.Errorf("%w: foreign sentinel in tree", ErrInvariant)
	}
	if n.color != Red && n.color != Black {
		return 0, 0, fmt.Errorf("%w: node %d has color %d", ErrInvariant, n.key, n.color)
	}
	for _, child := range [2]*Node{n.left, n.right} {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at node %d", ErrInvariant, n.key)
		}
		if child == t.nil {
			continue
		}
		if child.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at node %d", ErrInvariant, child.key)
		}
		if n.isRed() && child.isRed() {
			return 0, 0, fmt.Errorf("%w: red node %d has red child %d", ErrInvariant, n.key, child.key)
		}
	}
	lcount, lheight, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: black-height differs below node %d (%d != %d)",
			ErrInvariant, n.key, lheight, rheight)
	}
	if n.isBlack() {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}

// checkOrder asserts that an in-order traversal yields non-decreasing keys,
// strictly increasing ones if duplicates are rejected.
func (t *Tree) checkOrder() error {
	var err error
	first, prev := true, 0
	t.ForEach(func(key int) bool {
		if !first {
			if key < prev || (key == prev && t.cfg.Duplicates == RejectDuplicates) {
				err = fmt.Errorf("%w: key %d follows %d in order", ErrInvariant, key, prev)
				return false
			}
		}
		first, prev = false, key
		return true
	})
	return err
}
