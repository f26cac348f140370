package rbtree

// ForEach walks the keys of the tree in ascending order.
//
// Iteration stops early if callback returns false. The tree must not be
// modified during iteration.
func (t *Tree) ForEach(fn func(key int) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for n := t.Minimum(t.root); n != t.nil; n = t.Successor(n) {
		if !fn(n.key) {
			return
		}
	}
}

// Keys returns all keys of the tree in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.Len())
	t.ForEach(func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk visits every non-sentinel node in pre-order, i.e. a parent before its
// left and right subtrees. depth is 0 for the root. Walk stops at the first
// error returned by fn and hands it back to the caller.
//
// Walk is intended for clients which render the structure of the tree.
func (t *Tree) Walk(fn func(n *Node, depth int) error) error {
	if t.IsEmpty() || fn == nil {
		return nil
	}
	return t.walk(t.root, 0, fn)
}

func (t *Tree) walk(n *Node, depth int, fn func(*Node, int) error) error {
	if n == t.nil {
		return nil
	}
	if err := fn(n, depth); err != nil {
		return err
	}
	if err := t.walk(n.left, depth+1, fn); err != nil {
		return err
	}
	return t.walk(n.right, depth+1, fn)
}
