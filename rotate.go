package rbtree

// rotateLeft turns x's right child y into the parent of x:
//
//	    x                y
//	   / \              / \
//	  a   y     =>     x   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree) rotateLeft(x *Node) {
	y := x.right
	assert(y != t.nil, "rotateLeft called without right child")
	x.right = y.left
	if y.left != t.nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree) rotateRight(x *Node) {
	y := x.left
	assert(y != t.nil, "rotateRight called without left child")
	x.left = y.right
	if y.right != t.nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}
