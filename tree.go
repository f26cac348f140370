package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Tree is an ordered set of integer keys, organized as a red-black tree.
//
// A tree has to be created by New or NewWithConfig, as the zero value lacks a
// sentinel. Trees are not safe for concurrent use.
//
//	Operation     |   Time
//	--------------+-----------
//	Insert        |   O(log n)
//	Search        |   O(log n)
//	Delete        |   O(log n)
//	Min / Max     |   O(log n)
//	ExtractMin    |   O(log n)
//	ForEach       |   O(n)
type Tree struct {
	cfg  Config
	root *Node
	nil  *Node // sentinel, owned by this tree
	size int
}

// New creates an empty tree which rejects duplicate keys.
func New() *Tree {
	sentinel := &Node{color: Black, isnil: true}
	sentinel.left, sentinel.right, sentinel.parent = sentinel, sentinel, sentinel
	return &Tree{root: sentinel, nil: sentinel}
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := New()
	t.cfg = cfg
	T().Debugf("rbtree: new tree, duplicates: %s", cfg.Duplicates)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree) Config() Config {
	return t.cfg
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == t.nil
}

// Root returns the root node of the tree, which is the sentinel for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Sentinel returns the sentinel node of the tree.
func (t *Tree) Sentinel() *Node {
	return t.nil
}

// Height returns the number of nodes on the longest path from the root down to
// a leaf. An empty tree has height 0.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree) height(n *Node) int {
	if n == t.nil {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}

// String returns the keys of the tree in ascending order, e.g. "[1 2 3]".
func (t *Tree) String() string {
	return fmt.Sprint(t.Keys())
}
