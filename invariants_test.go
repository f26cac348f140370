package rbtree

import (
	"errors"
	"strings"
	"testing"
)

func makeSevenTree(t *testing.T) *Tree {
	t.Helper()
	tree := New()
	if err := tree.InsertAll(40, 20, 60, 10, 30, 50, 70); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected fresh tree to validate, got %v", err)
	}
	return tree
}

func expectViolation(t *testing.T, tree *Tree, fragment string) {
	t.Helper()
	err := tree.Check()
	if err == nil {
		t.Fatalf("expected invariant error containing %q", fragment)
	}
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDetectsRedRoot(t *testing.T) {
	tree := makeSevenTree(t)
	tree.root.color = Red // corrupt on purpose
	expectViolation(t, tree, "root 40 is red")
}

func TestCheckDetectsRedRed(t *testing.T) {
	tree := makeSevenTree(t)
	// 40 (20 (10 30) 60 (50 70)) with red leaves; paint 20 red as well
	n := tree.Search(20)
	n.color = Red
	n.left.color = Red
	expectViolation(t, tree, "has red child")
}

func TestCheckDetectsBlackHeightDrift(t *testing.T) {
	tree := makeSevenTree(t)
	tree.Search(10).color = Black
	tree.Search(30).color = Black
	tree.Search(20).color = Red
	if err := tree.Check(); err != nil {
		t.Fatalf("recoloring a subtree consistently should validate, got %v", err)
	}
	tree.Search(70).color = Black
	expectViolation(t, tree, "black-height differs")
}

func TestCheckDetectsBrokenParentLink(t *testing.T) {
	tree := makeSevenTree(t)
	tree.Search(50).parent = tree.Search(20)
	expectViolation(t, tree, "broken parent link")
}

func TestCheckDetectsOrderViolation(t *testing.T) {
	tree := makeSevenTree(t)
	tree.Search(30).key = 45
	expectViolation(t, tree, "follows")
}

func TestCheckDetectsSizeDrift(t *testing.T) {
	tree := makeSevenTree(t)
	tree.size++
	expectViolation(t, tree, "size mismatch")
}

func TestCheckDetectsSentinelTampering(t *testing.T) {
	tree := makeSevenTree(t)
	tree.nil.color = Red
	expectViolation(t, tree, "sentinel must be black")
	tree.nil.color = Black
	tree.nil.parent = tree.root
	expectViolation(t, tree, "sentinel links modified")
}
