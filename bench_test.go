package rbtree

import (
	"math/rand"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Benchmarks run an allocation session: insert bN keys in random order,
// then extract the minimum until the container is empty.

const bN = 1 << 16

var bKeys = rand.New(rand.NewSource(0)).Perm(bN)

func BenchmarkSessionRBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New()
		for _, k := range bKeys {
			_ = tree.Insert(k)
		}
		for !tree.IsEmpty() {
			_, _ = tree.ExtractMin()
		}
	}
}

func BenchmarkSessionGods(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := rbt.NewWithIntComparator()
		for _, k := range bKeys {
			tree.Put(k, nil)
		}
		for tree.Size() > 0 {
			tree.Remove(tree.Left().Key)
		}
	}
}

func BenchmarkSessionGoogleBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
		for tree.Len() > 0 {
			tree.DeleteMin()
		}
	}
}

func BenchmarkSessionLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := llrb.New()
		for _, k := range bKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		for tree.Len() > 0 {
			tree.DeleteMin()
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := New()
	for _, k := range bKeys {
		_ = tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Search(bKeys[i%bN])
	}
}
