package Trees

import (
	"flag"
	"testing"

	"github.com/google/btree"
)

var btreeDegree = flag.Int("degree", 32, "B-Tree degree of the reference trees")

const (
	bAddN = 1 << 14
	bQryN = bAddN / 2
)

var sideEff bool

func BenchmarkLinkedBST_Insert(b *testing.B) {
	for range b.N {
		tree := New[int]()
		for _, v := range rg.Perm(bAddN) {
			tree.Insert(v)
		}
	}
}

func BenchmarkLinkedBST_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := From(rg.Perm(bAddN))
		b.StartTimer()
		for _, v := range rg.Perm(bAddN) {
			tree.Remove(v)
		}
	}
}

// benchmarkHas queries half stored and half missing values.
func benchmarkHas(b *testing.B, tree *LinkedBST[int]) {
	b.Helper()
	qs := rg.Perm(bAddN * 2)[:bQryN]
	b.ResetTimer()
	for range b.N {
		for _, q := range qs {
			sideEff = tree.Has(q)
		}
	}
}

func BenchmarkLinkedBST_HasSorted(b *testing.B) {
	tree := New[int]()
	for i := range bAddN {
		tree.Insert(i)
	}
	benchmarkHas(b, tree)
}

func BenchmarkLinkedBST_HasShuffled(b *testing.B) {
	benchmarkHas(b, From(rg.Perm(bAddN)))
}

func BenchmarkLinkedBST_HasRebalanced(b *testing.B) {
	tree := New[int]()
	for i := range bAddN {
		tree.Insert(i)
	}
	benchmarkHas(b, tree.Rebalance())
}

func BenchmarkBTree_Has(b *testing.B) {
	ref := btree.NewOrderedG[int](*btreeDegree)
	for _, v := range rg.Perm(bAddN) {
		ref.ReplaceOrInsert(v)
	}
	qs := rg.Perm(bAddN * 2)[:bQryN]
	b.ResetTimer()
	for range b.N {
		for _, q := range qs {
			sideEff = ref.Has(q)
		}
	}
}

func BenchmarkLinkedBST_Rebalance(b *testing.B) {
	tree := From(rg.Perm(bAddN))
	b.ResetTimer()
	for range b.N {
		tree.Rebalance()
	}
}
