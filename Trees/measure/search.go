package main

import (
	"math/rand"
	"slices"
	"time"

	"github.com/NVIDIA/sortedmap"
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-bst/Trees"
)

// contender is a container that is filled with the words once, then
// queried through the returned has function.
type contender struct {
	name  string
	build func(words []string) (has func(string) bool)
}

// wordDumper satisfies sortedmap.DumpCallbacks for string keys.
type wordDumper struct{}

func (wordDumper) DumpKey(key sortedmap.Key) (string, error) {
	return key.(string), nil
}

func (wordDumper) DumpValue(sortedmap.Value) (string, error) {
	return "", nil
}

// contenders in the order they are measured. r shuffles the words of the
// shuffled tree, degree is the degree of the B-Tree.
func contenders(r *rand.Rand, degree int) []contender {
	return []contender{
		{"list", func(words []string) func(string) bool {
			return func(w string) bool {
				return slices.Index(words, w) >= 0
			}
		}},
		{"unbalanced tree", func(words []string) func(string) bool {
			return Trees.From(words).Has
		}},
		{"shuffled tree", func(words []string) func(string) bool {
			s := slices.Clone(words)
			r.Shuffle(len(s), func(i, j int) {
				s[i], s[j] = s[j], s[i]
			})
			return Trees.From(s).Has
		}},
		{"balanced tree", func(words []string) func(string) bool {
			return Trees.From(words).Rebalance().Has
		}},
		{"btree", func(words []string) func(string) bool {
			t := btree.NewOrderedG[string](degree)
			for _, w := range words {
				t.ReplaceOrInsert(w)
			}
			return t.Has
		}},
		{"red-black tree", func(words []string) func(string) bool {
			t := redblacktree.NewWithStringComparator()
			for _, w := range words {
				t.Put(w, struct{}{})
			}
			return func(w string) bool {
				_, found := t.Get(w)
				return found
			}
		}},
		{"llrb", func(words []string) func(string) bool {
			t := llrb.New()
			for _, w := range words {
				t.ReplaceOrInsert(llrb.String(w))
			}
			return func(w string) bool {
				return t.Has(llrb.String(w))
			}
		}},
		{"sortedmap llrb", func(words []string) func(string) bool {
			t := sortedmap.NewLLRBTree(sortedmap.CompareString, wordDumper{})
			for _, w := range words {
				t.Put(w, struct{}{}) // ok is false for repeated words.
			}
			return func(w string) bool {
				_, ok, err := t.GetByKey(w)
				return ok && err == nil
			}
		}},
		{"haxmap", func(words []string) func(string) bool {
			m := haxmap.New[string, struct{}](uintptr(len(words)))
			for _, w := range words {
				m.Set(w, struct{}{})
			}
			return func(w string) bool {
				_, ok := m.Get(w)
				return ok
			}
		}},
		{"hashmap", func(words []string) func(string) bool {
			m := hashmap.NewSized[string, struct{}](uintptr(len(words)))
			for _, w := range words {
				m.Set(w, struct{}{})
			}
			return func(w string) bool {
				_, ok := m.Get(w)
				return ok
			}
		}},
	}
}

type result struct {
	build, search time.Duration
	missed        int // probes not found
}

func run(c contender, words, probes []string) (r result) {
	start := time.Now()
	has := c.build(words)
	built := time.Now()
	for _, p := range probes {
		if !has(p) {
			r.missed++
		}
	}
	r.build, r.search = built.Sub(start), time.Since(built)
	return
}
