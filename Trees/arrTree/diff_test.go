package arrTree

import (
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

// TestAgainstReference runs the same random operations on OrdTree, a red black tree from
// gods and a btree, and compares the results after every step.
func TestAgainstReference(t *testing.T) {
	const (
		ops      = 3000
		valRange = 500
	)
	tree := New[int, uint16](0)
	ref := rbt.NewWithIntComparator()
	bt := btree.NewOrderedG[int](8)
	for k := range ops {
		v := _R.Intn(valRange)
		switch _R.Intn(3) {
		case 0, 1:
			ok, err := tree.Add(v)
			_, found := ref.Get(v)
			ref.Put(v, struct{}{})
			bt.ReplaceOrInsert(v)
			if err != nil || ok == found {
				t.Fatalf("op %d: add %d returned %v, %v; reference had it: %v", k, v, ok, err, found)
			}
		default:
			_, found := ref.Get(v)
			ref.Remove(v)
			bt.Delete(v)
			if ok := tree.Remove(v); ok != found {
				t.Fatalf("op %d: remove %d returned %v; reference had it: %v", k, v, ok, found)
			}
		}
		if int(tree.Len()) != ref.Size() || int(tree.Len()) != bt.Len() {
			t.Fatalf("op %d: size %d, reference %d, btree %d", k, tree.Len(), ref.Size(), bt.Len())
		}
		if p, ok := tree.Predecessor(v); ok {
			if f, found := ref.Floor(v - 1); !found || f.Key.(int) != p {
				t.Fatalf("op %d: predecessor of %d is %d, reference floor is %v", k, v, p, f)
			}
		} else if _, found := ref.Floor(v - 1); found {
			t.Fatalf("op %d: no predecessor of %d but the reference has one", k, v)
		}
		var succ, found = 0, false
		bt.AscendGreaterOrEqual(v+1, func(x int) bool {
			succ, found = x, true
			return false
		})
		if s, ok := tree.Successor(v); ok != found || s != succ {
			t.Fatalf("op %d: successor of %d is %d, %v; btree says %d, %v", k, v, s, ok, succ, found)
		}
	}
	keys := ref.Keys()
	next := tree.InOrder()
	for _, key := range keys {
		if v, ok := next(); !ok || v != key.(int) {
			t.Fatalf("traversal gave %d, %v; reference %v", v, ok, key)
		}
	}
	if _, ok := next(); ok {
		t.Errorf("traversal longer than the reference")
	}
}
