package arrTree

import (
	"testing"
)

const (
	bAddN uint32 = 100000
)

func noChecks(b *testing.B) {
	b.Helper()
	Checks = false
	b.Cleanup(func() { Checks = true })
}

func BenchmarkAdd0(b *testing.B) {
	noChecks(b)
	for range b.N {
		tree := *New[int, uint32](0)
		for range bAddN {
			tree.Add(_R.Int())
		}
	}
}
func BenchmarkAdd1(b *testing.B) {
	noChecks(b)
	for range b.N {
		tree := *New[int, uint32](bAddN)
		for range bAddN {
			tree.Add(_R.Int())
		}
	}
}
func create(b *testing.B) *OrdTree[int, uint32] {
	b.Helper()
	tree := New[int, uint32](bAddN)
	for range bAddN {
		tree.Add(_R.Int())
	}
	return tree
}
func BenchmarkDel(b *testing.B) {
	noChecks(b)
	all := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := *create(b)
		all = append(all[:0], tree.vs...)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}
func BenchmarkWalk(b *testing.B) {
	noChecks(b)
	tree := create(b)
	b.ResetTimer()
	for range b.N {
		for i := tree.Min(); i != 0; i = tree.Next(i) {
		}
	}
}
func BenchmarkClone(b *testing.B) {
	noChecks(b)
	tree := create(b)
	b.ResetTimer()
	for range b.N {
		_ = tree.Clone()
	}
}
