package main

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/ordtree/Trees/arrTree"
)

var (
	bAddN uint32 = 200000
	bRmvN uint32 = bAddN
	bQryN uint32 = bRmvN
)
var _R = rand.New(rand.NewSource(0))

func create(b *testing.B, all []int, next func() int) (*arrTree.OrdTree[int, uint32], []int) {
	b.Helper()
	tree := arrTree.New[int, uint32](bAddN)
	for range bAddN {
		a := next()
		if ok, _ := tree.Add(a); ok {
			all = append(all, a)
		}
	}
	return tree, all
}

var __r1 bool

// delQry removes bRmvN values then queries the remaining ones and bQryN random ones.
func delQry(next func() int) func(*testing.B) {
	return func(b *testing.B) {
		all := make([]int, 0, bAddN)
		b.ResetTimer()
		for range b.N {
			b.StopTimer()
			var tree *arrTree.OrdTree[int, uint32]
			tree, all = create(b, all[:0], next)
			rmv := min(int(bRmvN), len(all))
			m := slices.Max(all)
			b.StartTimer()
			for _, v := range all[:rmv] {
				tree.Remove(v)
			}
			for _, v := range all[rmv:] {
				__r1 = tree.Has(v)
			}
			for range bQryN {
				__r1 = tree.Has(_R.Intn(m + 1))
			}
		}
	}
}

const bNumSteps uint32 = 20

func measure(name string, next func() int) {
	var cs []float64
	var N int
	for i := uint32(1); i < bNumSteps; i++ {
		bRmvN = bAddN / bNumSteps * i
		bQryN = bRmvN
		br := testing.Benchmark(delQry(next))
		cs = append(cs, float64(br.T.Milliseconds()))
		N += br.N
		fmt.Printf("%s step %d: %s removals, %s queries, %s\n", name, i, humanize.Comma(int64(bRmvN)),
			humanize.Comma(int64(uint32(br.N)*bQryN)), br)
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	fmt.Printf("%s average: %fms/op over %s runs\n", name, avg, humanize.Comma(int64(N)))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("%s stddev: %fms/op\n", name, math.Sqrt(sum/float64(N)))
}

func main() {
	testing.Init()
	measure("random", _R.Int)

	//ascending keys degrade the tree to a list, so keep it small.
	bAddN = 5000
	k := 0
	measure("ascending", func() int {
		k++
		return k
	})
}
