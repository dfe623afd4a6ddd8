package arrTree

import (
	"fmt"

	"github.com/g-m-twostay/ordtree"
)

// Checks enables the validation of the whole tree after every modification. A broken tree
// then panics with *CorruptError. It costs O(n) per operation so it's meant for tests.
var Checks = false

// CorruptError describes the first broken link found in a tree.
type CorruptError struct {
	Node   uint64
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("tree is corrupt at node %d: %s", e.Node, e.Reason)
}

// CapacityError is returned when a node can't be allocated, because the tree reached either
// its limit or the range of its index type.
type CapacityError struct {
	Limit uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree is full: cannot hold more than %d nodes", e.Limit)
}

func (u *OrdTree[T, S]) check() {
	if Checks {
		if err := u.verify(true); err != nil {
			panic(err)
		}
	}
}

// checkLinks is check without the order, for the moment between a swap and the removal.
func (u *OrdTree[T, S]) checkLinks() {
	if Checks {
		if err := u.verify(false); err != nil {
			panic(err)
		}
	}
}

// Corrupt returns whether the tree has corrupt structures.
func (u *OrdTree[T, S]) Corrupt() bool {
	return u.WellFormed() != nil
}

// WellFormed verifies that the links agree in both directions, that every value is strictly
// between the bounds set by its ancestors, that no node is reached twice and that the count
// matches. It returns nil or a *CorruptError.
// Time: O(n); Space: O(height)
func (u *OrdTree[T, S]) WellFormed() error {
	return u.verify(true)
}

func (u *OrdTree[T, S]) verify(order bool) error {
	type frame struct {
		i      S
		lo, hi S //nodes bounding the value, 0 for unbounded.
	}
	fail := func(i S, format string, args ...any) error {
		return &CorruptError{uint64(i), fmt.Sprintf(format, args...)}
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return fail(u.root, "root has parent %d", u.ifs[u.root].p)
	}
	seen := ordtree.NewBitArray(len(u.ifs))
	var count S
	for st := []frame{{u.root, 0, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i == 0 {
			continue
		}
		if int(f.i) >= len(u.ifs) {
			return fail(f.i, "index out of range")
		}
		if seen.Get(int(f.i)) {
			return fail(f.i, "reached twice")
		}
		seen.Up(int(f.i))
		count++
		if v := *u.getV(f.i); order {
			if f.lo != 0 && !(*u.getV(f.lo) < v) {
				return fail(f.i, "value %v not greater than %v", v, *u.getV(f.lo))
			}
			if f.hi != 0 && !(v < *u.getV(f.hi)) {
				return fail(f.i, "value %v not less than %v", v, *u.getV(f.hi))
			}
		}
		n := u.ifs[f.i]
		for _, c := range [2]S{n.l, n.r} {
			if c != 0 && int(c) < len(u.ifs) && u.ifs[c].p != f.i {
				return fail(c, "parent is %d instead of %d", u.ifs[c].p, f.i)
			}
		}
		st = append(st, frame{n.l, f.lo, f.i}, frame{n.r, f.i, f.hi})
	}
	if count != u.n {
		return fail(u.root, "%d nodes reachable, %d expected", count, u.n)
	}
	return nil
}
