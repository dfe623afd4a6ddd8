package arrTree

import (
	"cmp"
	"github.com/g-m-twostay/ordtree/Trees"
	"golang.org/x/exp/constraints"
)

var _ Trees.Tree[int] = (*OrdTree[int, uint])(nil)

// OrdTree is an unbalanced binary search tree with no repeated values. Nodes live in an
// arena and are linked by index in both directions: l and r own the children, p points back
// to the parent. Index 0 is nil, so a handle of type S is valid only if it's not 0.
// The shape only depends on the order of the operations, ascending inserts give a list.
// OrdTree isn't safe for concurrent use.
type OrdTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs    []T //vs[i] corresponds to ifs[i+1]
	n     S
	limit S //0 means only bounded by the range of S.
}

func (u *OrdTree[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// New returns an empty tree with room for hint nodes.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *OrdTree[T, S] {
	return NewLimited[T, S](hint, 0)
}

// NewLimited returns an empty tree that holds at most limit nodes. Adding more fails with
// CapacityError. limit==0 means no limit other than the range of S.
func NewLimited[T cmp.Ordered, S constraints.Unsigned](hint, limit S) *OrdTree[T, S] {
	if limit != 0 && hint > limit {
		hint = limit
	}
	ifs := make([]info[S], 1, int(hint)+1)
	return &OrdTree[T, S]{base: base[S]{ifs: ifs}, vs: make([]T, 0, hint), limit: limit}
}

// Len is the number of values in the tree.
func (u *OrdTree[T, S]) Len() S {
	return u.n
}

// Limit is the maximum number of nodes, 0 if unlimited.
func (u *OrdTree[T, S]) Limit() S {
	return u.limit
}

func (u *OrdTree[T, S]) Empty() bool {
	return u.root == 0
}

// find descends from the root. It returns the node holding v, or 0 with the parent the new
// node would hang from and on which side.
func (u *OrdTree[T, S]) find(v T) (cur, par S, left bool) {
	for cur = u.root; cur != 0; {
		if x := *u.getV(cur); v < x {
			par, left, cur = cur, true, u.ifs[cur].l
		} else if x < v {
			par, left, cur = cur, false, u.ifs[cur].r
		} else {
			return
		}
	}
	return
}

// alloc a detached node holding v, reusing a free index if there is one.
func (u *OrdTree[T, S]) alloc(v T) (S, error) {
	if u.limit != 0 && u.n >= u.limit {
		return 0, CapacityError{uint64(u.limit)}
	}
	if u.free != 0 {
		i := u.popFree()
		*u.getV(i) = v
		return i, nil
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		return 0, CapacityError{uint64(^S(0))}
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1), nil
}

// release puts i back into the free list. i must be detached.
func (u *OrdTree[T, S]) release(i S) {
	*u.getV(i) = *new(T)
	u.addFree(i)
	u.n--
}

// Has v in the tree.
func (u *OrdTree[T, S]) Has(v T) bool {
	i, _, _ := u.find(v)
	return i != 0
}

// Find returns the node holding v, 0 if there is none.
func (u *OrdTree[T, S]) Find(v T) S {
	i, _, _ := u.find(v)
	return i
}

// Add v to the tree. Returns false if v is already present, in which case nothing changes.
// The only error is CapacityError, the tree is unchanged then too.
func (u *OrdTree[T, S]) Add(v T) (bool, error) {
	cur, par, left := u.find(v)
	if cur != 0 {
		return false, nil
	}
	i, err := u.alloc(v)
	if err != nil {
		return false, err
	}
	u.ifs[i].p = par
	if par == 0 {
		u.root = i
	} else if left {
		u.ifs[par].l = i
	} else {
		u.ifs[par].r = i
	}
	u.n++
	u.check()
	return true, nil
}

// Remove v from the tree. Returns false if v isn't present.
func (u *OrdTree[T, S]) Remove(v T) bool {
	i, _, _ := u.find(v)
	if i == 0 {
		return false
	}
	u.remove(i)
	return true
}

// remove node i. A node with 2 children first trades places with its predecessor, which has
// no right child, so the second call always detaches directly.
func (u *OrdTree[T, S]) remove(i S) {
	if n := u.ifs[i]; n.l != 0 && n.r != 0 {
		u.swapNodes(i, u.prev(i))
		u.checkLinks()
		u.remove(i)
		return
	}
	u.detach(i)
	u.release(i)
	u.check()
}
