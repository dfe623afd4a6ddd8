package arrTree

import (
	"golang.org/x/exp/constraints"
)

// A node in the tree. l and r own the subtrees, p is the back reference.
// The zero value is a detached node.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

type base[S constraints.Unsigned] struct {
	root, free S         //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []info[S] //0 is the nil node and is never linked. all index is based on ifs
}

// adds a free index
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// gets a free index
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	u.ifs[b].l = 0
	return b
}

func (u *base[S]) isLeft(i S) bool {
	p := u.ifs[i].p
	return p != 0 && u.ifs[p].l == i
}

func (u *base[S]) isRight(i S) bool {
	p := u.ifs[i].p
	return p != 0 && u.ifs[p].r == i
}

// slot returns the link that owns i: the parent's l or r, or the root.
func (u *base[S]) slot(i S) *S {
	if p := u.ifs[i].p; p == 0 {
		return &u.root
	} else if u.ifs[p].l == i {
		return &u.ifs[p].l
	} else {
		return &u.ifs[p].r
	}
}

// adopt sets the parent of both children of i to i.
func (u *base[S]) adopt(i S) {
	if c := u.ifs[i].l; c != 0 {
		u.ifs[c].p = i
	}
	if c := u.ifs[i].r; c != 0 {
		u.ifs[c].p = i
	}
}

func (u *base[S]) min(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[S]) max(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next is the in-order successor of i, 0 at the end.
func (u *base[S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.min(r)
	}
	for ; i != 0; i = u.ifs[i].p {
		if u.isLeft(i) {
			return u.ifs[i].p
		}
	}
	return 0
}

// prev is the in-order predecessor of i, 0 at the beginning.
func (u *base[S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.max(l)
	}
	for ; i != 0; i = u.ifs[i].p {
		if u.isRight(i) {
			return u.ifs[i].p
		}
	}
	return 0
}

// swapNear exchanges the positions of child and its parent par.
func (u *base[S]) swapNear(child, par S) {
	*u.slot(par) = child

	c, p := &u.ifs[child], &u.ifs[par]
	c.l, p.l = p.l, c.l
	c.r, p.r = p.r, c.r
	c.p, p.p = p.p, c.p

	// child inherited the link that pointed at itself
	if c.l == child {
		c.l = par
	} else {
		c.r = par
	}
	u.adopt(child)
	u.adopt(par)
}

// swapFar exchanges the positions of two nodes where neither is the parent of the other.
func (u *base[S]) swapFar(a, b S) {
	sa, sb := u.slot(a), u.slot(b)
	*sa, *sb = b, a

	x, y := &u.ifs[a], &u.ifs[b]
	x.l, y.l = y.l, x.l
	x.r, y.r = y.r, x.r
	x.p, y.p = y.p, x.p
	u.adopt(a)
	u.adopt(b)
}

// swapNodes exchanges the structural positions of a and b. Indexes, and therefore values, stay
// attached to their nodes.
func (u *base[S]) swapNodes(a, b S) {
	if u.ifs[a].p == b {
		u.swapNear(a, b)
	} else if u.ifs[b].p == a {
		u.swapNear(b, a)
	} else {
		u.swapFar(a, b)
	}
}

// detach unlinks i, which must have at most one child, splicing the child into its place.
func (u *base[S]) detach(i S) {
	n := u.ifs[i]
	c := n.l
	if c == 0 {
		c = n.r
	}
	*u.slot(i) = c
	if c != 0 {
		u.ifs[c].p = n.p
	}
}

// height counts the nodes on the longest downward path from i. It walks the subtree with the
// parent links instead of recursing.
func (u *base[S]) height(i S) (h int) {
	if i == 0 {
		return 0
	}
	top := u.ifs[i].p
	for cur, from, d := i, top, 1; cur != top; {
		n := u.ifs[cur]
		switch {
		case from == n.p:
			h = max(h, d)
			if n.l != 0 {
				from, cur, d = cur, n.l, d+1
			} else if n.r != 0 {
				from, cur, d = cur, n.r, d+1
			} else {
				from, cur, d = cur, n.p, d-1
			}
		case from == n.l && n.r != 0:
			from, cur, d = cur, n.r, d+1
		default:
			from, cur, d = cur, n.p, d-1
		}
	}
	return
}
