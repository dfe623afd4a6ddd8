package arrTree

// Clone returns an independent tree with the same values in the same shape and the same limit.
func (u *OrdTree[T, S]) Clone() *OrdTree[T, S] {
	c, err := u.copyInto(NewLimited[T, S](u.n, u.limit))
	if err != nil { //u itself fits under the limit.
		panic(err)
	}
	return c
}

// Assign replaces the content of u with a copy of src and keeps u's limit. The copy is built
// before anything is touched; if it fails, u is left as it was and the error is returned.
func (u *OrdTree[T, S]) Assign(src *OrdTree[T, S]) error {
	if u == src {
		return nil
	}
	tmp, err := src.copyInto(NewLimited[T, S](src.n, u.limit))
	if err != nil {
		return err
	}
	u.Swap(tmp)
	return nil
}

// Swap exchanges the contents, including the limits, of u and o.
func (u *OrdTree[T, S]) Swap(o *OrdTree[T, S]) {
	*u, *o = *o, *u
}

// copyInto mirrors u into the empty tree dst by walking both trees in lockstep: descend into
// a child of u that dst doesn't have yet, creating it, otherwise both go up. On failure dst is
// cleared before returning.
func (u *OrdTree[T, S]) copyInto(dst *OrdTree[T, S]) (*OrdTree[T, S], error) {
	if u.root == 0 {
		return dst, nil
	}
	now, err := dst.alloc(*u.getV(u.root))
	if err != nil {
		return nil, err
	}
	dst.root, dst.n = now, 1
	for cur := u.root; cur != 0; {
		src, mirror := u.ifs[cur], dst.ifs[now]
		var next, child S
		if src.l != 0 && mirror.l == 0 {
			next = src.l
		} else if src.r != 0 && mirror.r == 0 {
			next = src.r
		} else {
			cur, now = src.p, mirror.p
			continue
		}
		if child, err = dst.alloc(*u.getV(next)); err != nil {
			dst.Clear()
			return nil, err
		}
		if next == src.l {
			dst.ifs[now].l = child
		} else {
			dst.ifs[now].r = child
		}
		dst.ifs[child].p = now
		dst.n++
		cur, now = next, child
	}
	dst.check()
	return dst, nil
}

// Clear removes every node. It peels leaves one at a time, left first, instead of recursing,
// so the stack stays flat on degenerate trees. Memory is kept for reuse.
func (u *OrdTree[T, S]) Clear() {
	for cur := u.root; cur != 0; {
		if n := u.ifs[cur]; n.l != 0 {
			cur = n.l
		} else if n.r != 0 {
			cur = n.r
		} else {
			*u.slot(cur) = 0
			u.release(cur)
			cur = n.p
		}
	}
	u.ifs, u.vs, u.free = u.ifs[:1], u.vs[:0], 0
}
