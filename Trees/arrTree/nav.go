package arrTree

// Min is the node with the smallest value, 0 for an empty tree.
func (u *OrdTree[T, S]) Min() S {
	if u.root == 0 {
		return 0
	}
	return u.min(u.root)
}

// Max is the node with the greatest value, 0 for an empty tree.
func (u *OrdTree[T, S]) Max() S {
	if u.root == 0 {
		return 0
	}
	return u.max(u.root)
}

// Next is the node following i in ascending order, 0 if i is the last one.
// Time: O(height) worst case, O(1) amortized over a full traversal.
func (u *OrdTree[T, S]) Next(i S) S {
	return u.next(i)
}

// Prev is the node preceding i in ascending order, 0 if i is the first one.
func (u *OrdTree[T, S]) Prev(i S) S {
	return u.prev(i)
}

// At returns the value held by node i. i must be a live node.
func (u *OrdTree[T, S]) At(i S) T {
	return *u.getV(i)
}

func (u *OrdTree[T, S]) value(i S) (T, bool) {
	if i == 0 {
		return *new(T), false
	}
	return *u.getV(i), true
}

// Minimum element of the tree.
func (u *OrdTree[T, S]) Minimum() (T, bool) {
	return u.value(u.Min())
}

// Maximum element of the tree.
func (u *OrdTree[T, S]) Maximum() (T, bool) {
	return u.value(u.Max())
}

// Predecessor returns the greatest element less than v. v doesn't need to be in the tree.
func (u *OrdTree[T, S]) Predecessor(v T) (T, bool) {
	cur, par, left := u.find(v)
	switch {
	case cur != 0:
		return u.value(u.prev(cur))
	case par == 0:
		return u.value(0)
	case left: //v would be the left child of par, so it's right after prev(par)
		return u.value(u.prev(par))
	default:
		return u.value(par)
	}
}

// Successor returns the smallest element greater than v. v doesn't need to be in the tree.
func (u *OrdTree[T, S]) Successor(v T) (T, bool) {
	cur, par, left := u.find(v)
	switch {
	case cur != 0:
		return u.value(u.next(cur))
	case par == 0:
		return u.value(0)
	case left:
		return u.value(par)
	default:
		return u.value(u.next(par))
	}
}

// InOrder returns a closure that gives the values in ascending order, like the
// "Next()" of an iterator. The tree mustn't be modified until the closure is exhausted.
func (u *OrdTree[T, S]) InOrder() func() (T, bool) {
	cur := u.Min()
	return func() (v T, ok bool) {
		if v, ok = u.value(cur); ok {
			cur = u.next(cur)
		}
		return
	}
}

// Backward is InOrder in descending order.
func (u *OrdTree[T, S]) Backward() func() (T, bool) {
	cur := u.Max()
	return func() (v T, ok bool) {
		if v, ok = u.value(cur); ok {
			cur = u.prev(cur)
		}
		return
	}
}

// Values in ascending order.
func (u *OrdTree[T, S]) Values() []T {
	vs := make([]T, 0, u.n)
	for i := u.Min(); i != 0; i = u.next(i) {
		vs = append(vs, *u.getV(i))
	}
	return vs
}
