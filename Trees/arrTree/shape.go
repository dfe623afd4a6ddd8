package arrTree

import (
	"fmt"
	"unicode/utf8"
)

// Root node, 0 for an empty tree.
func (u *OrdTree[T, S]) Root() S {
	return u.root
}

func (u *OrdTree[T, S]) Left(i S) S {
	return u.ifs[i].l
}

func (u *OrdTree[T, S]) Right(i S) S {
	return u.ifs[i].r
}

func (u *OrdTree[T, S]) Parent(i S) S {
	return u.ifs[i].p
}

// Height of the subtree at i, counted in nodes: 0 for 0, 1 for a leaf.
func (u *OrdTree[T, S]) Height(i S) int {
	return u.height(i)
}

// Label is the text shown for node i, "" for 0.
func (u *OrdTree[T, S]) Label(i S) string {
	if i == 0 {
		return ""
	}
	return fmt.Sprint(*u.getV(i))
}

// Width of the subtree at i: the total length in runes of all its labels.
// The subtree is a contiguous run of the in-order sequence, so it's walked with next.
func (u *OrdTree[T, S]) Width(i S) (w int) {
	if i == 0 {
		return 0
	}
	last := u.max(i)
	for cur := u.min(i); ; cur = u.next(cur) {
		w += utf8.RuneCountInString(u.Label(cur))
		if cur == last {
			return
		}
	}
}
