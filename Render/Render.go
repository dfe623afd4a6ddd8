// Package Render draws a binary tree top down as text, one line per level. A node's label
// starts after the labels of every node before it in order, so it sits above the gap between
// its left and right subtrees and no two labels ever share a column.
package Render

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/g-m-twostay/ordtree/Queues"
)

// EmptyLine is rendered for a tree without nodes.
const EmptyLine = "The tree is empty."

// Layout is the read only view of a tree needed to draw it. N identifies a node and its zero
// value means no node. Width is the total length in runes of the labels in a subtree.
type Layout[N comparable] interface {
	Root() N
	Left(n N) N
	Right(n N) N
	Label(n N) string
	Width(n N) int
	Height(n N) int
}

type cell[N comparable] struct {
	n          N
	col, depth int
}

// Lines of the drawing, root first, all as wide as the tree. nil for an empty tree.
func Lines[N comparable](t Layout[N]) []string {
	var none N
	root := t.Root()
	if root == none {
		return nil
	}
	width := t.Width(root)
	rows := make([][]rune, t.Height(root))
	for i := range rows {
		rows[i] = make([]rune, width)
		for j := range rows[i] {
			rows[i][j] = ' '
		}
	}
	q := Queues.MakeArrayQueue[cell[N]](16)
	q.Push(cell[N]{root, 0, 0})
	for !q.Empty() {
		c, _ := q.Pop()
		l, r := t.Left(c.n), t.Right(c.n)
		col := c.col
		if l != none {
			col += t.Width(l)
			q.Push(cell[N]{l, c.col, c.depth + 1})
		}
		label := t.Label(c.n)
		copy(rows[c.depth][col:], []rune(label))
		if r != none {
			q.Push(cell[N]{r, col + utf8.RuneCountInString(label), c.depth + 1})
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return lines
}

// Render writes the drawing of t to w, or EmptyLine if t has no nodes, each line ended by '\n'.
func Render[N comparable](w io.Writer, t Layout[N]) error {
	bw := bufio.NewWriter(w)
	lines := Lines(t)
	if lines == nil {
		lines = []string{EmptyLine}
	}
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
