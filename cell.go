package typedtable

import (
	"fmt"

	"github.com/bjaus/typedtable/tableau"
)

// erased is a column or cell with its type parameter dropped: only the
// display text and decorations survive.
type erased struct {
	text  string
	style *tableau.Style
	align *tableau.Alignment
}

func (e erased) backend() tableau.Cell {
	style := tableau.DefaultStyle()
	if e.style != nil {
		style = *e.style
	}
	c := tableau.NewCell(style.ApplyTo(e.text))
	if e.align != nil {
		c.Align(*e.align)
	}
	return c
}

// Cell is a single value of type T with an optional style and alignment.
type Cell[T any] struct {
	value T
	style *tableau.Style
	align *tableau.Alignment
}

// NewCell wraps v in an undecorated cell.
func NewCell[T any](v T) Cell[T] {
	return Cell[T]{value: v}
}

// Value returns the wrapped value.
func (c Cell[T]) Value() T { return c.value }

// Text returns the display text of the value, as formatted by fmt.Sprint.
func (c Cell[T]) Text() string { return fmt.Sprint(c.value) }

// Style returns a copy of c rendered with s.
func (c Cell[T]) Style(s tableau.Style) Cell[T] {
	c.style = &s
	return c
}

// Align returns a copy of c with alignment a.
func (c Cell[T]) Align(a tableau.Alignment) Cell[T] {
	c.align = &a
	return c
}

// Row returns a one-cell row holding c.
func (c Cell[T]) Row() Row[Sig1[T]] {
	return Row[Sig1[T]]{cells: []erased{c.erase()}}
}

func (c Cell[T]) erase() erased {
	return erased{text: c.Text(), style: c.style, align: c.align}
}
