package typedtable

import (
	"github.com/bjaus/typedtable/tableau"
)

// Column declares a named column whose cells hold values of type T. T is
// never stored; it only decides which cell type fits this position.
type Column[T any] struct {
	name  string
	style *tableau.Style
	align *tableau.Alignment
}

// Header is another name for Column.
type Header[T any] = Column[T]

// NewColumn declares a column of T values.
func NewColumn[T any](name string) Column[T] {
	return Column[T]{name: name}
}

// NewHeader is NewColumn.
func NewHeader[T any](name string) Header[T] {
	return NewColumn[T](name)
}

// Name returns the column name.
func (c Column[T]) Name() string { return c.name }

// Style returns a copy of c whose header is rendered with s.
func (c Column[T]) Style(s tableau.Style) Column[T] {
	c.style = &s
	return c
}

// Align returns a copy of c whose header has alignment a.
func (c Column[T]) Align(a tableau.Alignment) Column[T] {
	c.align = &a
	return c
}

// Columns returns a one-column sequence holding c.
func (c Column[T]) Columns() Columns[Sig1[T]] {
	return Columns[Sig1[T]]{cols: []erased{c.erase()}}
}

func (c Column[T]) erase() erased {
	return erased{text: c.name, style: c.style, align: c.align}
}

// Columns is an ordered sequence of column declarations typed by S.
//
// The zero Columns declares no headers.
type Columns[S Signature] struct {
	cols []erased
}

// Len returns the number of declared columns.
func (c Columns[S]) Len() int { return len(c.cols) }

func (c Columns[S]) erased() []erased {
	if len(c.cols) == 0 {
		return make([]erased, Arity[S]())
	}
	return c.cols
}

// Names returns the column names in declaration order.
func (c Columns[S]) Names() []string {
	names := make([]string, len(c.cols))
	for i, col := range c.cols {
		names[i] = col.text
	}
	return names
}

func Columns1[A any](a Column[A]) Columns[Sig1[A]] {
	return Columns[Sig1[A]]{cols: []erased{a.erase()}}
}

func Columns2[A, B any](a Column[A], b Column[B]) Columns[Sig2[A, B]] {
	return Columns[Sig2[A, B]]{cols: []erased{a.erase(), b.erase()}}
}

func Columns3[A, B, C any](a Column[A], b Column[B], c Column[C]) Columns[Sig3[A, B, C]] {
	return Columns[Sig3[A, B, C]]{cols: []erased{a.erase(), b.erase(), c.erase()}}
}

func Columns4[A, B, C, D any](a Column[A], b Column[B], c Column[C], d Column[D]) Columns[Sig4[A, B, C, D]] {
	return Columns[Sig4[A, B, C, D]]{cols: []erased{a.erase(), b.erase(), c.erase(), d.erase()}}
}

func Columns5[A, B, C, D, E any](a Column[A], b Column[B], c Column[C], d Column[D], e Column[E]) Columns[Sig5[A, B, C, D, E]] {
	return Columns[Sig5[A, B, C, D, E]]{cols: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase()}}
}

func Columns6[A, B, C, D, E, F any](a Column[A], b Column[B], c Column[C], d Column[D], e Column[E], f Column[F]) Columns[Sig6[A, B, C, D, E, F]] {
	return Columns[Sig6[A, B, C, D, E, F]]{cols: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase(), f.erase()}}
}

func Columns7[A, B, C, D, E, F, G any](a Column[A], b Column[B], c Column[C], d Column[D], e Column[E], f Column[F], g Column[G]) Columns[Sig7[A, B, C, D, E, F, G]] {
	return Columns[Sig7[A, B, C, D, E, F, G]]{cols: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase(), f.erase(), g.erase()}}
}

func Columns8[A, B, C, D, E, F, G, H any](a Column[A], b Column[B], c Column[C], d Column[D], e Column[E], f Column[F], g Column[G], h Column[H]) Columns[Sig8[A, B, C, D, E, F, G, H]] {
	return Columns[Sig8[A, B, C, D, E, F, G, H]]{cols: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase(), f.erase(), g.erase(), h.erase()}}
}
