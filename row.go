package typedtable

// Row is one table row typed by S: position i holds a cell whose value has
// the i-th type of S. Rows are immutable; the append helpers return new rows.
//
// The zero Row stands for a row of zero values.
type Row[S Signature] struct {
	cells []erased
}

// Into implements [Into] as the identity conversion.
func (r Row[S]) Into() Row[S] { return r }

// Len returns the number of cells, which is always the arity of S.
func (r Row[S]) Len() int { return Arity[S]() }

// Texts returns the display text of every cell in order.
func (r Row[S]) Texts() []string {
	cells := r.erased()
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = c.text
	}
	return texts
}

func (r Row[S]) erased() []erased {
	if len(r.cells) == 0 {
		var s S
		return s.zeroCells(nil)
	}
	return r.cells
}

// Into is implemented by anything that converts to a Row[S]. It lets a
// table accept looser row shapes, such as the ValuesN tuples, next to rows
// built from cells.
type Into[S Signature] interface {
	Into() Row[S]
}

func Row1[A any](a Cell[A]) Row[Sig1[A]] {
	return Row[Sig1[A]]{cells: []erased{a.erase()}}
}

func Row2[A, B any](a Cell[A], b Cell[B]) Row[Sig2[A, B]] {
	return Row[Sig2[A, B]]{cells: []erased{a.erase(), b.erase()}}
}

func Row3[A, B, C any](a Cell[A], b Cell[B], c Cell[C]) Row[Sig3[A, B, C]] {
	return Row[Sig3[A, B, C]]{cells: []erased{a.erase(), b.erase(), c.erase()}}
}

func Row4[A, B, C, D any](a Cell[A], b Cell[B], c Cell[C], d Cell[D]) Row[Sig4[A, B, C, D]] {
	return Row[Sig4[A, B, C, D]]{cells: []erased{a.erase(), b.erase(), c.erase(), d.erase()}}
}

func Row5[A, B, C, D, E any](a Cell[A], b Cell[B], c Cell[C], d Cell[D], e Cell[E]) Row[Sig5[A, B, C, D, E]] {
	return Row[Sig5[A, B, C, D, E]]{cells: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase()}}
}

func Row6[A, B, C, D, E, F any](a Cell[A], b Cell[B], c Cell[C], d Cell[D], e Cell[E], f Cell[F]) Row[Sig6[A, B, C, D, E, F]] {
	return Row[Sig6[A, B, C, D, E, F]]{cells: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase(), f.erase()}}
}

func Row7[A, B, C, D, E, F, G any](a Cell[A], b Cell[B], c Cell[C], d Cell[D], e Cell[E], f Cell[F], g Cell[G]) Row[Sig7[A, B, C, D, E, F, G]] {
	return Row[Sig7[A, B, C, D, E, F, G]]{cells: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase(), f.erase(), g.erase()}}
}

func Row8[A, B, C, D, E, F, G, H any](a Cell[A], b Cell[B], c Cell[C], d Cell[D], e Cell[E], f Cell[F], g Cell[G], h Cell[H]) Row[Sig8[A, B, C, D, E, F, G, H]] {
	return Row[Sig8[A, B, C, D, E, F, G, H]]{cells: []erased{a.erase(), b.erase(), c.erase(), d.erase(), e.erase(), f.erase(), g.erase(), h.erase()}}
}

// Values1 is a row of plain values. It converts to a row of undecorated
// cells through [Into].
type Values1[A any] struct {
	V0 A
}

func V1[A any](a A) Values1[A] {
	return Values1[A]{a}
}

func (v Values1[A]) Into() Row[Sig1[A]] {
	return Row1(NewCell(v.V0))
}

type Values2[A, B any] struct {
	V0 A
	V1 B
}

func V2[A, B any](a A, b B) Values2[A, B] {
	return Values2[A, B]{a, b}
}

func (v Values2[A, B]) Into() Row[Sig2[A, B]] {
	return Row2(NewCell(v.V0), NewCell(v.V1))
}

type Values3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

func V3[A, B, C any](a A, b B, c C) Values3[A, B, C] {
	return Values3[A, B, C]{a, b, c}
}

func (v Values3[A, B, C]) Into() Row[Sig3[A, B, C]] {
	return Row3(NewCell(v.V0), NewCell(v.V1), NewCell(v.V2))
}

type Values4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

func V4[A, B, C, D any](a A, b B, c C, d D) Values4[A, B, C, D] {
	return Values4[A, B, C, D]{a, b, c, d}
}

func (v Values4[A, B, C, D]) Into() Row[Sig4[A, B, C, D]] {
	return Row4(NewCell(v.V0), NewCell(v.V1), NewCell(v.V2), NewCell(v.V3))
}

type Values5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

func V5[A, B, C, D, E any](a A, b B, c C, d D, e E) Values5[A, B, C, D, E] {
	return Values5[A, B, C, D, E]{a, b, c, d, e}
}

func (v Values5[A, B, C, D, E]) Into() Row[Sig5[A, B, C, D, E]] {
	return Row5(NewCell(v.V0), NewCell(v.V1), NewCell(v.V2), NewCell(v.V3), NewCell(v.V4))
}

type Values6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

func V6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) Values6[A, B, C, D, E, F] {
	return Values6[A, B, C, D, E, F]{a, b, c, d, e, f}
}

func (v Values6[A, B, C, D, E, F]) Into() Row[Sig6[A, B, C, D, E, F]] {
	return Row6(NewCell(v.V0), NewCell(v.V1), NewCell(v.V2), NewCell(v.V3), NewCell(v.V4), NewCell(v.V5))
}

type Values7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

func V7[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) Values7[A, B, C, D, E, F, G] {
	return Values7[A, B, C, D, E, F, G]{a, b, c, d, e, f, g}
}

func (v Values7[A, B, C, D, E, F, G]) Into() Row[Sig7[A, B, C, D, E, F, G]] {
	return Row7(NewCell(v.V0), NewCell(v.V1), NewCell(v.V2), NewCell(v.V3), NewCell(v.V4), NewCell(v.V5), NewCell(v.V6))
}

type Values8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

func V8[A, B, C, D, E, F, G, H any](a A, b B, c C, d D, e E, f F, g G, h H) Values8[A, B, C, D, E, F, G, H] {
	return Values8[A, B, C, D, E, F, G, H]{a, b, c, d, e, f, g, h}
}

func (v Values8[A, B, C, D, E, F, G, H]) Into() Row[Sig8[A, B, C, D, E, F, G, H]] {
	return Row8(NewCell(v.V0), NewCell(v.V1), NewCell(v.V2), NewCell(v.V3), NewCell(v.V4), NewCell(v.V5), NewCell(v.V6), NewCell(v.V7))
}
