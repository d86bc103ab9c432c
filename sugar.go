package typedtable

// Go methods cannot introduce type parameters, so appending a new type to a
// row or column sequence is a package function. Each one returns a new
// sequence one element longer; the input is left untouched.

// Pair starts a row from two cells.
func Pair[A, B any](a Cell[A], b Cell[B]) Row[Sig2[A, B]] {
	return Row2(a, b)
}

// With returns r followed by c.
//
//	row := typedtable.With(typedtable.Pair(typedtable.NewCell("joe"), typedtable.NewCell(42.0)), typedtable.NewCell(true))
func With[S Signature, T any](r Row[S], c Cell[T]) Row[Snoc[S, T]] {
	return Row[Snoc[S, T]]{cells: appendErased(r.erased(), c.erase())}
}

// WithValue returns r followed by an undecorated cell holding v.
//
//	row := typedtable.WithValue(typedtable.WithValue(typedtable.NewCell(1).Row(), 42.0), "hi")
func WithValue[S Signature, T any](r Row[S], v T) Row[Snoc[S, T]] {
	return With(r, NewCell(v))
}

// PairColumns starts a column sequence from two columns.
func PairColumns[A, B any](a Column[A], b Column[B]) Columns[Sig2[A, B]] {
	return Columns2(a, b)
}

// WithColumn returns c followed by col. When c is the zero Columns, the
// positions of S get blank headers so that col still lands over its own
// column.
func WithColumn[S Signature, T any](c Columns[S], col Column[T]) Columns[Snoc[S, T]] {
	return Columns[Snoc[S, T]]{cols: appendErased(c.erased(), col.erase())}
}

// AddColumn returns c followed by a new column of T values:
//
//	cols := typedtable.AddColumn[bool](typedtable.AddColumn[int](typedtable.NewColumn[string]("name").Columns(), "age"), "admin")
func AddColumn[T any, S Signature](c Columns[S], name string) Columns[Snoc[S, T]] {
	return WithColumn(c, NewColumn[T](name))
}

func appendErased(prev []erased, next erased) []erased {
	out := make([]erased, 0, len(prev)+1)
	out = append(out, prev...)
	return append(out, next)
}
