// Package typedtable builds console tables whose column types are checked at
// compile time, then hands them to the [tableau] renderer.
//
// Every table, row and column sequence carries a [Signature]: the ordered
// list of value types of its columns. A table declared with three columns of
// string, int and bool only accepts rows of exactly those three types, in that
// order. Anything else fails to compile.
//
//	cols := typedtable.Columns3(
//		typedtable.NewColumn[string]("Name"),
//		typedtable.NewColumn[int]("Age").Align(tableau.AlignRight),
//		typedtable.NewColumn[bool]("Married"),
//	)
//	t := typedtable.New(cols)
//	t.AddRow(typedtable.Row3(
//		typedtable.NewCell("Joe").Style(tableau.NewStyle().Bold()),
//		typedtable.NewCell(42),
//		typedtable.NewCell(true),
//	))
//	t.AddFrom(typedtable.V3("Ann", 37, false))
//	t.IntoUntyped().Display()
//
// # Signatures
//
// A signature is built from [Nil] and [Snoc]; [Sig1] through [Sig8] are
// shorthands. Sequences longer than eight columns are grown one type at a time
// with [With], [WithValue], [WithColumn] and [AddColumn].
//
// # Rows
//
// Rows come from the RowN constructors, from [Cell.Row] followed by [With],
// or from any value implementing [Into], such as the ValuesN tuples returned by
// [V1] through [V8]. The zero [Row] stands for a row of zero values.
//
// # Conversion
//
// [Table.IntoUntyped] produces a [tableau.Table] and retires the typed table:
// calling any mutating method afterwards panics with an error wrapping
// [ErrConsumed].
package typedtable
