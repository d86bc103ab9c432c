package typedtable

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bjaus/typedtable/tableau"
)

// ErrConsumed is the panic value, wrapped, when a table is used after
// [Table.IntoUntyped].
var ErrConsumed = errors.New("table already converted")

// Table accumulates rows of type Row[S] under an optional header.
//
// A table has two states: accumulating, and consumed once IntoUntyped has
// run. Every method other than the read-only accessors panics on a consumed
// table.
type Table[S Signature] struct {
	columns  []erased
	rows     []Row[S]
	style    *tableau.TableStyle
	consumed bool
}

// New creates a table with the given header. Its rows are typed by the same
// signature as the columns.
func New[S Signature](cols Columns[S]) *Table[S] {
	return &Table[S]{columns: slices.Clone(cols.cols)}
}

// Typed creates a table without a header; S is given explicitly:
//
//	t := typedtable.Typed[typedtable.Sig2[string, int]]()
func Typed[S Signature]() *Table[S] {
	return &Table[S]{}
}

// AddRow appends r.
func (t *Table[S]) AddRow(r Row[S]) {
	t.check("AddRow")
	t.rows = append(t.rows, r)
}

// AddFrom appends the row r converts to.
func (t *Table[S]) AddFrom(r Into[S]) {
	t.check("AddFrom")
	t.rows = append(t.rows, r.Into())
}

// Style sets the table-wide style, replacing any previous one.
func (t *Table[S]) Style(s tableau.TableStyle) {
	t.check("Style")
	t.style = &s
}

// Len returns the number of rows added so far.
func (t *Table[S]) Len() int { return len(t.rows) }

// NumColumns returns the arity of the table.
func (t *Table[S]) NumColumns() int { return Arity[S]() }

// HasHeader reports whether the table was created with column declarations.
func (t *Table[S]) HasHeader() bool { return len(t.columns) > 0 }

// Consumed reports whether IntoUntyped has run.
func (t *Table[S]) Consumed() bool { return t.consumed }

// IntoUntyped converts the table into a backend table: one header row when
// columns were declared, then one row per added row, in order. Cells without
// a style get [tableau.DefaultStyle]. The table is unusable afterwards.
func (t *Table[S]) IntoUntyped() *tableau.Table {
	t.check("IntoUntyped")
	out := tableau.New()
	if t.style != nil {
		out.SetStyle(*t.style)
	}

	if len(t.columns) > 0 {
		h := out.AddHeadRow()
		for _, col := range t.columns {
			h.AddCell(col.backend())
		}
	}

	for _, r := range t.rows {
		row := out.AddRow()
		for _, c := range r.erased() {
			row.AddCell(c.backend())
		}
	}

	t.consumed = true
	t.columns, t.rows, t.style = nil, nil, nil
	return out
}

func (t *Table[S]) check(op string) {
	if t.consumed {
		panic(fmt.Errorf("typedtable: %s: %w", op, ErrConsumed))
	}
}
