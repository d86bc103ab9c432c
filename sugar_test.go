package typedtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/typedtable"
	"github.com/bjaus/typedtable/tableau"
)

func TestWithValue(t *testing.T) {
	t.Parallel()
	var row typedtable.Row[typedtable.Sig3[int, float64, string]] = typedtable.WithValue(typedtable.WithValue(typedtable.NewCell(1).Row(), 42.0), "hi")
	assert.Equal(t, []string{"1", "42", "hi"}, row.Texts())
	assert.Equal(t, 3, row.Len())
}

func TestWithDoesNotShareCells(t *testing.T) {
	t.Parallel()
	base := typedtable.Pair(typedtable.NewCell("a"), typedtable.NewCell(1))
	left := typedtable.With(base, typedtable.NewCell(true))
	right := typedtable.With(base, typedtable.NewCell(false))

	assert.Equal(t, []string{"a", "1"}, base.Texts())
	assert.Equal(t, []string{"a", "1", "true"}, left.Texts())
	assert.Equal(t, []string{"a", "1", "false"}, right.Texts())
}

func TestWithOnZeroRow(t *testing.T) {
	t.Parallel()
	var zero typedtable.Row[typedtable.Sig2[string, int]]
	row := typedtable.WithValue(zero, "x")
	assert.Equal(t, []string{"", "0", "x"}, row.Texts())
}

func TestPairMatchesRow2(t *testing.T) {
	t.Parallel()
	a := typedtable.Pair(typedtable.NewCell("x"), typedtable.NewCell(2))
	b := typedtable.Row2(typedtable.NewCell("x"), typedtable.NewCell(2))
	assert.Equal(t, b, a)
}

func TestColumnSugar(t *testing.T) {
	t.Parallel()
	cols := typedtable.WithColumn(
		typedtable.PairColumns(typedtable.NewColumn[string]("name"), typedtable.NewColumn[int]("age")),
		typedtable.NewColumn[bool]("admin").Align(tableau.AlignCenter),
	)
	var _ typedtable.Columns[typedtable.Sig3[string, int, bool]] = cols
	assert.Equal(t, []string{"name", "age", "admin"}, cols.Names())
	assert.Equal(t, 3, cols.Len())

	grown := typedtable.AddColumn[float64](cols, "score")
	assert.Equal(t, 4, grown.Len())
	assert.Equal(t, 3, cols.Len())

	tbl := typedtable.New(grown)
	tbl.AddRow(typedtable.WithValue(typedtable.Row3(typedtable.NewCell("a"), typedtable.NewCell(1), typedtable.NewCell(true)), 9.5))
	out := tbl.IntoUntyped()
	assert.Equal(t, []string{"name", "age", "admin", "score"}, cellTexts(out.Header()))
	assert.Equal(t, []string{"a", "1", "true", "9.5"}, cellTexts(out.Rows()[0]))
}

func TestBeyondEightColumns(t *testing.T) {
	t.Parallel()
	cols := typedtable.Columns8(
		typedtable.NewColumn[int]("c1"), typedtable.NewColumn[int]("c2"),
		typedtable.NewColumn[int]("c3"), typedtable.NewColumn[int]("c4"),
		typedtable.NewColumn[int]("c5"), typedtable.NewColumn[int]("c6"),
		typedtable.NewColumn[int]("c7"), typedtable.NewColumn[int]("c8"),
	)
	wide := typedtable.AddColumn[string](cols, "c9")
	tbl := typedtable.New(wide)
	tbl.AddRow(typedtable.WithValue(typedtable.V8(1, 2, 3, 4, 5, 6, 7, 8).Into(), "nine"))
	assert.Equal(t, 9, tbl.NumColumns())

	out := tbl.IntoUntyped()
	assert.Equal(t, 9, out.NumCols())
	assert.Equal(t, "nine", out.Rows()[0][8].Text())
}

func TestWithColumnOnZeroColumns(t *testing.T) {
	t.Parallel()
	var zero typedtable.Columns[typedtable.Sig2[string, int]]
	cols := typedtable.WithColumn(zero, typedtable.NewColumn[bool]("c"))
	assert.Equal(t, 3, cols.Len())
	assert.Equal(t, []string{"", "", "c"}, cols.Names())

	tbl := typedtable.New(cols)
	tbl.AddFrom(typedtable.V3("a", 1, true))
	out := tbl.IntoUntyped()
	assert.Equal(t, []string{"", "", "c"}, cellTexts(out.Header()))
	assert.Equal(t, []string{"a", "1", "true"}, cellTexts(out.Rows()[0]))
	assert.Len(t, out.Header(), len(out.Rows()[0]))
}

func TestAddColumnOnZeroColumns(t *testing.T) {
	t.Parallel()
	var empty typedtable.Columns[typedtable.Nil]
	assert.Equal(t, []string{"n"}, typedtable.AddColumn[int](empty, "n").Names())

	var zero typedtable.Columns[typedtable.Sig1[string]]
	assert.Equal(t, []string{"", "n"}, typedtable.AddColumn[int](zero, "n").Names())
}
