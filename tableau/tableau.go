package tableau

import (
	"fmt"
	"slices"

	"github.com/muesli/termenv"
)

// Alignment controls cell text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// String returns the border name accepted by [ParseBorder].
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// Borders returns the names of all border styles.
func Borders() []string {
	return []string{"rounded", "none", "ascii", "heavy", "double"}
}

// ParseBorder parses a border name as returned by [BorderStyle.String].
func ParseBorder(s string) (BorderStyle, error) {
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
}

// TableStyle configures the rendering of a whole table. The zero value is a
// rounded border with no extras.
type TableStyle struct {
	Border  BorderStyle
	Title   string
	Caption string

	// NumberHeader prepends a right-aligned row number column with this
	// header text. Empty means no row numbers.
	NumberHeader string

	// Alignments sets the default alignment per column. Cell alignments win.
	Alignments []Alignment

	// MaxWidths truncates cells with "..." beyond the given width.
	// A zero value means no limit for that column.
	MaxWidths []int

	// WrapWidths wraps cells onto multiple lines beyond the given width.
	// A zero value means no wrapping for that column.
	WrapWidths []int

	// PageSize re-prints the header every PageSize data rows.
	PageSize int

	// MaxWidth is the widest the rendered table may be. The widest columns
	// shrink until it fits. Zero means unlimited.
	MaxWidth int
}

// Cell is a single untyped table cell.
type Cell struct {
	content StyledText
	align   Alignment
	aligned bool
}

// NewCell creates a cell from styled text.
func NewCell(content StyledText) Cell {
	return Cell{content: content}
}

// TextCell creates a cell rendered in [DefaultStyle].
func TextCell(text string) Cell {
	return NewCell(DefaultStyle().ApplyTo(text))
}

// Align overrides the column alignment for this cell.
func (c *Cell) Align(a Alignment) {
	c.align = a
	c.aligned = true
}

// Text returns the plain text of the cell.
func (c Cell) Text() string { return c.content.Text() }

// Styled returns the styled content of the cell.
func (c Cell) Styled() StyledText { return c.content }

// Alignment returns the cell alignment and whether it was set explicitly.
func (c Cell) Alignment() (Alignment, bool) { return c.align, c.aligned }

// Table is an untyped table.
type Table struct {
	header []Cell
	rows   [][]Cell
	footer []Cell
	style  TableStyle

	profile    termenv.Profile
	hasProfile bool
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// HeadRow is a handle to the header row of a table.
type HeadRow struct{ t *Table }

// AddCell appends a cell to the header row.
func (h *HeadRow) AddCell(c Cell) { h.t.header = append(h.t.header, c) }

// Row is a handle to a data row of a table.
type Row struct {
	t *Table
	i int
}

// AddCell appends a cell to the row.
func (r *Row) AddCell(c Cell) { r.t.rows[r.i] = append(r.t.rows[r.i], c) }

// FootRow is a handle to the footer row of a table.
type FootRow struct{ t *Table }

// AddCell appends a cell to the footer row.
func (f *FootRow) AddCell(c Cell) { f.t.footer = append(f.t.footer, c) }

// AddHeadRow starts the header row, replacing any previous one.
func (t *Table) AddHeadRow() *HeadRow {
	t.header = []Cell{}
	return &HeadRow{t: t}
}

// AddRow appends an empty data row and returns a handle to it.
func (t *Table) AddRow() *Row {
	t.rows = append(t.rows, nil)
	return &Row{t: t, i: len(t.rows) - 1}
}

// AddFootRow starts the footer row, replacing any previous one.
func (t *Table) AddFootRow() *FootRow {
	t.footer = []Cell{}
	return &FootRow{t: t}
}

// SetStyle replaces the table style.
func (t *Table) SetStyle(s TableStyle) { t.style = s }

// Style returns the table style.
func (t *Table) Style() TableStyle { return t.style }

// SetProfile forces the colour profile used by [Table.Write] and
// [Table.Display]. By default the profile is detected from the writer.
func (t *Table) SetProfile(p termenv.Profile) {
	t.profile = p
	t.hasProfile = true
}

// HasHeader reports whether a header row was added.
func (t *Table) HasHeader() bool { return t.header != nil }

// Header returns a copy of the header cells.
func (t *Table) Header() []Cell { return slices.Clone(t.header) }

// Footer returns a copy of the footer cells.
func (t *Table) Footer() []Cell { return slices.Clone(t.footer) }

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]Cell {
	out := make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the widest of header, rows and footer.
func (t *Table) NumCols() int { return colCount(t.header, t.rows, t.footer) }

func colCount(header []Cell, rows [][]Cell, footer []Cell) int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	return max(n, len(footer))
}

func texts(cells []Cell, n int) []string {
	out := make([]string, n)
	for i := range min(n, len(cells)) {
		out[i] = cells[i].Text()
	}
	return out
}
