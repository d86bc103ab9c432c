package tableau

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (t *Table) writeMarkdown(w io.Writer) error {
	if len(t.header) == 0 {
		if len(t.rows) == 0 {
			return nil
		}
		return fmt.Errorf("%w: format %q requires a header row", ErrMissingHeader, FormatMarkdown)
	}

	numCols := colCount(t.header, t.rows, t.footer)
	header := escapePipes(texts(t.header, numCols))
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = escapePipes(texts(row, numCols))
	}
	if len(t.footer) > 0 {
		rows = append(rows, escapePipes(texts(t.footer, numCols)))
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, numCols)
	for i, col := range header {
		widths[i] = max(runewidth.StringWidth(col), 3)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	aligns := t.columnAligns(numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(cells []string) []string {
	for i, c := range cells {
		cells[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return cells
}

// columnAligns resolves one alignment per column for formats that cannot
// align individual cells: the table style first, then an explicit alignment
// on the header cell.
func (t *Table) columnAligns(numCols int) []Alignment {
	aligns := extendAligns(append([]Alignment(nil), t.style.Alignments...), numCols)
	for i, c := range t.header {
		if i >= len(t.style.Alignments) && i < numCols {
			if a, ok := c.Alignment(); ok {
				aligns[i] = a
			}
		}
	}
	return aligns
}
