package tableau

import (
	"fmt"
	"html"
	"io"
)

func (t *Table) writeHTML(w io.Writer) error {
	if len(t.header) == 0 && len(t.rows) == 0 && len(t.footer) == 0 {
		return nil
	}
	aligns := t.style.Alignments

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if t.style.Title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(t.style.Title)); err != nil {
			return err
		}
	}

	if len(t.header) > 0 {
		if err := writeHTMLSection(w, "thead", "th", [][]Cell{t.header}, aligns); err != nil {
			return err
		}
	}
	if err := writeHTMLSection(w, "tbody", "td", t.rows, aligns); err != nil {
		return err
	}
	if len(t.footer) > 0 {
		if err := writeHTMLSection(w, "tfoot", "td", [][]Cell{t.footer}, aligns); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, section, tag string, rows [][]Cell, aligns []Alignment) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, c := range row {
			style := alignStyle(c, aligns, i)
			if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, style, html.EscapeString(c.Text()), tag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}

func alignStyle(c Cell, aligns []Alignment, col int) string {
	align, ok := c.Alignment()
	if !ok && col < len(aligns) {
		align = aligns[col]
	}
	switch align {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
