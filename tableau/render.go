package tableau

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// minFitWidth is the narrowest a column gets when fitting to MaxWidth.
const minFitWidth = 3

// renderer holds the computed layout of one table rendering.
type renderer struct {
	w          io.Writer
	profile    termenv.Profile
	widths     []int
	aligns     []Alignment
	wrapWidths []int
	pageSize   int
}

func (t *Table) writeTable(w io.Writer, p termenv.Profile, maxWidth int) error {
	header, rows, footer := t.header, t.rows, t.footer
	if len(header) == 0 && len(rows) == 0 && len(footer) == 0 {
		return nil
	}
	st := t.style
	aligns := append([]Alignment(nil), st.Alignments...)
	maxWidths := st.MaxWidths
	wrapWidths := append([]int(nil), st.WrapWidths...)

	// Row numbering prepends a column to everything column-indexed.
	if st.NumberHeader != "" {
		if len(header) > 0 {
			header = append([]Cell{TextCell(st.NumberHeader)}, header...)
		}
		numbered := make([][]Cell, len(rows))
		for i, row := range rows {
			n := TextCell(strconv.Itoa(i + 1))
			n.Align(AlignRight)
			numbered[i] = append([]Cell{n}, row...)
		}
		rows = numbered
		if len(footer) > 0 {
			footer = append([]Cell{TextCell("")}, footer...)
		}
		aligns = append([]Alignment{AlignRight}, aligns...)
		if len(maxWidths) > 0 {
			maxWidths = append([]int{0}, maxWidths...)
		}
		if len(wrapWidths) > 0 {
			wrapWidths = append([]int{0}, wrapWidths...)
		}
	}

	numCols := colCount(header, rows, footer)
	widths := computeWidths(numCols, header, rows, footer)
	for i, limit := range maxWidths {
		if i < numCols && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}

	r := &renderer{
		w:          w,
		profile:    p,
		widths:     widths,
		aligns:     extendAligns(aligns, numCols),
		wrapWidths: wrapWidths,
		pageSize:   st.PageSize,
	}

	var err error
	if st.Border == BorderNone {
		fitWidths(widths, maxWidth, plainWidth)
		err = r.plain(st.Title, header, rows, footer)
	} else {
		fitWidths(widths, maxWidth, borderedWidth)
		bc, ok := borderSets[st.Border]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownBorder, st.Border)
		}
		err = r.bordered(st.Title, header, rows, footer, bc)
	}
	if err != nil {
		return err
	}

	if st.Caption != "" {
		if _, err := fmt.Fprintln(w, st.Caption); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(numCols int, header []Cell, rows [][]Cell, footer []Cell) []int {
	widths := make([]int, numCols)
	measure := func(cells []Cell) {
		for i, c := range cells {
			if w := runewidth.StringWidth(c.Text()); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// fitWidths narrows the widest column one cell at a time until the total
// rendered width is at most limit or every column is at minFitWidth.
func fitWidths(widths []int, limit int, total func([]int) int) {
	if limit <= 0 {
		return
	}
	for total(widths) > limit {
		widest := -1
		for i, w := range widths {
			if w > minFitWidth && (widest < 0 || w > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		widths[widest]--
	}
}

func plainWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w
	}
	if len(widths) > 1 {
		n += 2 * (len(widths) - 1)
	}
	return n
}

func borderedWidth(widths []int) int {
	return tableInnerWidth(widths) + 2
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// A rune wider than width: emit it alone so we always advance.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

// formatRow lays out one logical row as one or more physical lines, each
// holding one formatted part per column.
func (r *renderer) formatRow(cells []Cell) [][]string {
	wrapped := make([][]string, len(r.widths))
	n := 1
	for i, width := range r.widths {
		text := ""
		if i < len(cells) {
			text = cells[i].Text()
		}
		ww := 0
		if i < len(r.wrapWidths) {
			ww = r.wrapWidths[i]
		}
		if ww > 0 && ww < width {
			wrapped[i] = wrapCell(text, ww)
		} else {
			wrapped[i] = []string{text}
		}
		n = max(n, len(wrapped[i]))
	}

	lines := make([][]string, n)
	for line := range n {
		parts := make([]string, len(r.widths))
		for i, width := range r.widths {
			frag := ""
			if line < len(wrapped[i]) {
				frag = wrapped[i][line]
			}
			align := r.aligns[i]
			style := DefaultStyle()
			if i < len(cells) {
				if a, ok := cells[i].Alignment(); ok {
					align = a
				}
				style = cells[i].Styled().Style()
			}
			parts[i] = r.formatCell(frag, width, align, style)
		}
		lines[line] = parts
	}
	return lines
}

func (r *renderer) formatCell(s string, width int, align Alignment, style Style) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	// Pad around the rendered text so escape sequences never count as width.
	pad := max(width-runewidth.StringWidth(s), 0)
	left := 0
	switch align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
	}
	return strings.Repeat(" ", left) + style.render(r.profile, s) + strings.Repeat(" ", pad-left)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// --- Plain table (BorderNone) ---

func (r *renderer) plain(title string, header []Cell, rows [][]Cell, footer []Cell) error {
	if title != "" {
		if _, err := fmt.Fprintln(r.w, title); err != nil {
			return err
		}
	}
	if len(header) > 0 {
		if err := r.plainRow(header); err != nil {
			return err
		}
		if err := r.plainSep(); err != nil {
			return err
		}
	}
	for i, row := range rows {
		if r.pageSize > 0 && len(header) > 0 && i > 0 && i%r.pageSize == 0 {
			if err := r.plainSep(); err != nil {
				return err
			}
			if err := r.plainRow(header); err != nil {
				return err
			}
			if err := r.plainSep(); err != nil {
				return err
			}
		}
		if err := r.plainRow(row); err != nil {
			return err
		}
	}
	if len(footer) > 0 {
		if err := r.plainSep(); err != nil {
			return err
		}
		if err := r.plainRow(footer); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) plainSep() error {
	sep := make([]string, len(r.widths))
	for i, width := range r.widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(r.w, strings.Join(sep, "  "))
	return err
}

func (r *renderer) plainRow(cells []Cell) error {
	for _, parts := range r.formatRow(cells) {
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func (r *renderer) bordered(title string, header []Cell, rows [][]Cell, footer []Cell, bc borderChars) error {
	if title != "" {
		// Full-width top border (no column separators).
		if err := r.hline(bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(r.widths) - 2 // subtract 1-space padding on each side
		padded := r.formatCell(title, inner, AlignCenter, DefaultStyle())
		if _, err := fmt.Fprintf(r.w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := r.hline(bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := r.hline(bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	sep := func() error { return r.hline(bc.leftTee, bc.horizontal, bc.cross, bc.rightTee) }

	if len(header) > 0 {
		if err := r.borderedRow(header, bc.vertical); err != nil {
			return err
		}
		if err := sep(); err != nil {
			return err
		}
	}

	for i, row := range rows {
		if r.pageSize > 0 && len(header) > 0 && i > 0 && i%r.pageSize == 0 {
			if err := sep(); err != nil {
				return err
			}
			if err := r.borderedRow(header, bc.vertical); err != nil {
				return err
			}
			if err := sep(); err != nil {
				return err
			}
		}
		if err := r.borderedRow(row, bc.vertical); err != nil {
			return err
		}
	}

	if len(footer) > 0 {
		if err := sep(); err != nil {
			return err
		}
		if err := r.borderedRow(footer, bc.vertical); err != nil {
			return err
		}
	}

	return r.hline(bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func (r *renderer) hline(left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range r.widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(r.widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(r.w, sb.String())
	return err
}

func (r *renderer) borderedRow(cells []Cell, vert string) error {
	for _, parts := range r.formatRow(cells) {
		var sb strings.Builder
		sb.WriteString(vert)
		for _, part := range parts {
			sb.WriteString(" ")
			sb.WriteString(part)
			sb.WriteString(" ")
			sb.WriteString(vert)
		}
		if _, err := fmt.Fprintln(r.w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
