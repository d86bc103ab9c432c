// Package tableau renders untyped tables to the console and to a handful of
// text formats.
//
// A [Table] is built imperatively: an optional header row, any number of data
// rows, and an optional footer row, each populated one [Cell] at a time.
//
//	t := tableau.New()
//	h := t.AddHeadRow()
//	h.AddCell(tableau.TextCell("Name"))
//	h.AddCell(tableau.NewCell(tableau.NewStyle().Bold().ApplyTo("Age")))
//	r := t.AddRow()
//	r.AddCell(tableau.TextCell("Joe"))
//	age := tableau.TextCell("10")
//	age.Align(tableau.AlignRight)
//	r.AddCell(age)
//	t.Display()
//
// # Cells and Styles
//
// A cell holds [StyledText]: plain text plus the [Style] produced by
// [Style.ApplyTo]. Widths are always measured on the plain text, and the style
// is rendered through a termenv colour profile only when the cell is written,
// so ANSI sequences never affect layout. [DefaultStyle] is the neutral style
// used when nothing else was requested.
//
// # Table Style
//
// [TableStyle] controls the whole table:
//
//   - Border: [BorderRounded] (default), [BorderNone], [BorderASCII],
//     [BorderHeavy], [BorderDouble]
//   - Title and Caption: lines above and below the table
//   - NumberHeader: prepends a row number column
//   - Alignments: per-column default alignment, overridden per cell
//   - MaxWidths and WrapWidths: truncate with "..." or wrap long cells
//   - PageSize: repeat the header every N rows
//   - MaxWidth: shrink the widest columns until the table fits
//
// # Formats
//
// [Table.Write] renders to any [Format]. Only [FormatTable] applies styles; the
// data formats (CSV, TSV, JSON, JSONL, YAML, go-template) use the plain text
// and key each row by its header text, falling back to "col1", "col2", ...
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrMissingHeader]: Markdown requires a header row
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrUnknownBorder]: unknown border style name
package tableau
