package tableau

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingHeader     = errors.New("missing header row")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrUnknownBorder     = errors.New("unknown border style")
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatJSONL    Format = "jsonl"
	FormatYAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{FormatTable, FormatMarkdown, FormatCSV, FormatTSV, FormatHTML, FormatJSON, FormatJSONL, FormatYAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each data row using a Go
// text/template. The row is passed as a map from column key to cell text.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders the table to w in format f.
func (t *Table) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable:
		return t.writeTable(w, t.profileFor(w), t.style.MaxWidth)
	case FormatMarkdown:
		return t.writeMarkdown(w)
	case FormatCSV:
		return t.writeCSV(w)
	case FormatTSV:
		return t.writeTSV(w)
	case FormatHTML:
		return t.writeHTML(w)
	case FormatJSON:
		return t.writeJSON(w)
	case FormatJSONL:
		return t.writeJSONL(w)
	case FormatYAML:
		return t.writeYAML(w)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return t.writeGoTemplate(w, tmpl)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// String renders the table in [FormatTable] without colours.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.writeTable(&sb, termenv.Ascii, t.style.MaxWidth)
	return sb.String()
}

// Display renders the table to stdout. When stdout is a terminal and no
// MaxWidth is set, the table is fitted to the terminal width.
func (t *Table) Display() error {
	return t.display(os.Stdout)
}

func (t *Table) display(f *os.File) error {
	maxWidth := t.style.MaxWidth
	if fd := int(f.Fd()); maxWidth == 0 && term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			maxWidth = width
		}
	}
	return t.writeTable(f, t.profileFor(f), maxWidth)
}

func (t *Table) profileFor(w io.Writer) termenv.Profile {
	if t.hasProfile {
		return t.profile
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// keys returns the record keys used by the data formats: the header text of
// each column, or "colN" where the header is missing or blank.
func (t *Table) keys() []string {
	n := colCount(t.header, t.rows, nil)
	keys := texts(t.header, n)
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			keys[i] = "col" + strconv.Itoa(i+1)
		}
	}
	return keys
}
