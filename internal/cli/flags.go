package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bjaus/typedtable/internal/logging"
	"github.com/bjaus/typedtable/tableau"
)

// ColorMode determines when table output is coloured.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var colorModes = []string{"auto", "always", "never"}

func (m ColorMode) String() string {
	if int(m) < len(colorModes) {
		return colorModes[m]
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	for i, name := range colorModes {
		if name == s {
			return ColorMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q (want %s)", s, strings.Join(colorModes, "|"))
}

// The flag values below plug the tableau parsers into pflag, so a bad value
// is rejected while flags are parsed.

type formatFlag struct{ f *tableau.Format }

var _ pflag.Value = formatFlag{}

func (v formatFlag) String() string {
	if v.f == nil {
		return ""
	}
	return v.f.String()
}

func (v formatFlag) Set(s string) error {
	f, err := tableau.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

func (formatFlag) Type() string { return "format" }

type borderFlag struct{ b *tableau.BorderStyle }

func (v borderFlag) String() string {
	if v.b == nil {
		return ""
	}
	return v.b.String()
}

func (v borderFlag) Set(s string) error {
	b, err := tableau.ParseBorder(s)
	if err != nil {
		return err
	}
	*v.b = b
	return nil
}

func (borderFlag) Type() string { return "border" }

type colorFlag struct{ m *ColorMode }

func (v colorFlag) String() string {
	if v.m == nil {
		return ""
	}
	return v.m.String()
}

func (v colorFlag) Set(s string) error {
	m, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*v.m = m
	return nil
}

func (colorFlag) Type() string { return "mode" }

type logFormatFlag struct{ f *logging.Format }

func (v logFormatFlag) String() string {
	if v.f == nil {
		return ""
	}
	return v.f.String()
}

func (v logFormatFlag) Set(s string) error {
	f, err := logging.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

func (logFormatFlag) Type() string { return "format" }

// globalFlags are the persistent flags shared by every rendering command.
type globalFlags struct {
	format    tableau.Format
	border    tableau.BorderStyle
	color     ColorMode
	title     string
	numbered  bool
	debug     bool
	logFormat logging.Format
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	g.format = tableau.FormatTable
	fs.VarP(formatFlag{&g.format}, "output", "o", fmt.Sprintf("output format: %s, or go-template=TEMPLATE", joinFormats()))
	fs.Var(borderFlag{&g.border}, "border", "table border: "+strings.Join(tableau.Borders(), "|"))
	fs.Var(colorFlag{&g.color}, "color", "colour output: "+strings.Join(colorModes, "|"))
	fs.StringVar(&g.title, "title", "", "title printed above the table")
	fs.BoolVar(&g.numbered, "numbered", false, "prepend a row number column")
	fs.BoolVar(&g.debug, "debug", false, "enable debug logging")
	fs.Var(logFormatFlag{&g.logFormat}, "log-format", "log record format: text|json")
}

// tableStyle merges the flags into base.
func (g *globalFlags) tableStyle(base tableau.TableStyle) tableau.TableStyle {
	base.Border = g.border
	if g.title != "" {
		base.Title = g.title
	}
	if g.numbered {
		base.NumberHeader = "#"
	}
	return base
}

func joinFormats() string {
	names := make([]string, 0, len(tableau.Formats()))
	for _, f := range tableau.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}
