package tableau

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Color is a terminal colour understood by termenv: an ANSI index ("0" to
// "255") or a "#rrggbb" hex value. The empty Color means "unset".
type Color string

// The 16 basic ANSI colours.
const (
	Black         Color = "0"
	Red           Color = "1"
	Green         Color = "2"
	Yellow        Color = "3"
	Blue          Color = "4"
	Magenta       Color = "5"
	Cyan          Color = "6"
	White         Color = "7"
	BrightBlack   Color = "8"
	BrightRed     Color = "9"
	BrightGreen   Color = "10"
	BrightYellow  Color = "11"
	BrightBlue    Color = "12"
	BrightMagenta Color = "13"
	BrightCyan    Color = "14"
	BrightWhite   Color = "15"
)

// ANSI256 returns the colour with the given index in the 256 colour palette.
func ANSI256(n uint8) Color { return Color(strconv.Itoa(int(n))) }

// Hex returns a true colour. The leading "#" is optional.
func Hex(s string) Color {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return Color(s)
}

type attr uint8

const (
	attrBold attr = 1 << iota
	attrFaint
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrCrossOut
)

// Style describes how a piece of text is decorated. Styles are values: every
// builder method returns a modified copy.
type Style struct {
	fg, bg Color
	attrs  attr
}

// NewStyle returns an empty style. It is equivalent to [DefaultStyle].
func NewStyle() Style { return Style{} }

// DefaultStyle is the neutral style: no colours, no attributes. Cells that
// were never styled render with it.
func DefaultStyle() Style { return Style{} }

func (s Style) Fg(c Color) Style {
	s.fg = c
	return s
}

func (s Style) Bg(c Color) Style {
	s.bg = c
	return s
}

func (s Style) Bold() Style      { return s.with(attrBold) }
func (s Style) Faint() Style     { return s.with(attrFaint) }
func (s Style) Italic() Style    { return s.with(attrItalic) }
func (s Style) Underline() Style { return s.with(attrUnderline) }
func (s Style) Blink() Style     { return s.with(attrBlink) }
func (s Style) Reverse() Style   { return s.with(attrReverse) }
func (s Style) CrossOut() Style  { return s.with(attrCrossOut) }

func (s Style) with(a attr) Style {
	s.attrs |= a
	return s
}

// Foreground returns the foreground colour, empty when unset.
func (s Style) Foreground() Color { return s.fg }

// Background returns the background colour, empty when unset.
func (s Style) Background() Color { return s.bg }

// IsPlain reports whether the style decorates nothing.
func (s Style) IsPlain() bool { return s == Style{} }

// ApplyTo pairs text with this style.
func (s Style) ApplyTo(text string) StyledText {
	return StyledText{text: text, style: s}
}

func (s Style) render(p termenv.Profile, text string) string {
	if s.IsPlain() || p == termenv.Ascii || text == "" {
		return text
	}
	out := p.String(text)
	if s.fg != "" {
		out = out.Foreground(p.Color(string(s.fg)))
	}
	if s.bg != "" {
		out = out.Background(p.Color(string(s.bg)))
	}
	if s.attrs&attrBold != 0 {
		out = out.Bold()
	}
	if s.attrs&attrFaint != 0 {
		out = out.Faint()
	}
	if s.attrs&attrItalic != 0 {
		out = out.Italic()
	}
	if s.attrs&attrUnderline != 0 {
		out = out.Underline()
	}
	if s.attrs&attrBlink != 0 {
		out = out.Blink()
	}
	if s.attrs&attrReverse != 0 {
		out = out.Reverse()
	}
	if s.attrs&attrCrossOut != 0 {
		out = out.CrossOut()
	}
	return out.String()
}

// StyledText is text paired with the style it should be rendered in.
type StyledText struct {
	text  string
	style Style
}

// Text returns the undecorated text.
func (t StyledText) Text() string { return t.text }

// Style returns the style the text is rendered with.
func (t StyledText) Style() Style { return t.style }

// Render returns the text decorated for the given colour profile.
func (t StyledText) Render(p termenv.Profile) string { return t.style.render(p, t.text) }

// String renders the text for the colour profile of stdout.
func (t StyledText) String() string { return t.Render(termenv.EnvColorProfile()) }
