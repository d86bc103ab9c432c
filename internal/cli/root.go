package cli

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/typedtable/internal/logging"
	"github.com/bjaus/typedtable/tableau"
)

func newRootCmd(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "typedtable",
		Short:         "Render typed tables",
		Long:          "Build tables whose column types are checked at compile time and render them to the console or to data formats.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flags.debug, app.Stderr, flags.logFormat)
		},
	}
	root.SetIn(app.Stdin)
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	flags.register(root.PersistentFlags())

	root.AddCommand(
		newSimpleCmd(app, flags),
		newPeopleCmd(app, flags),
		newVersionCmd(app),
	)
	return root
}

// render writes t to stdout in the selected format. Tables go through
// Display when stdout is the terminal so they are fitted to its width.
func (a *App) render(flags *globalFlags, t *tableau.Table) error {
	t.SetProfile(a.profile(flags.color))
	slog.Debug("rendering table", "format", flags.format, "rows", t.NumRows(), "columns", t.NumCols())

	if f, ok := a.Stdout.(*os.File); ok && f == os.Stdout && flags.format == tableau.FormatTable {
		return t.Display()
	}
	return t.Write(a.Stdout, flags.format)
}

// profile picks the colour profile for stdout. NO_COLOR wins over everything;
// "always" upgrades a non-terminal to 256 colours.
func (a *App) profile(mode ColorMode) termenv.Profile {
	if a.getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		p := termenv.NewOutput(a.Stdout).ColorProfile()
		if p == termenv.Ascii {
			p = termenv.ANSI256
		}
		return p
	default:
		f, ok := a.Stdout.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return termenv.Ascii
		}
		return termenv.NewOutput(f).ColorProfile()
	}
}
