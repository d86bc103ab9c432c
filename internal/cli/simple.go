package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/typedtable"
	"github.com/bjaus/typedtable/tableau"
)

func newSimpleCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "simple",
		Short: "Render a small fixed table with coloured headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.render(flags, simpleTable(flags))
		},
	}
}

func simpleTable(flags *globalFlags) *tableau.Table {
	cols := typedtable.Columns3(
		typedtable.NewHeader[string]("Name").Style(tableau.NewStyle().Bg(tableau.Magenta)),
		typedtable.NewHeader[int]("Age").Style(tableau.NewStyle().Bg(tableau.Blue)),
		typedtable.NewHeader[bool]("Married").Style(tableau.NewStyle().Bg(tableau.Red)),
	)
	t := typedtable.New(cols)
	t.AddRow(typedtable.Row3(typedtable.NewCell("Joe"), typedtable.NewCell(10), typedtable.NewCell(false)))
	t.AddRow(typedtable.Row3(typedtable.NewCell("Mary"), typedtable.NewCell(23), typedtable.NewCell(true)))
	t.AddRow(typedtable.Row3(typedtable.NewCell("John"), typedtable.NewCell(53), typedtable.NewCell(false)))
	t.AddRow(typedtable.Row3(typedtable.NewCell("Rob"), typedtable.NewCell(41), typedtable.NewCell(true)))
	t.Style(flags.tableStyle(tableau.TableStyle{
		Alignments: []tableau.Alignment{tableau.AlignLeft, tableau.AlignRight, tableau.AlignLeft},
	}))
	return t.IntoUntyped()
}
