package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/typedtable"
	"github.com/bjaus/typedtable/tableau"
)

// personRecord is one entry of a people file.
type personRecord struct {
	Name    string  `yaml:"name"`
	Age     int     `yaml:"age"`
	Married bool    `yaml:"married"`
	Weight  float64 `yaml:"weight"`
}

func newPeopleCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "people FILE",
		Short: "Render a YAML list of people",
		Long: `Render a YAML list of people records with the fields name, age, married
and weight. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := app.loadPeople(args[0])
			if err != nil {
				return err
			}
			return app.render(flags, peopleTable(flags, people))
		},
	}
}

func (a *App) loadPeople(path string) ([]personRecord, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(a.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var people []personRecord
	if err := yaml.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Debug("loaded people", "file", path, "count", len(people))
	return people, nil
}

func peopleTable(flags *globalFlags, people []personRecord) *tableau.Table {
	bold := tableau.NewStyle().Bold()
	cols := typedtable.Columns4(
		typedtable.NewColumn[string]("Name").Style(bold),
		typedtable.NewColumn[int]("Age").Style(bold),
		typedtable.NewColumn[bool]("Married").Style(bold),
		typedtable.NewColumn[float64]("Weight").Style(bold),
	)
	t := typedtable.New(cols)

	var totalAge int
	for _, p := range people {
		t.AddFrom(typedtable.V4(p.Name, p.Age, p.Married, p.Weight))
		totalAge += p.Age
	}

	base := tableau.TableStyle{
		Alignments: []tableau.Alignment{tableau.AlignLeft, tableau.AlignRight, tableau.AlignLeft, tableau.AlignRight},
	}
	if len(people) > 0 {
		base.Caption = fmt.Sprintf("%d people, average age %.1f", len(people), float64(totalAge)/float64(len(people)))
	}
	t.Style(flags.tableStyle(base))
	return t.IntoUntyped()
}
