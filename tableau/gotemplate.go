package tableau

import (
	"fmt"
	"io"
	"text/template"
)

func (t *Table) writeGoTemplate(w io.Writer, tmplStr string) error {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	keys := t.keys()
	for _, row := range t.rows {
		values := texts(row, len(keys))
		record := make(map[string]string, len(keys))
		for i, k := range keys {
			record[k] = values[i]
		}
		if err := tmpl.Execute(w, record); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
