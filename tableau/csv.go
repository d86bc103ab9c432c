package tableau

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func (t *Table) writeCSV(w io.Writer) error {
	n := colCount(t.header, t.rows, nil)
	cw := csv.NewWriter(w)
	if len(t.header) > 0 {
		if err := cw.Write(texts(t.header, n)); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := cw.Write(texts(row, n)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t *Table) writeTSV(w io.Writer) error {
	n := colCount(t.header, t.rows, nil)
	if len(t.header) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(texts(t.header, n), "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, strings.Join(texts(row, n), "\t")); err != nil {
			return err
		}
	}
	return nil
}
