package tableau

import (
	"bytes"
	"encoding/json"
	"io"
)

// writeJSON writes the rows as an array of objects. Keys keep column order,
// which encoding/json cannot do for maps.
func (t *Table) writeJSON(w io.Writer) error {
	keys := t.keys()
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendJSONObject(&buf, keys, row); err != nil {
			return err
		}
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Table) writeJSONL(w io.Writer) error {
	keys := t.keys()
	for _, row := range t.rows {
		var buf bytes.Buffer
		if err := appendJSONObject(&buf, keys, row); err != nil {
			return err
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func appendJSONObject(buf *bytes.Buffer, keys []string, row []Cell) error {
	values := texts(row, len(keys))
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(values[i])
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return nil
}
