package tableau

import (
	"io"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// writeYAML writes the rows as a sequence of mappings. Building the node tree
// by hand keeps keys in column order and tags every value as a string, so
// "10" or "true" round-trip as text.
func (t *Table) writeYAML(w io.Writer) error {
	keys := t.keys()
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range t.rows {
		values := texts(row, len(keys))
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, k := range keys {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: values[i]},
			)
		}
		doc.Content = append(doc.Content, m)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
