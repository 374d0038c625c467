package dictionary

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the category as an ordered mapping.
func (c *Category) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range c.keys {
		n.Content = append(n.Content, yamlString(k), rawValueNode(c.values[k]))
	}
	return n, nil
}

// MarshalJSON renders the category as an ordered object.
func (c *Category) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONMember(&buf, k, c.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders the groups as an ordered object.
func (g CandidateGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONMember(&buf, m.Name, m.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONMember(buf *bytes.Buffer, key string, v RawValue) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

func rawValueNode(v RawValue) *yaml.Node {
	switch val := v.(type) {
	case Literal:
		return yamlString(string(val))
	case Candidates:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, s := range val {
			n.Content = append(n.Content, yamlString(s))
		}
		return n
	case CandidateGroups:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, m := range val {
			n.Content = append(n.Content, yamlString(m.Name), rawValueNode(m.Value))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
