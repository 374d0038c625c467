package dictionary

import (
	"fmt"
	"io/fs"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// NewYAMLSource returns a Source reading .yml and .yaml files from fsys.
func NewYAMLSource(fsys fs.FS) Source {
	return &fsSource{
		fsys:   fsys,
		exts:   []string{".yml", ".yaml"},
		decode: decodeYAML,
	}
}

// decodeYAML decodes through yaml.Node so mapping order survives.
func decodeYAML(_, locale string, data []byte) (Fragment, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Fragment{}, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Fragment{}, shapeError("empty document")
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode || len(root.Content) != 2 {
		return Fragment{}, shapeError("expected exactly one root locale entry")
	}
	if err := checkRoot(root.Content[0].Value, locale); err != nil {
		return Fragment{}, err
	}

	faker := mappingValue(resolveAlias(root.Content[1]), "faker")
	if faker == nil || faker.Kind != yaml.MappingNode {
		return Fragment{}, shapeError(`missing "faker" mapping`)
	}

	var f Fragment
	for i := 0; i+1 < len(faker.Content); i += 2 {
		name := faker.Content[i].Value
		body := resolveAlias(faker.Content[i+1])
		if body.Kind != yaml.MappingNode {
			return Fragment{}, fmt.Errorf("category %q: expected a mapping, got %s", name, kindName(body))
		}

		c := NewCategory(name)
		for j := 0; j+1 < len(body.Content); j += 2 {
			key := body.Content[j].Value
			valueNode := resolveAlias(body.Content[j+1])
			if isNull(valueNode) {
				continue
			}
			v, err := rawValueFromYAML(valueNode)
			if err != nil {
				return Fragment{}, fmt.Errorf("category %q key %q: %w", name, key, err)
			}
			c.set(key, v)
		}
		f.Categories = append(f.Categories, c)
	}
	return f, nil
}

func rawValueFromYAML(n *yaml.Node) (RawValue, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return Literal(norm.NFC.String(n.Value)), nil

	case yaml.SequenceNode:
		out := make(Candidates, 0, len(n.Content))
		for i, item := range n.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("list item %d: expected a scalar, got %s", i, kindName(item))
			}
			out = append(out, norm.NFC.String(item.Value))
		}
		return out, nil

	case yaml.MappingNode:
		out := make(CandidateGroups, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			member := resolveAlias(n.Content[i+1])
			if isNull(member) {
				continue
			}
			v, err := rawValueFromYAML(member)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", n.Content[i].Value, err)
			}
			out = append(out, G(n.Content[i].Value, v))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported node %s", kindName(n))
	}
}

// mappingValue returns the value node stored under key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolveAlias(m.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
