// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treefmt/internal/indenttree"
	"gopkg.in/yaml.v3"
)

// Parse builds a Tree from a hierarchy defined by indentation:
//
//	root
//	 child
//	  grandchild
//	 leaf
//
// Lines with nested lines become subtrees; the others become leaves. If the
// input has a single top-level line it is the root of the returned tree;
// otherwise the top-level lines are the children of a nameless root.
func Parse(input string) (*Tree, error) {
	nodes, err := indenttree.Parse(input)
	if err != nil {
		return nil, errors.Wrap(err, "parsing tree")
	}
	if len(nodes) == 1 {
		return indentTree(nodes[0]), nil
	}
	root := New(nil)
	for _, n := range nodes {
		root.children.append(indentValue(n))
	}
	return root, nil
}

func indentTree(n *indenttree.Node) *Tree {
	t := New(n.Value)
	for _, c := range n.Children {
		t.children.append(indentValue(c))
	}
	return t
}

func indentValue(n *indenttree.Node) any {
	if len(n.Children) == 0 {
		return n.Value
	}
	return indentTree(n)
}

// FromYAML builds a Tree from a YAML (or JSON) document. Mappings become
// keyed children, in document order, and sequences become ordered children.
// A mapping entry with a scalar value is displayed as "key: value"; an entry
// with a collection value becomes a subtree named after the key. The root of
// the returned tree is nameless unless the document is a single scalar.
func FromYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	n := &doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, errors.Errorf("empty yaml document")
		}
		n = n.Content[0]
	}
	if n.Kind == 0 {
		return nil, errors.Errorf("empty yaml document")
	}
	b := yamlBuilder{limit: max(yamlExpansionFactor*countYAMLNodes(n), minYAMLNodeLimit)}
	v, err := b.value("", n, 0)
	if err != nil {
		return nil, err
	}
	if t, ok := v.(*Tree); ok {
		return t, nil
	}
	return New(v), nil
}

const (
	// maxYAMLDepth bounds alias expansion, which can otherwise recurse forever.
	maxYAMLDepth = 1000
	// Nested aliases can expand exponentially. The number of values built is
	// limited to yamlExpansionFactor times the number of nodes in the
	// document, and at least minYAMLNodeLimit.
	yamlExpansionFactor = 16
	minYAMLNodeLimit    = 1 << 14
)

// countYAMLNodes returns the number of nodes in the document, without
// following aliases.
func countYAMLNodes(n *yaml.Node) int {
	count := 1
	for _, c := range n.Content {
		count += countYAMLNodes(c)
	}
	return count
}

type yamlBuilder struct {
	limit int
	built int
}

// value converts n to a child value. key is the mapping key n is stored
// under, or empty for sequence items and the document root.
func (b *yamlBuilder) value(key string, n *yaml.Node, depth int) (any, error) {
	if depth > maxYAMLDepth {
		return nil, errors.Errorf("yaml line %d: document nested too deeply", n.Line)
	}
	if n.Kind != yaml.AliasNode {
		b.built++
		if b.built > b.limit {
			return nil, errors.Errorf("yaml line %d: aliases expand to more than %d values", n.Line, b.limit)
		}
	}
	var name any
	if key != "" {
		name = key
	}
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.Errorf("yaml line %d: unresolved alias", n.Line)
		}
		return b.value(key, n.Alias, depth+1)

	case yaml.ScalarNode:
		switch {
		case key == "":
			return n.Value, nil
		case n.Value == "" || n.Tag == "!!null":
			return key, nil
		default:
			return key + ": " + n.Value, nil
		}

	case yaml.MappingNode:
		t := New(name)
		if len(n.Content)%2 != 0 {
			return nil, errors.Errorf("yaml line %d: malformed mapping", n.Line)
		}
		for i := 0; i < len(n.Content); i += 2 {
			k := n.Content[i].Value
			v, err := b.value(k, n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			if err := t.AddKeyedChild(k, v); err != nil {
				return nil, err
			}
		}
		return t, nil

	case yaml.SequenceNode:
		t := New(name)
		for _, c := range n.Content {
			v, err := b.value("", c, depth+1)
			if err != nil {
				return nil, err
			}
			if err := t.AddChild(v); err != nil {
				return nil, err
			}
		}
		return t, nil

	default:
		return nil, errors.Errorf("yaml line %d: unexpected node kind %d", n.Line, n.Kind)
	}
}
