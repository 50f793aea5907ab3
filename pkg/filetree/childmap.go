package filetree

import (
	"bytes"

	"github.com/segmentio/encoding/json"

	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
)

// ChildMap is an insertion-ordered mapping from child name to node.
// Overwriting an existing name replaces the node but keeps the name's
// original position, matching the JSON objects the stores serve.
type ChildMap struct {
	names  []string
	byName map[string]*Node
}

// NewChildMap returns an empty child mapping.
func NewChildMap() *ChildMap {
	return &ChildMap{byName: map[string]*Node{}}
}

// Set inserts or replaces the node stored under name.
func (m *ChildMap) Set(name string, node *Node) {
	if _, ok := m.byName[name]; !ok {
		m.names = append(m.names, name)
	}
	m.byName[name] = node
}

// Get returns the node stored under name, if any.
func (m *ChildMap) Get(name string) (*Node, bool) {
	node, ok := m.byName[name]
	return node, ok
}

// Len returns the number of children.
func (m *ChildMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the child names in insertion order.
func (m *ChildMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Nodes returns the child nodes in insertion order.
func (m *ChildMap) Nodes() []*Node {
	if m == nil {
		return nil
	}
	out := make([]*Node, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.byName[name])
	}
	return out
}

// Child is the value stored under one name of a children mapping: either a
// full subtree or a bare leaf record. Exactly one field is set.
type Child struct {
	Branch *Node
	Leaf   *models.File
}

// Child resolves the tagged variant stored under name. Directories and any
// node with materialized descendants come back as a Branch, everything else
// as a bare Leaf record. The descendant check keeps every record reachable
// even when a buggy caller parented children onto a plain file.
func (m *ChildMap) Child(name string) (Child, bool) {
	node, ok := m.byName[name]
	if !ok {
		return Child{}, false
	}
	return childOf(node), true
}

func childOf(node *Node) Child {
	if node.File.IsDirectory || node.Children.Len() > 0 {
		return Child{Branch: node}
	}
	return Child{Leaf: node.File}
}

// MarshalJSON emits whichever case of the variant is set.
func (c Child) MarshalJSON() ([]byte, error) {
	if c.Leaf != nil {
		return json.Marshal(c.Leaf)
	}
	return json.Marshal(c.Branch)
}

// MarshalJSON serializes the mapping as a JSON object with keys in
// insertion order.
func (m *ChildMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, name := range m.names {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(name)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			value, err := json.Marshal(childOf(m.byName[name]))
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
