package model

import (
	"iter"

	"go.yaml.in/yaml/v4"
)

// Node is a read-only view over a parsed description tree. The zero Node
// stands for "absent": every accessor on it returns no data instead of failing,
// so lookups can be chained without checking each link.
type Node struct {
	n *yaml.Node
}

// NewNode wraps a yaml node. Document nodes are unwrapped to their content.
func NewNode(n *yaml.Node) Node {
	return Node{n: unwrap(n)}
}

func unwrap(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Exists reports whether the node holds a value.
func (n Node) Exists() bool {
	return n.n != nil
}

func (n Node) IsMapping() bool {
	return n.n != nil && n.n.Kind == yaml.MappingNode
}

func (n Node) IsSequence() bool {
	return n.n != nil && n.n.Kind == yaml.SequenceNode
}

// Get returns the value stored under key, or the zero Node when n is not a
// mapping or has no such key.
func (n Node) Get(key string) Node {
	if !n.IsMapping() {
		return Node{}
	}
	for i := 0; i+1 < len(n.n.Content); i += 2 {
		if n.n.Content[i].Value == key {
			return NewNode(n.n.Content[i+1])
		}
	}
	return Node{}
}

// Path follows keys from n, stopping at the first missing link.
func (n Node) Path(keys ...string) Node {
	cur := n
	for _, k := range keys {
		cur = cur.Get(k)
		if !cur.Exists() {
			return Node{}
		}
	}
	return cur
}

// String returns the scalar value when the node is a string.
func (n Node) String() (string, bool) {
	if n.n == nil || n.n.Kind != yaml.ScalarNode || n.n.ShortTag() != "!!str" {
		return "", false
	}
	return n.n.Value, true
}

// Pairs iterates a mapping in document order. It yields nothing for other kinds.
func (n Node) Pairs() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if !n.IsMapping() {
			return
		}
		for i := 0; i+1 < len(n.n.Content); i += 2 {
			if !yield(n.n.Content[i].Value, NewNode(n.n.Content[i+1])) {
				return
			}
		}
	}
}

// Items iterates a sequence in order. It yields nothing for other kinds.
func (n Node) Items() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if !n.IsSequence() {
			return
		}
		for _, c := range n.n.Content {
			if !yield(NewNode(c)) {
				return
			}
		}
	}
}

// Strings collects the string items of a sequence, skipping everything else.
func (n Node) Strings() []string {
	var out []string
	for item := range n.Items() {
		if s, ok := item.String(); ok {
			out = append(out, s)
		}
	}
	return out
}
