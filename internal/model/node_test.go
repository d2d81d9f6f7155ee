package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func parse(t *testing.T, src string) Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return NewNode(&doc)
}

func TestNodeLookups(t *testing.T) {
	root := parse(t, `
zeta: 1
alpha:
  beta:
    gamma: deep
list: [a, 2, b]
`)

	require.True(t, root.IsMapping())

	v, ok := root.Path("alpha", "beta", "gamma").String()
	require.True(t, ok)
	require.Equal(t, "deep", v)

	require.False(t, root.Path("alpha", "missing", "gamma").Exists())
	require.False(t, root.Get("zeta").Get("anything").Exists())

	_, ok = root.Get("zeta").String()
	require.False(t, ok, "numbers are not strings")

	require.Equal(t, []string{"a", "b"}, root.Get("list").Strings())
}

func TestNodePairsKeepDocumentOrder(t *testing.T) {
	root := parse(t, `
zeta: 1
alpha: 2
mid: 3
`)

	var keys []string
	for k := range root.Pairs() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestZeroNode(t *testing.T) {
	var n Node

	require.False(t, n.Exists())
	require.False(t, n.IsMapping())
	require.False(t, n.IsSequence())
	require.False(t, n.Get("x").Exists())
	require.Nil(t, n.Strings())

	_, ok := n.String()
	require.False(t, ok)

	for range n.Pairs() {
		t.Fatal("zero node has no pairs")
	}
	for range n.Items() {
		t.Fatal("zero node has no items")
	}
}

func TestNewNodeEmptyDocument(t *testing.T) {
	require.False(t, NewNode(&yaml.Node{Kind: yaml.DocumentNode}).Exists())
	require.False(t, NewNode(nil).Exists())
}
