package graph

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionIsSet(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"sentinel", Position{}, false},
		{"nan", Position{X: math.NaN(), Y: 1}, false},
		{"inf", Position{X: 1, Y: math.Inf(-1)}, false},
		{"x only", Position{X: 5}, true},
		{"both", Position{X: 3, Y: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.IsSet())
		})
	}
}

func TestNew_DuplicateNodesFirstWins(t *testing.T) {
	g := New([]Node{
		{ID: "a", Group: "first"},
		{ID: "b"},
		{ID: "a", Group: "second"},
	}, nil)

	require.Equal(t, 2, g.Len())
	idx, ok := g.IndexOf("a")
	require.True(t, ok)
	assert.Equal(t, GroupID("first"), g.Node(idx).Group)
}

func TestNew_DanglingEdgesIgnored(t *testing.T) {
	g := New(
		[]Node{{ID: "a"}, {ID: "b"}},
		[]Edge{{From: "a", To: "b"}, {From: "a", To: "ghost"}, {From: "ghost", To: "b"}},
	)

	assert.Len(t, g.Edges(), 3)
	assert.Len(t, g.Links(), 1)
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
}

func TestNew_SelfLoopNotANeighbor(t *testing.T) {
	g := New([]Node{{ID: "a"}}, []Edge{{From: "a", To: "a"}})

	assert.Len(t, g.Links(), 1)
	assert.Empty(t, g.Neighbors(0))
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g := New(
		[]Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		[]Edge{{From: "a", To: "d"}, {From: "b", To: "a"}, {From: "a", To: "c"}, {From: "a", To: "d"}},
	)

	assert.Equal(t, []int{3, 1, 2, 3}, g.Neighbors(0))
}

func TestStats(t *testing.T) {
	g := New(
		[]Node{{ID: "a", Group: "x"}, {ID: "b", Group: "x"}, {ID: "c", Group: "y"}, {ID: "d"}},
		[]Edge{{From: "a", To: "b"}, {From: "c", To: "d"}, {From: "d", To: "zz"}},
	)

	s := g.Stats()
	assert.Equal(t, 4, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 2, s.Groups)
	assert.InDelta(t, 2.0/6.0, s.Density, 1e-12)
}

func TestStats_Degenerate(t *testing.T) {
	assert.Equal(t, Stats{}, New(nil, nil).Stats())
	assert.Zero(t, New([]Node{{ID: "a"}}, nil).Stats().Density)
}

func TestWithPositionsDoesNotMutate(t *testing.T) {
	g := New([]Node{{ID: "a"}, {ID: "b"}}, []Edge{{From: "a", To: "b"}})
	moved := g.WithPositions([]Position{{X: 1, Y: 2}, {X: 3, Y: 4}})

	assert.False(t, g.Node(0).Position.IsSet())
	assert.Equal(t, Position{X: 3, Y: 4}, moved.Node(1).Position)
	assert.Equal(t, g.Links(), moved.Links())
}

func TestWithGroups(t *testing.T) {
	g := New([]Node{{ID: "a"}, {ID: "b"}}, nil)
	grouped := g.WithGroups([]GroupID{"g1", "g1"})

	assert.Equal(t, []GroupID{"g1"}, grouped.Groups())
	assert.Empty(t, g.Groups())
}

func TestDecode_YAML(t *testing.T) {
	doc := `
nodes:
  - id: plant
    x: 100
    y: 200
    group: north
    type: producer
  - id: house
    group: north
edges:
  - from: plant
    to: house
    weight: 2.5
`
	g, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, Position{X: 100, Y: 200}, g.Node(0).Position)
	assert.Equal(t, "producer", g.Node(0).Type)
	assert.False(t, g.Node(1).Position.IsSet())
	assert.Equal(t, 2.5, g.Links()[0].Weight)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"nodes":[{"id":"a"},{"id":"b","group":"g"}],"edges":[{"from":"a","to":"b"}]}`
	g, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Stats().Groups)
	assert.Len(t, g.Links(), 1)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("nodes:\n  - id: a\n  - id: a\n"))
	assert.ErrorIs(t, err, ErrDuplicateNode)

	_, err = Decode(strings.NewReader("nodes:\n  - group: x\n"))
	assert.ErrorIs(t, err, ErrEmptyNodeID)

	_, err = Decode(strings.NewReader("nodes: [unterminated"))
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	g, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	doc := []byte("nodes: [{id: a}, {id: b}]\nedges: [{from: a, to: b}]\n")

	plain := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(plain, doc, 0o600))
	g, err := Load(plain)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	compressed := filepath.Join(dir, "graph.yaml"+CompressedSuffix)
	require.NoError(t, os.WriteFile(compressed, snappy.Encode(nil, doc), 0o600))
	g, err = Load(compressed)
	require.NoError(t, err)
	assert.Len(t, g.Links(), 1)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	g, err = Load(empty)
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	corrupt := filepath.Join(dir, "graph.yaml"+CompressedSuffix)
	require.NoError(t, os.WriteFile(corrupt, []byte("not snappy"), 0o600))
	_, err = Load(corrupt)
	assert.ErrorContains(t, err, "decompress")
}
