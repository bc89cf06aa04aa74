package graph

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
	"gopkg.in/yaml.v3"
)

// CompressedSuffix marks snappy-compressed graph documents
const CompressedSuffix = ".sz"

var (
	// ErrEmptyNodeID is returned when a document node has no id
	ErrEmptyNodeID = errors.New("node id cannot be empty")
	// ErrDuplicateNode is returned when a document declares the same id twice
	ErrDuplicateNode = errors.New("duplicate node id")
)

// Document is the on-disk form of a graph. JSON documents decode as well,
// since JSON is a subset of YAML.
type Document struct {
	Nodes []NodeDocument `yaml:"nodes" json:"nodes"`
	Edges []EdgeDocument `yaml:"edges" json:"edges"`
}

// NodeDocument describes one node in a Document
type NodeDocument struct {
	ID     string  `yaml:"id" json:"id"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Group  string  `yaml:"group,omitempty" json:"group,omitempty"`
	Type   string  `yaml:"type,omitempty" json:"type,omitempty"`
	Weight float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// EdgeDocument describes one edge in a Document
type EdgeDocument struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Decode reads a YAML or JSON graph document from r
func Decode(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph document: %w", err)
	}

	var doc Document
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse graph document: %w", err)
		}
	}

	return doc.Graph()
}

// Load reads a graph document from path. The file is memory-mapped, and
// paths ending in CompressedSuffix are snappy-decoded first.
func Load(path string) (*Graph, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph document: %w", err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read graph document: %w", err)
	}

	if strings.HasSuffix(path, CompressedSuffix) {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress graph document: %w", err)
		}
	}

	return Decode(bytes.NewReader(data))
}

// Graph converts the document into a Graph.
// Edges pointing at unknown nodes are accepted; the layout ignores them.
func (d *Document) Graph() (*Graph, error) {
	seen := make(map[string]bool, len(d.Nodes))
	nodes := make([]Node, 0, len(d.Nodes))

	for i, nd := range d.Nodes {
		if nd.ID == "" {
			return nil, fmt.Errorf("nodes[%d]: %w", i, ErrEmptyNodeID)
		}
		if seen[nd.ID] {
			return nil, fmt.Errorf("nodes[%d]: %w: %q", i, ErrDuplicateNode, nd.ID)
		}
		seen[nd.ID] = true

		nodes = append(nodes, Node{
			ID:       NodeID(nd.ID),
			Position: Position{X: nd.X, Y: nd.Y},
			Group:    GroupID(nd.Group),
			Type:     nd.Type,
			Weight:   nd.Weight,
		})
	}

	edges := make([]Edge, 0, len(d.Edges))
	for _, ed := range d.Edges {
		edges = append(edges, Edge{
			From:   NodeID(ed.From),
			To:     NodeID(ed.To),
			Weight: ed.Weight,
		})
	}

	return New(nodes, edges), nil
}
