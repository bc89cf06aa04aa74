package visualization

import (
	"encoding/json"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// Visualization pairs a layout result with the edges it was computed for
type Visualization struct {
	Result *Result
	Edges  []graph.Edge
}

// NewVisualization builds an exportable view of a layout
func NewVisualization(g *graph.Graph, result *Result) *Visualization {
	v := &Visualization{Result: result}
	if g != nil {
		v.Edges = g.Edges()
	}
	return v
}

// ExportJSON exports the visualization to JSON
func (v *Visualization) ExportJSON() ([]byte, error) {
	type NodeViz struct {
		ID     graph.NodeID  `json:"id"`
		Group  graph.GroupID `json:"group,omitempty"`
		Type   string        `json:"type,omitempty"`
		Weight float64       `json:"weight,omitempty"`
		X      float64       `json:"x"`
		Y      float64       `json:"y"`
	}

	type EdgeViz struct {
		From   graph.NodeID `json:"from"`
		To     graph.NodeID `json:"to"`
		Weight float64      `json:"weight,omitempty"`
	}

	type CommunityViz struct {
		ID      int            `json:"id"`
		Nodes   []graph.NodeID `json:"nodes"`
		Density float64        `json:"density"`
	}

	type LayoutViz struct {
		Algorithm      Algorithm        `json:"algorithm"`
		Requested      Algorithm        `json:"requested"`
		Selected       Algorithm        `json:"selected"`
		Fallback       bool             `json:"fallback"`
		FallbackReason string           `json:"fallback_reason,omitempty"`
		Sanitized      int              `json:"sanitized"`
		Enforcement    EnforcementStats `json:"enforcement"`
		Modularity     *float64         `json:"modularity,omitempty"`
		Communities    []CommunityViz   `json:"communities,omitempty"`
		Nodes          []NodeViz        `json:"nodes"`
		Edges          []EdgeViz        `json:"edges"`
	}

	r := v.Result
	out := LayoutViz{
		Algorithm:      r.Algorithm,
		Requested:      r.Requested,
		Selected:       r.Selected,
		Fallback:       r.Fallback,
		FallbackReason: r.FallbackReason,
		Sanitized:      r.Sanitized,
		Enforcement:    r.Enforcement,
		Nodes:          make([]NodeViz, 0, len(r.Nodes)),
		Edges:          make([]EdgeViz, 0, len(v.Edges)),
	}

	for _, n := range r.Nodes {
		out.Nodes = append(out.Nodes, NodeViz{
			ID:     n.ID,
			Group:  n.Group,
			Type:   n.Type,
			Weight: n.Weight,
			X:      n.Position.X,
			Y:      n.Position.Y,
		})
	}

	for _, e := range v.Edges {
		out.Edges = append(out.Edges, EdgeViz{From: e.From, To: e.To, Weight: e.Weight})
	}

	if r.Communities != nil {
		q := r.Communities.Modularity
		out.Modularity = &q
		for _, c := range r.Communities.Communities {
			out.Communities = append(out.Communities, CommunityViz{ID: c.ID, Nodes: c.Nodes, Density: c.Density})
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
