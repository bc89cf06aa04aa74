package algorithms

import "github.com/dd0wney/cluso-layout/pkg/graph"

// Modularity computes Newman-Girvan modularity of a partition
//
//	Q = sum_c [ L_c/m - (d_c/2m)^2 ]
//
// where L_c is the number of intra-community edges, d_c the total degree of
// community c and m the number of edges. Self-loops are ignored. Returns 0 for
// a graph without edges.
func Modularity(g *graph.Graph, assignment []int) float64 {
	m := 0
	communities := 0
	for _, c := range assignment {
		if c+1 > communities {
			communities = c + 1
		}
	}

	internal := make([]float64, communities)
	degree := make([]float64, communities)

	for _, l := range g.Links() {
		if l.Source == l.Target {
			continue
		}
		m++
		cs, ct := assignment[l.Source], assignment[l.Target]
		degree[cs]++
		degree[ct]++
		if cs == ct {
			internal[cs]++
		}
	}

	if m == 0 {
		return 0
	}

	total := float64(m)
	q := 0.0
	for c := 0; c < communities; c++ {
		frac := degree[c] / (2 * total)
		q += internal[c]/total - frac*frac
	}
	return q
}
