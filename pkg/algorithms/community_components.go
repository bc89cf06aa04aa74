package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-layout/pkg/graph"
)

// ConnectedComponents finds all connected components in the graph.
// Component IDs follow the lowest node index in each component.
func ConnectedComponents(g *graph.Graph) *CommunityDetectionResult {
	n := g.Len()
	visited := make([]bool, n)
	labels := make([]int, n)
	component := 0

	// BFS to find each component
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			node, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			labels[node] = component

			for _, next := range g.Neighbors(node) {
				if !visited[next] {
					visited[next] = true
					queue.PushBack(next)
				}
			}
		}

		component++
	}

	return finalizeCommunities(g, labels, &CommunityDetectionResult{})
}
