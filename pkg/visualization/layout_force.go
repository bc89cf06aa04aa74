package visualization

import (
	"math"
	"math/rand/v2"

	"github.com/dd0wney/cluso-layout/pkg/graph"
	"github.com/dd0wney/cluso-layout/pkg/parallel"
)

// Force model constants
const (
	linkDistance      = 300.0  // Target separation of connected nodes
	linkStrength      = 0.1    // Spring constant before degree scaling
	repulsionStrength = 500.0  // Repulsion magnitude is repulsionStrength / distance
	repulsionCutoff   = 1000.0 // Pairs farther apart than this do not repel
	centeringStrength = 0.01   // Pull towards canvas center
	collisionStrength = 0.5    // Push for pairs inside the collision radius
	velocityDamping   = 0.6    // Velocity kept after each tick
	maxStep           = 100.0  // Largest displacement per tick
	seedSpread        = 0.4    // Initial placement box, as a fraction of the canvas
)

// ForceDirectedLayout implements force-directed graph layout
type ForceDirectedLayout struct {
	config *LayoutConfig
	rng    *rand.Rand
}

// NewForceDirectedLayout creates a new force-directed layout.
// rng seeds nodes that do not carry a usable position.
func NewForceDirectedLayout(config *LayoutConfig, rng *rand.Rand) *ForceDirectedLayout {
	return &ForceDirectedLayout{config: config, rng: rng}
}

type vec struct{ x, y float64 }

// spring is a resolved link with its degree-scaled strength
type spring struct {
	source, target int
	strength       float64
}

// ComputeLayout runs exactly config.Iterations ticks of the simulation
func (fdl *ForceDirectedLayout) ComputeLayout(g *graph.Graph) ([]graph.Position, error) {
	n := g.Len()
	positions := make([]graph.Position, n)
	if n == 0 {
		return positions, nil
	}

	// Single node - keep it or center it
	if n == 1 {
		positions[0] = canvasCenter(fdl.config)
		if p := g.Node(0).Position; p.IsSet() {
			positions[0] = p
		}
		return positions, nil
	}

	positions = fdl.seed(g)
	springs := buildSprings(g)
	velocities := make([]vec, n)
	forces := make([]vec, n)

	var pool *parallel.WorkerPool
	if fdl.config.Workers > 1 && n > fdl.config.Workers {
		p, err := parallel.NewWorkerPool(fdl.config.Workers)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		pool = p
	}

	center := canvasCenter(fdl.config)
	for iter := 0; iter < fdl.config.Iterations; iter++ {
		accumulate := func(lo, hi int) {
			for i := lo; i < hi; i++ {
				forces[i] = fdl.nodeForce(i, positions, center)
			}
		}
		if pool == nil || !pool.ForEachRange(n, accumulate) {
			accumulate(0, n)
		}

		// Springs are applied after every per-node sum is committed
		for _, s := range springs {
			dist, ux, uy := unitBetween(positions[s.target], positions[s.source], s.target, s.source)
			pull := s.strength * (dist - linkDistance)
			forces[s.source].x += ux * pull
			forces[s.source].y += uy * pull
			forces[s.target].x -= ux * pull
			forces[s.target].y -= uy * pull
		}

		for i := range positions {
			vx := (velocities[i].x + forces[i].x) * velocityDamping
			vy := (velocities[i].y + forces[i].y) * velocityDamping
			if speed := math.Hypot(vx, vy); speed > maxStep {
				vx *= maxStep / speed
				vy *= maxStep / speed
			}
			velocities[i] = vec{vx, vy}
			positions[i] = graph.Position{X: positions[i].X + vx, Y: positions[i].Y + vy}
		}
	}

	return positions, nil
}

// seed keeps usable input positions and scatters the rest around the center
func (fdl *ForceDirectedLayout) seed(g *graph.Graph) []graph.Position {
	center := canvasCenter(fdl.config)
	positions := make([]graph.Position, g.Len())
	for i := range positions {
		if p := g.Node(i).Position; p.IsSet() {
			positions[i] = p
			continue
		}
		positions[i] = graph.Position{
			X: center.X + (fdl.rng.Float64()-0.5)*seedSpread*fdl.config.Width,
			Y: center.Y + (fdl.rng.Float64()-0.5)*seedSpread*fdl.config.Height,
		}
	}
	return positions
}

// buildSprings drops self-loops and scales each link by the inverse of the
// smaller endpoint degree so hubs do not oscillate
func buildSprings(g *graph.Graph) []spring {
	springs := make([]spring, 0, len(g.Links()))
	for _, l := range g.Links() {
		if l.Source == l.Target {
			continue
		}
		deg := min(len(g.Neighbors(l.Source)), len(g.Neighbors(l.Target)))
		springs = append(springs, spring{
			source:   l.Source,
			target:   l.Target,
			strength: linkStrength / float64(max(deg, 1)),
		})
	}
	return springs
}

// nodeForce sums repulsion, collision and centering on node i.
// Only positions are read, so nodes can be evaluated concurrently.
func (fdl *ForceDirectedLayout) nodeForce(i int, positions []graph.Position, center graph.Position) vec {
	collisionRadius := fdl.config.MinSpacing
	var f vec
	for j := range positions {
		if j == i {
			continue
		}
		dist, ux, uy := unitBetween(positions[i], positions[j], i, j)
		if dist > repulsionCutoff {
			continue
		}

		push := repulsionStrength / math.Max(dist, 1)
		if dist < collisionRadius {
			// Each node covers half of the remaining overlap
			push += collisionStrength * (collisionRadius - dist) / 2
		}
		f.x += ux * push
		f.y += uy * push
	}

	f.x += (center.X - positions[i].X) * centeringStrength
	f.y += (center.Y - positions[i].Y) * centeringStrength
	return f
}
