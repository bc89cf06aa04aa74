package visualization

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-layout/pkg/algorithms"
	"github.com/dd0wney/cluso-layout/pkg/graph"
	"github.com/dd0wney/cluso-layout/pkg/logging"
	"github.com/dd0wney/cluso-layout/pkg/metrics"
)

// Fallback reasons reported in Result.FallbackReason
const (
	ReasonStrategyError     = "strategy_error"
	ReasonUnresolvedOverlap = "unresolved_overlap"
)

// seedStream is the second PCG word; the caller's seed is the first
const seedStream = 0x9e3779b97f4a7c15

// Result is the outcome of a layout call
type Result struct {
	Nodes          []PositionedNode // Input node order
	Algorithm      Algorithm        // Algorithm that produced Nodes
	Requested      Algorithm        // Algorithm named in the options
	Selected       Algorithm        // Concrete algorithm attempted first
	Fallback       bool             // Whole-graph circular fallback engaged
	FallbackReason string
	Sanitized      int // Nodes moved onto the rescue circle
	Enforcement    EnforcementStats
	Communities    *algorithms.CommunityDetectionResult // Set for the community algorithm
}

// Positions returns the final coordinates in node order
func (r *Result) Positions() []graph.Position {
	out := make([]graph.Position, len(r.Nodes))
	for i, n := range r.Nodes {
		out[i] = n.Position
	}
	return out
}

// Engine runs layouts. It holds no per-call state, so one Engine can serve
// concurrent calls.
type Engine struct {
	logger  logging.Logger
	metrics *metrics.Registry

	// Test seams, nil in production. tune edits the resolved config before a
	// run; strategyFor replaces strategy construction.
	tune        func(*LayoutConfig)
	strategyFor func(Algorithm, *LayoutConfig, *rand.Rand) Strategy
}

// NewEngine creates an engine. A nil logger discards logs and a nil
// registry disables metrics.
func NewEngine(logger logging.Logger, registry *metrics.Registry) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{logger: logger, metrics: registry}
}

var defaultEngine = NewEngine(nil, nil)

// Layout positions every node of g using the default engine
func Layout(g *graph.Graph, opts LayoutOptions) (*Result, error) {
	return defaultEngine.Layout(g, opts)
}

// Layout positions every node of g. Malformed options are the only error;
// every data problem degrades into a usable layout reported in the Result.
func (e *Engine) Layout(g *graph.Graph, opts LayoutOptions) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		if e.metrics != nil {
			e.metrics.RecordConfigError()
		}
		e.logger.Debug("rejected layout options", logging.Error(err))
		return nil, err
	}
	if g == nil {
		g = graph.New(nil, nil)
	}

	stats := g.Stats()
	logger := e.logger.With(
		logging.LayoutID(uuid.NewString()),
		logging.NodeCount(stats.Nodes),
		logging.EdgeCount(stats.Edges),
	)
	start := time.Now()
	timer := logging.StartTimer(logger, "layout complete")

	selected := opts.Algorithm
	if selected == AlgorithmAuto {
		selected = DetectBestLayout(stats)
		logger.Debug("selected layout",
			logging.Algorithm(string(selected)),
			logging.Int("groups", stats.Groups),
			logging.Float64("density", stats.Density))
	}

	result := &Result{
		Nodes:     make([]PositionedNode, 0, stats.Nodes),
		Algorithm: selected,
		Requested: opts.Algorithm,
		Selected:  selected,
	}

	if stats.Nodes == 0 {
		e.record(result, 0, start)
		timer.EndWith(logging.Algorithm(string(selected)))
		return result, nil
	}

	config := opts.layoutConfig()
	if e.tune != nil {
		e.tune(config)
	}
	rng := rand.New(rand.NewPCG(opts.Seed, seedStream))

	strategy := e.strategy(selected, config, rng)
	raw, err := strategy.ComputeLayout(g)
	if err == nil && len(raw) != stats.Nodes {
		err = fmt.Errorf("%s layout returned %d positions for %d nodes", selected, len(raw), stats.Nodes)
	}
	if cl, ok := strategy.(*CommunityLayout); ok {
		result.Communities = cl.Communities()
		if e.metrics != nil && result.Communities != nil {
			e.metrics.RecordCommunities(len(result.Communities.Communities))
		}
	}

	var positions []graph.Position
	if err != nil {
		logger.Warn("layout strategy failed, using circular layout",
			logging.Algorithm(string(selected)), logging.Error(err))
		positions = e.fallback(g, config, result, ReasonStrategyError)
	} else {
		logger.Debug("strategy complete", logging.Algorithm(string(selected)))

		sanitized, moved := sanitizePositions(raw, stats.Nodes, config)
		result.Sanitized = moved
		if moved > 0 {
			logger.Debug("sanitized positions", logging.Count(moved))
		}

		enforced, es := NewSpacingEnforcer(config).Enforce(sanitized)
		result.Enforcement = es
		if e.metrics != nil {
			e.metrics.RecordEnforcement(es.InitialViolations, es.RelaxationPasses, es.AggressivePasses)
		}
		logger.Debug("spacing enforced",
			logging.Violations(es.InitialViolations),
			logging.Int("relaxation_passes", es.RelaxationPasses),
			logging.Int("aggressive_passes", es.AggressivePasses),
			logging.Float64("expansion", es.Expansion))

		positions = enforced
		if CountViolations(positions, config.MinSpacing) > 0 {
			logger.Warn("spacing unresolved, using circular layout",
				logging.Algorithm(string(selected)),
				logging.Violations(es.RemainingViolations))
			positions = e.fallback(g, config, result, ReasonUnresolvedOverlap)
		}
	}

	for i, p := range positions {
		n := g.Node(i)
		result.Nodes = append(result.Nodes, PositionedNode{
			ID:       n.ID,
			Group:    n.Group,
			Type:     n.Type,
			Weight:   n.Weight,
			Position: p,
		})
	}

	e.record(result, stats.Nodes, start)
	timer.EndWith(
		logging.Algorithm(string(result.Algorithm)),
		logging.Bool("fallback", result.Fallback),
	)
	return result, nil
}

// fallback replaces the whole layout with the circular one
func (e *Engine) fallback(g *graph.Graph, config *LayoutConfig, result *Result, reason string) []graph.Position {
	result.Fallback = true
	result.FallbackReason = reason
	result.Algorithm = AlgorithmCircular
	if e.metrics != nil {
		e.metrics.RecordFallback(reason)
	}

	// Circular placement cannot fail
	positions, _ := NewCircularLayout(config).ComputeLayout(g)
	return positions
}

func (e *Engine) strategy(algorithm Algorithm, config *LayoutConfig, rng *rand.Rand) Strategy {
	if e.strategyFor != nil {
		if s := e.strategyFor(algorithm, config, rng); s != nil {
			return s
		}
	}

	switch algorithm {
	case AlgorithmCircular:
		return NewCircularLayout(config)
	case AlgorithmGrid:
		return NewGridLayout(config)
	case AlgorithmHierarchical:
		return NewHierarchicalLayout(config, rng)
	case AlgorithmCommunity:
		return NewCommunityLayout(config, rng)
	default:
		return NewForceDirectedLayout(config, rng)
	}
}

func (e *Engine) record(result *Result, nodes int, start time.Time) {
	if e.metrics == nil {
		return
	}
	outcome := metrics.OutcomeAccepted
	switch {
	case nodes == 0:
		outcome = metrics.OutcomeEmpty
	case result.Fallback:
		outcome = metrics.OutcomeFallback
	}
	e.metrics.RecordLayout(string(result.Algorithm), outcome, nodes, time.Since(start))
}
