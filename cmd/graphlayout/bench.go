package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-layout/pkg/algorithms"
	"github.com/dd0wney/cluso-layout/pkg/graph"
	"github.com/dd0wney/cluso-layout/pkg/visualization"
)

func (a *app) benchCommand() *cobra.Command {
	var (
		flags  layoutFlags
		nodes  int
		edges  int
		groups int
		rounds int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark layouts on a random graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			opts, err := flags.options(cmd, a.cfg)
			if err != nil {
				return err
			}
			if nodes < 0 || edges < 0 || groups < 0 || rounds < 1 {
				return fmt.Errorf("nodes, edges and groups must be non-negative and rounds positive")
			}

			printTitle(w, "Graph Layout Benchmark")
			printField(w, "nodes", nodes)
			printField(w, "edges", edges)
			printField(w, "groups", groups)
			printField(w, "algorithm", opts.Algorithm)
			printField(w, "iterations", opts.Iterations)
			printField(w, "workers", opts.Workers)
			fmt.Fprintln(w)

			start := time.Now()
			g := randomGraph(nodes, edges, groups, opts.Seed)
			fmt.Fprintf(w, "%s generated graph in %v\n", styleSuccess.Render(iconSuccess), time.Since(start))

			start = time.Now()
			detected := algorithms.DetectCommunities(g, algorithms.DefaultMaxPasses)
			fmt.Fprintf(w, "%s community detection: %d communities, modularity %.4f in %v\n",
				styleSuccess.Render(iconSuccess), len(detected.Communities), detected.Modularity, time.Since(start))

			engine := a.engine()
			var total time.Duration
			var last *visualization.Result
			for i := 0; i < rounds; i++ {
				start = time.Now()
				last, err = engine.Layout(g, opts)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)
				total += elapsed
				fmt.Fprintf(w, "%s round %d: %s in %v\n", styleSuccess.Render(iconSuccess), i+1, last.Algorithm, elapsed)
			}

			fmt.Fprintln(w)
			printField(w, "mean", total/time.Duration(rounds))
			printResultSummary(w, last)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&nodes, "nodes", 1000, "number of nodes to create")
	cmd.Flags().IntVar(&edges, "edges", 3000, "number of edges to create")
	cmd.Flags().IntVar(&groups, "groups", 0, "number of groups to spread nodes across")
	cmd.Flags().IntVar(&rounds, "rounds", 1, "number of layout runs")

	return cmd
}

// randomGraph builds a seeded random graph; self-loops are redirected to the next node
func randomGraph(nodes, edges, groups int, seed uint64) *graph.Graph {
	rng := rand.New(rand.NewPCG(seed, 0))

	ns := make([]graph.Node, nodes)
	for i := range ns {
		ns[i] = graph.Node{ID: graph.NodeID(fmt.Sprintf("user%d", i))}
		if groups > 0 {
			ns[i].Group = graph.GroupID(fmt.Sprintf("group%d", i%groups))
		}
	}

	es := make([]graph.Edge, 0, edges)
	for i := 0; i < edges && nodes > 1; i++ {
		from := rng.IntN(nodes)
		to := rng.IntN(nodes)
		if from == to {
			to = (to + 1) % nodes
		}
		es = append(es, graph.Edge{
			From:   ns[from].ID,
			To:     ns[to].ID,
			Weight: rng.Float64(),
		})
	}

	return graph.New(ns, es)
}
