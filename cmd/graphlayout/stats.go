package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-layout/pkg/algorithms"
	"github.com/dd0wney/cluso-layout/pkg/visualization"
)

func (a *app) statsCommand() *cobra.Command {
	var (
		communities bool
		maxPasses   int
	)

	cmd := &cobra.Command{
		Use:   "stats <graph-file>",
		Short: "Show graph statistics and the layout auto selection would pick",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			stats := g.Stats()

			printTitle(w, "Graph")
			printField(w, "nodes", stats.Nodes)
			printField(w, "edges", stats.Edges)
			printField(w, "groups", stats.Groups)
			printField(w, "density", fmt.Sprintf("%.4f", stats.Density))
			printField(w, "components", len(algorithms.ConnectedComponents(g).Communities))
			printField(w, "auto layout", visualization.DetectBestLayout(stats))

			if !communities {
				return nil
			}

			result := algorithms.DetectCommunities(g, maxPasses)
			fmt.Fprintln(w)
			printTitle(w, "Communities")
			printField(w, "count", len(result.Communities))
			printField(w, "modularity", fmt.Sprintf("%.4f", result.Modularity))
			printField(w, "passes", result.Passes)
			printField(w, "moves", result.Moves)
			for _, c := range result.Communities {
				printField(w, fmt.Sprintf("community %d", c.ID), fmt.Sprintf("%d nodes, density %.3f", c.Size, c.Density))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&communities, "communities", false, "run community detection")
	cmd.Flags().IntVar(&maxPasses, "max-passes", algorithms.DefaultMaxPasses, "community detection pass budget")

	return cmd
}
