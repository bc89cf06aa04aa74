package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-layout/pkg/graph"
	"github.com/dd0wney/cluso-layout/pkg/visualization"
)

func (a *app) layoutCommand() *cobra.Command {
	var (
		flags       layoutFlags
		output      string
		showMetrics bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "layout <graph-file>",
		Short: "Compute a layout and write it as JSON",
		Long: `Reads a YAML or JSON graph document ("-" for stdin, ".sz" for snappy-compressed),
computes positions for every node and writes the layout as JSON to stdout or the
--output file. Output files ending in ".sz" are snappy-compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}

			opts, err := flags.options(cmd, a.cfg)
			if err != nil {
				return err
			}

			result, err := a.engine().Layout(g, opts)
			if err != nil {
				return err
			}

			data, err := visualization.NewVisualization(g, result).ExportJSON()
			if err != nil {
				return fmt.Errorf("failed to encode layout: %w", err)
			}

			data = append(data, '\n')
			switch {
			case output == "":
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			case strings.HasSuffix(output, graph.CompressedSuffix):
				if err := os.WriteFile(output, snappy.Encode(nil, data), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
			default:
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
			}

			if !quiet {
				printResultSummary(cmd.ErrOrStderr(), result)
			}
			if showMetrics {
				snapshot, err := a.metrics.Snapshot()
				if err != nil {
					return err
				}
				printMetrics(cmd.ErrOrStderr(), snapshot)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write layout JSON to this file instead of stdout")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print a metrics snapshot to stderr")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the summary on stderr")

	return cmd
}

func loadGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	if path == "-" {
		return graph.Decode(cmd.InOrStdin())
	}
	return graph.Load(path)
}
