package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-layout/pkg/config"
	"github.com/dd0wney/cluso-layout/pkg/logging"
	"github.com/dd0wney/cluso-layout/pkg/metrics"
	"github.com/dd0wney/cluso-layout/pkg/visualization"
)

// app holds state shared by every subcommand
type app struct {
	configPath string
	verbose    bool
	logFormat  string

	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	stderr  io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:          "graphlayout",
		Short:        "graphlayout positions graph nodes on a 2-D canvas",
		Long:         `graphlayout computes overlap-free 2-D layouts for graphs, choosing between force-directed, hierarchical, circular, grid and community-clustered placement.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "layout config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(a.layoutCommand())
	root.AddCommand(a.statsCommand())
	root.AddCommand(a.benchCommand())

	return root
}

// init loads configuration and builds the logger and metrics registry
func (a *app) init(cmd *cobra.Command) error {
	a.stderr = cmd.ErrOrStderr()

	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = logging.DebugLevel
	}

	switch a.logFormat {
	case "text":
		a.logger = logging.NewCharmLogger(a.stderr, level)
	case "json":
		a.logger = logging.NewJSONLogger(a.stderr, level)
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}
	logging.SetDefaultLogger(a.logger)

	a.metrics = metrics.NewRegistry()
	return nil
}

func (a *app) engine() *visualization.Engine {
	return visualization.NewEngine(a.logger.With(logging.Component("layout")), a.metrics)
}

// layoutFlags are the per-run overrides shared by layout and bench
type layoutFlags struct {
	algorithm  string
	width      float64
	height     float64
	padding    float64
	iterations int
	minSpacing float64
	seed       uint64
	workers    int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.algorithm, "algorithm", "a", "", "auto, force, hierarchical, circular, grid or community")
	flags.Float64Var(&f.width, "width", 0, "canvas width")
	flags.Float64Var(&f.height, "height", 0, "canvas height")
	flags.Float64Var(&f.padding, "padding", 0, "canvas padding")
	flags.IntVar(&f.iterations, "iterations", 0, "force simulation ticks")
	flags.Float64Var(&f.minSpacing, "min-spacing", 0, "minimum distance between nodes")
	flags.Uint64Var(&f.seed, "seed", 0, "random seed for initial placement")
	flags.IntVar(&f.workers, "workers", 0, "goroutines for force accumulation")
}

// options applies explicitly set flags over the loaded configuration
func (f *layoutFlags) options(cmd *cobra.Command, cfg *config.Config) (visualization.LayoutOptions, error) {
	merged := *cfg
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		merged.Algorithm = f.algorithm
	}
	if flags.Changed("width") {
		merged.Width = f.width
	}
	if flags.Changed("height") {
		merged.Height = f.height
	}
	if flags.Changed("padding") {
		merged.Padding = f.padding
	}
	if flags.Changed("iterations") {
		merged.Iterations = f.iterations
	}
	if flags.Changed("min-spacing") {
		merged.MinSpacing = f.minSpacing
	}
	if flags.Changed("seed") {
		merged.Seed = f.seed
	}
	if flags.Changed("workers") {
		merged.Workers = f.workers
	}
	return merged.LayoutOptions()
}
