package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-layout/pkg/visualization"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconError   = "✗"
	iconArrow   = "→"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printField(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render(fmt.Sprintf("%-20s", key)), styleNumber.Render(fmt.Sprint(value)))
}

// printResultSummary describes a finished layout
func printResultSummary(w io.Writer, result *visualization.Result) {
	if result.Fallback {
		fmt.Fprintf(w, "%s %s %s %s (%s)\n",
			styleWarning.Render(iconWarning), result.Selected, iconArrow, result.Algorithm, result.FallbackReason)
	} else {
		fmt.Fprintf(w, "%s laid out %d nodes with %s\n",
			styleSuccess.Render(iconSuccess), len(result.Nodes), styleNumber.Render(string(result.Algorithm)))
	}

	es := result.Enforcement
	printField(w, "sanitized", result.Sanitized)
	printField(w, "initial violations", es.InitialViolations)
	printField(w, "relaxation passes", es.RelaxationPasses)
	printField(w, "aggressive passes", es.AggressivePasses)
	printField(w, "min distance", fmt.Sprintf("%.2f", visualization.MinPairDistance(result.Positions())))
	printField(w, "fingerprint", result.Fingerprint()[:16])
	if result.Communities != nil {
		printField(w, "communities", len(result.Communities.Communities))
		printField(w, "modularity", fmt.Sprintf("%.4f", result.Communities.Modularity))
	}
}

// printMetrics writes a sorted metrics snapshot
func printMetrics(w io.Writer, snapshot map[string]float64) {
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	printTitle(w, "Metrics")
	for _, k := range keys {
		if strings.HasSuffix(k, "_sum") && strings.Contains(k, "duration") {
			printField(w, k, fmt.Sprintf("%.4fs", snapshot[k]))
			continue
		}
		printField(w, k, snapshot[k])
	}
}
