package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/pkg/analysis"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze the edges of a model",
	Long:  "Measure every face edge and line, including longest, shortest, or edges within a length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")

	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func runEdges(cmd *cobra.Command, args []string) error {
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	m, err := ws.CurrentModel()
	if err != nil {
		return err
	}

	result := analysis.AnalyzeModel(m)

	var (
		edges []analysis.EdgeInfo
		title string
	)
	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in model: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found matching the criteria.")
		return nil
	}

	fmt.Fprintf(out, "%-8s %-35s %-35s %-15s\n", "Source", "Start", "End", "Length")
	for _, edge := range edges {
		source := fmt.Sprintf("f%d", edge.FaceTag)
		if edge.FaceTag < 0 {
			source = fmt.Sprintf("l%d", edge.LineTag)
		}
		fmt.Fprintf(out, "%-8s %-35s %-35s %-15.6f\n",
			source,
			analysis.FormatPoint(edge.Start),
			analysis.FormatPoint(edge.End),
			edge.Length)
	}
	return nil
}
