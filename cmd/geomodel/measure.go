package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/pkg/analysis"
	"github.com/philipparndt/geomodel/pkg/geometry"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points and between
the model vertices nearest to them.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	p1 := geometry.NewPoint(point1X, point1Y, point1Z)
	p2 := geometry.NewPoint(point2X, point2Y, point2Z)

	ws, err := open(args[0])
	if err != nil {
		return err
	}
	m, err := ws.CurrentModel()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Point-to-Point Measurement")
	fmt.Fprintln(out, "==========================")

	nearest1, dist1, ok1 := analysis.FindNearestVertex(m, p1)
	nearest2, dist2, ok2 := analysis.FindNearestVertex(m, p2)

	fmt.Fprintf(out, "\nPoint 1: %s\n", analysis.FormatPoint(p1))
	if ok1 {
		fmt.Fprintf(out, "  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatPoint(nearest1), dist1)
	}
	fmt.Fprintf(out, "\nPoint 2: %s\n", analysis.FormatPoint(p2))
	if ok2 {
		fmt.Fprintf(out, "  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatPoint(nearest2), dist2)
	}

	fmt.Fprintf(out, "\nDirect distance: %.6f units\n", p1.Distance(p2))
	if ok1 && ok2 {
		fmt.Fprintf(out, "Distance between nearest vertices: %.6f units\n", nearest1.Distance(nearest2))
	}
	return nil
}
