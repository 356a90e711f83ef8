package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/pkg/geometry"
)

var addOutput string

var addFaceCmd = &cobra.Command{
	Use:   "add-face [file] x1 y1 z1 x2 y2 z2 x3 y3 z3",
	Short: "Add a triangular face to a model",
	Args:  cobra.ExactArgs(10),
	RunE:  runAddFace,
}

var addLineCmd = &cobra.Command{
	Use:   "add-line [file] x1 y1 z1 x2 y2 z2",
	Short: "Add a line segment to a model",
	Args:  cobra.ExactArgs(7),
	RunE:  runAddLine,
}

func init() {
	rootCmd.AddCommand(addFaceCmd)
	rootCmd.AddCommand(addLineCmd)

	for _, c := range []*cobra.Command{addFaceCmd, addLineCmd} {
		c.Flags().StringVarP(&addOutput, "out", "o", "", "Write the result here instead of replacing the input file")
	}
}

func runAddFace(cmd *cobra.Command, args []string) error {
	points, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	f, err := geometry.NewFace(points[0], points[1], points[2])
	if err != nil {
		return err
	}

	ws, err := open(args[0])
	if err != nil {
		return err
	}
	if err := ws.AddFace(f); err != nil {
		return err
	}
	if err := save(ws, args[0], addOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added face %s\n", f)
	return nil
}

func runAddLine(cmd *cobra.Command, args []string) error {
	points, err := parsePoints(args[1:])
	if err != nil {
		return err
	}
	l, err := geometry.NewLine(points[0], points[1])
	if err != nil {
		return err
	}

	ws, err := open(args[0])
	if err != nil {
		return err
	}
	if err := ws.AddLine(l); err != nil {
		return err
	}
	if err := save(ws, args[0], addOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added line %s\n", l)
	return nil
}
