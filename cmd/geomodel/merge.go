package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/internal/workspace"
	"github.com/philipparndt/geomodel/pkg/model"
)

var (
	mergeName     string
	mergeSubtract bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [output] [input...]",
	Short: "Combine several models into one",
	Long: `Read every input model and add its faces and lines to the first one.
Elements present in more than one input are kept once. With --subtract the
elements of the later inputs are removed from the first one instead.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeName, "name", "", "Name of the resulting model (default: name of the first input)")
	mergeCmd.Flags().BoolVar(&mergeSubtract, "subtract", false, "Remove the elements of later inputs from the first")
}

func runMerge(cmd *cobra.Command, args []string) error {
	output, inputs := args[0], args[1:]

	ws := workspace.New(registry, logger)
	for _, path := range inputs {
		tag := ws.NewModel("")
		if err := ws.Import(path, tag); err != nil {
			return err
		}
	}

	result, err := ws.Model(0)
	if err != nil {
		return err
	}
	for tag := 1; tag < ws.Len(); tag++ {
		other, err := ws.Model(tag)
		if err != nil {
			return err
		}
		combine(result, other)
	}
	if mergeName != "" {
		result.Name = mergeName
	}

	if err := ws.Export(output, 0); err != nil {
		return err
	}

	s := result.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d faces, %d lines\n", output, s.FaceCount, s.LineCount)
	return nil
}

func combine(result, other *model.Model) {
	if mergeSubtract {
		result.Subtract(other)
		return
	}
	result.Merge(other)
}
