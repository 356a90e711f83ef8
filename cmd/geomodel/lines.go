package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/pkg/analysis"
)

var (
	linesCount   int
	linesLongest bool
)

var linesCmd = &cobra.Command{
	Use:   "lines [file]",
	Short: "List the lines of a model",
	Long:  "Display the tag, endpoints and length of every line. Tags are the ones accepted by delete-line and change-point.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLines,
}

func init() {
	rootCmd.AddCommand(linesCmd)

	linesCmd.Flags().IntVarP(&linesCount, "count", "n", -1, "Number of lines to display (-1 for all)")
	linesCmd.Flags().BoolVarP(&linesLongest, "longest", "l", false, "Sort by length, longest first")
}

func runLines(cmd *cobra.Command, args []string) error {
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	m, err := ws.CurrentModel()
	if err != nil {
		return err
	}

	var lines []analysis.LineInfo
	if linesLongest {
		lines = analysis.LongestLines(m, linesCount)
	} else {
		lines, err = ws.Lines()
		if err != nil {
			return err
		}
		if linesCount >= 0 && linesCount < len(lines) {
			lines = lines[:linesCount]
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lines of %s (%d of %d)\n\n", m.Name, len(lines), m.LineCount())
	fmt.Fprintf(out, "%-5s %-16s %s\n", "Tag", "Length", "Endpoints")
	for _, l := range lines {
		fmt.Fprintf(out, "%-5d %-16.6f %s -> %s\n",
			l.Tag, l.Length,
			formatPointInfo(l.Points[0]),
			formatPointInfo(l.Points[1]))
	}
	return nil
}
