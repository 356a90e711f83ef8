package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var changeOutput string

var changePointCmd = &cobra.Command{
	Use:   "change-point [file] face|line [tag] [point] x y z",
	Short: "Move one point of a face or line",
	Long: `Move point number [point] (0-based) of the face or line with the given tag
to x y z. The move fails when the point is already part of the element or when
the moved element would duplicate another one.`,
	Args:      cobra.ExactArgs(7),
	ValidArgs: []string{"face", "line"},
	RunE:      runChangePoint,
}

func init() {
	rootCmd.AddCommand(changePointCmd)

	changePointCmd.Flags().StringVarP(&changeOutput, "out", "o", "", "Write the result here instead of replacing the input file")
}

func runChangePoint(cmd *cobra.Command, args []string) error {
	kind := args[1]
	tag, err := parseTag(args[2])
	if err != nil {
		return err
	}
	pointTag, err := parseTag(args[3])
	if err != nil {
		return err
	}
	points, err := parsePoints(args[4:])
	if err != nil {
		return err
	}
	p := points[0]

	ws, err := open(args[0])
	if err != nil {
		return err
	}

	switch kind {
	case "face":
		err = ws.ChangeFacePoint(tag, pointTag, p)
	case "line":
		err = ws.ChangeLinePoint(tag, pointTag, p)
	default:
		return fmt.Errorf("unknown element %q, use face or line", kind)
	}
	if err != nil {
		return err
	}

	if err := save(ws, args[0], changeOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved point %d of %s %d to %s\n", pointTag, kind, tag, p)
	return nil
}
