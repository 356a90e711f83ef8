package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteOutput string

var deleteFaceCmd = &cobra.Command{
	Use:   "delete-face [file] [tag]",
	Short: "Remove a face by its tag",
	Long:  "Remove the face with the given tag. Tags are listed by the faces command; later faces move up by one.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDeleteFace,
}

var deleteLineCmd = &cobra.Command{
	Use:   "delete-line [file] [tag]",
	Short: "Remove a line by its tag",
	Long:  "Remove the line with the given tag. Tags are listed by the lines command; later lines move up by one.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDeleteLine,
}

func init() {
	rootCmd.AddCommand(deleteFaceCmd)
	rootCmd.AddCommand(deleteLineCmd)

	for _, c := range []*cobra.Command{deleteFaceCmd, deleteLineCmd} {
		c.Flags().StringVarP(&deleteOutput, "out", "o", "", "Write the result here instead of replacing the input file")
	}
}

func runDeleteFace(cmd *cobra.Command, args []string) error {
	tag, err := parseTag(args[1])
	if err != nil {
		return err
	}
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	if err := ws.DeleteFace(tag); err != nil {
		return err
	}
	if err := save(ws, args[0], deleteOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted face %d\n", tag)
	return nil
}

func runDeleteLine(cmd *cobra.Command, args []string) error {
	tag, err := parseTag(args[1])
	if err != nil {
		return err
	}
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	if err := ws.DeleteLine(tag); err != nil {
		return err
	}
	if err := save(ws, args[0], deleteOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted line %d\n", tag)
	return nil
}
