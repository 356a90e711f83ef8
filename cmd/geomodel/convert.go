package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertName string

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Rewrite a model in the format given by the output suffix",
	Long: `Read a model and write it again. The format of each file is chosen by its
suffix, so this converts between .obj and .obj.gz and normalizes point order
and number formatting.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertName, "name", "", "Rename the model")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	if convertName != "" {
		m, err := ws.CurrentModel()
		if err != nil {
			return err
		}
		m.Name = convertName
	}
	if err := ws.Export(args[1], ws.Current()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[1])
	return nil
}
