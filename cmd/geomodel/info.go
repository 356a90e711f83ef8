package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/geomodel/internal/workspace"
	"github.com/philipparndt/geomodel/pkg/analysis"
)

var infoOutput string

var infoCmd = &cobra.Command{
	Use:   "info [file...]",
	Short: "Display statistics of one or more models",
	Long:  "Show name, notes, element counts, line length and face area sums and the bounding cuboid of each model.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", "text", "Output format: text, yaml, json or toml")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ws := workspace.New(registry, logger)
	for _, path := range args {
		tag := ws.NewModel("")
		if err := ws.Import(path, tag); err != nil {
			return err
		}
	}
	return writeInfo(cmd.OutOrStdout(), infoOutput, ws.Models())
}

// infoReport wraps the summaries so every format has a named root
type infoReport struct {
	Models []analysis.ModelInfo `json:"models" yaml:"models" toml:"models"`
}

func writeInfo(w io.Writer, format string, infos []analysis.ModelInfo) error {
	report := infoReport{Models: infos}

	switch strings.ToLower(format) {
	case "text", "":
		for i, info := range infos {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeInfoText(w, info)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(report)
	default:
		return fmt.Errorf("unknown output format %q, use text, yaml, json or toml", format)
	}
}

func writeInfoText(w io.Writer, info analysis.ModelInfo) {
	fmt.Fprintf(w, "Model: %s\n", info.Name)
	fmt.Fprintln(w, strings.Repeat("=", len(info.Name)+7))
	for _, note := range info.Notes {
		fmt.Fprintf(w, "# %s\n", note)
	}
	if len(info.Notes) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Elements:")
	fmt.Fprintf(w, "  Faces: %d\n", info.FaceCount)
	fmt.Fprintf(w, "  Lines: %d\n", info.LineCount)
	fmt.Fprintf(w, "  Points: %d\n", info.PointCount)
	fmt.Fprintf(w, "  Total: %d\n\n", info.ElementCount)

	fmt.Fprintln(w, "Measurements:")
	fmt.Fprintf(w, "  Face area sum: %s\n", analysis.FormatMeasurement(info.FaceAreaSum, "square units"))
	fmt.Fprintf(w, "  Line length sum: %s\n\n", analysis.FormatMeasurement(info.LineLengthSum, "units"))

	fmt.Fprintln(w, "Cuboid:")
	fmt.Fprintf(w, "  Length (X): %s\n", analysis.FormatMeasurement(info.Cuboid.Length, "units"))
	fmt.Fprintf(w, "  Width (Y): %s\n", analysis.FormatMeasurement(info.Cuboid.Width, "units"))
	fmt.Fprintf(w, "  Height (Z): %s\n", analysis.FormatMeasurement(info.Cuboid.Height, "units"))
	fmt.Fprintf(w, "  Area: %s\n", analysis.FormatMeasurement(info.Cuboid.Area, "square units"))
	fmt.Fprintf(w, "  Volume: %s\n", analysis.FormatMeasurement(info.Cuboid.Volume, "cubic units"))
}
