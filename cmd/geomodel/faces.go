package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/pkg/analysis"
	"github.com/philipparndt/geomodel/pkg/geometry"
)

var (
	facesCount   int
	facesLargest bool
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "List the faces of a model",
	Long:  "Display the tag, vertices, area and perimeter of every face. Tags are the ones accepted by delete-face and change-point.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&facesCount, "count", "n", -1, "Number of faces to display (-1 for all)")
	facesCmd.Flags().BoolVarP(&facesLargest, "largest", "l", false, "Sort by area, largest first")
}

func runFaces(cmd *cobra.Command, args []string) error {
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	m, err := ws.CurrentModel()
	if err != nil {
		return err
	}

	var faces []analysis.FaceInfo
	if facesLargest {
		faces = analysis.LargestFaces(m, facesCount)
	} else {
		faces, err = ws.Faces()
		if err != nil {
			return err
		}
		if facesCount >= 0 && facesCount < len(faces) {
			faces = faces[:facesCount]
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Faces of %s (%d of %d)\n\n", m.Name, len(faces), m.FaceCount())
	fmt.Fprintf(out, "%-5s %-16s %-16s %s\n", "Tag", "Area", "Perimeter", "Vertices")
	for _, f := range faces {
		fmt.Fprintf(out, "%-5d %-16.6f %-16.6f %s, %s, %s\n",
			f.Tag, f.Area, f.Perimeter,
			formatPointInfo(f.Points[0]),
			formatPointInfo(f.Points[1]),
			formatPointInfo(f.Points[2]))
	}
	return nil
}

func formatPointInfo(p analysis.PointInfo) string {
	return analysis.FormatPoint(geometry.NewPoint(p.X, p.Y, p.Z))
}
