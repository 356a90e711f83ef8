package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/pkg/viewer"
)

var (
	renderOutput    string
	renderWidth     int
	renderHeight    int
	renderElevation float64
	renderAzimuth   float64
	renderNoCaption bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a model to a PNG image",
	Long:  "Draw the faces and lines of a model with flat shading and save the picture as PNG.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "PNG file to write (default: input name with .png)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Image width in pixels (default from config)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Image height in pixels (default from config)")
	renderCmd.Flags().Float64Var(&renderElevation, "elevation", 30, "Camera elevation in degrees")
	renderCmd.Flags().Float64Var(&renderAzimuth, "azimuth", 45, "Camera azimuth in degrees")
	renderCmd.Flags().BoolVar(&renderNoCaption, "no-caption", false, "Do not print the model name into the image")
}

func runRender(cmd *cobra.Command, args []string) error {
	ws, err := open(args[0])
	if err != nil {
		return err
	}
	m, err := ws.CurrentModel()
	if err != nil {
		return err
	}

	opts := viewer.DefaultOptions()
	opts.Width = cfg.Render.Width
	opts.Height = cfg.Render.Height
	if renderWidth > 0 {
		opts.Width = renderWidth
	}
	if renderHeight > 0 {
		opts.Height = renderHeight
	}
	opts.RotationX = renderElevation * math.Pi / 180
	opts.RotationY = renderAzimuth * math.Pi / 180
	opts.Caption = !renderNoCaption

	out := renderOutput
	if out == "" {
		out = pngName(args[0])
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := viewer.WritePNG(file, m, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	logger.Info("snapshot written", "path", out, "width", opts.Width, "height", opts.Height)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return nil
}
