package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/internal/config"
	"github.com/philipparndt/geomodel/internal/logging"
	"github.com/philipparndt/geomodel/internal/workspace"
	"github.com/philipparndt/geomodel/pkg/codec"
	"github.com/philipparndt/geomodel/version"
)

var (
	configFile string
	verbosity  int
	quiet      bool

	cfg      *config.Config
	logger   *slog.Logger
	registry *codec.Registry
)

var rootCmd = &cobra.Command{
	Use:   "geomodel",
	Short: "Inspect and edit triangle and line models stored as OBJ files",
	Long: `geomodel reads models made of triangular faces and line segments,
reports their statistics and edits them. Models are read from and written to
OBJ files (.obj) or gzip compressed OBJ files (.obj.gz).`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: geomodel.yaml in . or ~/.config/geomodel)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log output (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
}

// setup loads the configuration and builds the logger and codec registry
// shared by every command
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configFile, config.SearchPaths()...)
	if err != nil {
		return err
	}

	level := logging.LevelFromString(cfg.Log.Level)
	flags := cmd.Flags()
	if flags.Changed("verbose") || flags.Changed("quiet") {
		level = logging.LevelFromVerbosity(verbosity, quiet)
	}
	logger = logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	registry = codec.NewDefaultRegistry(logger, codec.OBJOptions{
		Precision: cfg.Export.Precision,
		OmitNotes: !cfg.Export.Notes,
	})
	return nil
}

// open imports path into a fresh workspace and returns it with the model
// selected
func open(path string) (*workspace.Workspace, error) {
	ws := workspace.New(registry, logger)
	tag := ws.NewModel("")
	if err := ws.Import(path, tag); err != nil {
		return nil, err
	}
	return ws, nil
}

// save writes the current model to out, or back to in when out is empty
func save(ws *workspace.Workspace, in, out string) error {
	if out == "" {
		out = in
	}
	return ws.Export(out, ws.Current())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
