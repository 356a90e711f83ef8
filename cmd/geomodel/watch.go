package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geomodel/internal/workspace"
	"github.com/philipparndt/geomodel/pkg/analysis"
	"github.com/philipparndt/geomodel/pkg/watcher"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch [file...]",
	Short: "Print model statistics whenever a file changes",
	Long:  "Print the statistics of each file once, then again every time the file is saved, until interrupted.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "text", "Output format: text, yaml, json or toml")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	out := cmd.OutOrStdout()
	report := func(path string) {
		mu.Lock()
		defer mu.Unlock()

		ws := workspace.New(registry, logger)
		tag := ws.NewModel("")
		if err := ws.Import(path, tag); err != nil {
			// keep watching, the file may be saved again
			logger.Error("reload failed", "path", path, "error", err)
			return
		}
		info, err := ws.CurrentInfo()
		if err != nil {
			logger.Error("reload failed", "path", path, "error", err)
			return
		}
		fmt.Fprintf(out, "--- %s\n", path)
		if err := writeInfo(out, watchOutput, []analysis.ModelInfo{info}); err != nil {
			logger.Error("print failed", "error", err)
		}
	}

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(args, report); err != nil {
		return err
	}
	for _, path := range args {
		report(path)
	}

	logger.Info("watching", "files", len(args))
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
