package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eisenwave/cowel-sub001/internal/bib"
	"github.com/eisenwave/cowel-sub001/internal/config"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/driver"
	"github.com/eisenwave/cowel-sub001/internal/highlight"
	"github.com/eisenwave/cowel-sub001/internal/watch"
)

var watchOutputDir string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Recompile a COWEL document every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "directory to write the .html file to (default: config cli.output_dir)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outDir := watchOutputDir
	if outDir == "" {
		outDir = cfg.CLI.OutputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	bibStore, err := bib.Open(cfg.Bibliography.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open bibliography store: %w", err)
	}
	defer bibStore.Close()

	services := driver.Services{
		Highlighter:  highlight.NewChromaHighlighter(),
		FileLoader:   newRootedFileLoader(cfg),
		Bibliography: bibStore,
	}
	outPath := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".html")

	recompile := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return
		}
		collector := diag.NewCollecting(diag.SeverityInfo)
		runServices := services
		runServices.Logger = collector

		html, _ := driver.Compile(string(source), runServices)
		if cfg.CLI.Untrusted {
			html = sanitizeUntrusted(html)
		}
		if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, err)
			return
		}
		for _, e := range collector.Entries {
			fmt.Fprintln(os.Stderr, e.String())
		}
		fmt.Printf("compiled %s -> %s\n", path, outPath)
	}

	recompile()

	w, err := watch.New(path, cfg.WatchDebounceDuration(), recompile)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch %q: %w", path, err)
	}
	fmt.Printf("watching %s, press Ctrl+C to stop\n", path)

	<-ctx.Done()
	w.Stop()
	return nil
}
