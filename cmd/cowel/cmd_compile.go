package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eisenwave/cowel-sub001/internal/bib"
	"github.com/eisenwave/cowel-sub001/internal/config"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/driver"
	"github.com/eisenwave/cowel-sub001/internal/highlight"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

var (
	compileOutputDir string
	compilePretty    bool
	compileUntrusted bool
	compileStdout    bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>...",
	Short: "Compile one or more COWEL documents to HTML",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileOutputDir, "output-dir", "o", "", "directory to write .html files to (default: config cli.output_dir)")
	compileCmd.Flags().BoolVar(&compilePretty, "pretty", false, "render diagnostics with color")
	compileCmd.Flags().BoolVar(&compileUntrusted, "untrusted", false, "sanitize output with bluemonday, for untrusted input documents")
	compileCmd.Flags().BoolVar(&compileStdout, "stdout", false, "write compiled output to stdout instead of a file")
}

// compileResult is one input file's outcome, collected so the fan-out
// over errgroup can report a single summary after every file settles.
type compileResult struct {
	path    string
	status  status.Status
	entries []diag.Diagnostic
	err     error
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if compileUntrusted {
		cfg.CLI.Untrusted = true
	}

	outDir := compileOutputDir
	if outDir == "" {
		outDir = cfg.CLI.OutputDir
	}
	if !compileStdout {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
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

	results := make([]compileResult, len(args))
	g := new(errgroup.Group)
	g.SetLimit(cfg.CLI.ConcurrentJobs)

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = compileOne(path, outDir, cfg, services)
			return nil
		})
	}
	_ = g.Wait() // compileOne never returns an error through g; failures live in compileResult

	return summarizeCompileResults(results)
}

func compileOne(path, outDir string, cfg *config.Config, services driver.Services) compileResult {
	cliLogger.Debug("compiling", zap.String("path", path))

	source, err := os.ReadFile(path)
	if err != nil {
		return compileResult{path: path, err: fmt.Errorf("read %q: %w", path, err)}
	}

	collector := diag.NewCollecting(diag.SeverityInfo)
	runServices := services
	runServices.Logger = collector

	html, st := driver.Compile(string(source), runServices)
	if cfg.CLI.Untrusted {
		html = sanitizeUntrusted(html)
	}

	if compileStdout {
		fmt.Println(html)
	} else {
		outPath := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".html")
		if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
			return compileResult{path: path, status: st, entries: collector.Entries, err: fmt.Errorf("write %q: %w", outPath, err)}
		}
	}

	return compileResult{path: path, status: st, entries: collector.Entries}
}

func summarizeCompileResults(results []compileResult) error {
	hasFailure := false
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			hasFailure = true
			continue
		}
		if len(r.entries) > 0 {
			if compilePretty {
				fmt.Fprint(os.Stderr, renderDiagnostics(r.entries))
			} else {
				for _, e := range r.entries {
					fmt.Fprintln(os.Stderr, e.String())
				}
			}
		}
		if r.status.IsError() {
			hasFailure = true
		}
	}
	if hasFailure {
		return fmt.Errorf("compilation failed for one or more files")
	}
	return nil
}
