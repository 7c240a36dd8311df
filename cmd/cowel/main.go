// Package main implements the cowel CLI.
//
// # File Index
//
//   - main.go        - entry point, rootCmd, global flags, init()
//   - cmd_compile.go - compileCmd, runCompile(), output composition
//   - cmd_watch.go   - watchCmd, runWatch()
//   - cmd_bib.go     - bibCmd and its add/list/remove subcommands
//   - cmd_version.go - versionCmd
//   - fileloader.go  - rootedFileLoader, the cowel_include filesystem backend
//   - sanitize.go    - untrusted-input HTML sanitization pass
//   - render.go      - pretty diagnostic rendering
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eisenwave/cowel-sub001/internal/logging"
)

var (
	// Global flags.
	verbose    bool
	configPath string
	workspace  string

	// cliLogger is the zap logger for CLI-operational messages
	// (flag parsing, file I/O, timing) -- distinct from the compiler
	// core's diag.Logger, which carries per-directive diagnostics.
	cliLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cowel",
	Short: "cowel - the Compact Web Language compiler",
	Long: `cowel compiles COWEL markup documents to HTML.

Run "cowel compile <file>..." to produce output, "cowel watch <file>"
to recompile on save, or "cowel bib" to manage the citation store
backing make_bib.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		cliLogger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ws := workspace
		if ws == "" {
			ws, _ = os.Getwd()
		}
		if err := logging.Initialize(ws); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to initialize file logging: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cliLogger != nil {
			_ = cliLogger.Sync()
		}
		logging.CloseAll()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".cowel/config.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory (default: current directory)")

	rootCmd.AddCommand(compileCmd, watchCmd, bibCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
