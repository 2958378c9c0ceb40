// Package cli provides the command-line interface for attribute-analyzer.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"attribute-analyzer/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries the state shared by all commands of one invocation.
type app struct {
	// Global flags
	configPath string
	logLevel   string
	logFile    string
	verbose    bool

	cfg     config.Config
	logger  *slog.Logger
	cleanup func() error

	lookupEnv func(string) (string, bool)
}

func newApp(lookupEnv func(string) (string, bool)) *app {
	return &app{lookupEnv: lookupEnv}
}

// rootCmd builds the command tree.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "attribute-analyzer",
		Short: "Find near-duplicate attribute labels",
		Long: `Attribute Analyzer scans a column of attribute labels (product attributes,
field names, column headers) for near-duplicates: casing and punctuation
variants, spacing drift and small spelling differences.

Matches are grouped under the first label they were found with, listed on the
console and exported to an Excel workbook for human review.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for version and help commands
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}

			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (env "+config.EnvConfig+")")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "also write JSON logs to this file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newDiffCmd(a),
		newNormalizeCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the config file, applies environment and flag overrides and
// creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path, _ = a.lookupEnv(config.EnvConfig)
	}

	a.cfg = config.Default()

	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}

		a.cfg = *loaded
	}

	config.ApplyEnv(&a.cfg, a.lookupEnv)

	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	if a.verbose {
		a.cfg.Log.Level = "debug"
	}

	if a.logFile != "" {
		a.cfg.Log.File = a.logFile
	}

	level, err := config.ParseLogLevel(a.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.logger, a.cleanup, err = config.NewLogger(cmd.ErrOrStderr(), a.cfg.Log.File, level)
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded", "config", path, "threshold", a.cfg.Threshold, "scorer", a.cfg.Scorer)

	return nil
}

// close releases the log file opened by setup. It is safe to call more than once.
func (a *app) close() error {
	if a.cleanup == nil {
		return nil
	}

	err := a.cleanup()
	a.cleanup = nil

	return err
}

// Execute runs the root command and prints any error to stderr.
// It returns the process exit code. Cancelling ctx stops a running analysis.
func Execute(ctx context.Context) int {
	return run(ctx, newApp(os.LookupEnv), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, a *app, args []string, stdout, stderr io.Writer) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	// The command may have failed after setup opened the log file.
	if closeErr := a.close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close log file: %w", closeErr)
	}

	if err != nil {
		fmt.Fprintln(stderr, newTheme(stderr).errorStyle("Error: "+describe(err)))

		return 1
	}

	return 0
}
