/*
Package commands implements the CLI command structure for pyloc. It provides
the root command that runs a counting operation over a directory tree, plus
the version subcommand, with proper flag handling and environment overrides.
*/
package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/marcoimbee/pyloc/cmd/pyloc/app"
	"github.com/marcoimbee/pyloc/internal/config"
)

// rootFlags holds the command-line flags of the root command
type rootFlags struct {
	extensions   []string
	useGitignore bool
	insights     bool
	noParallel   bool
	workers      int
	rateLimit    int
	outputFormat string
	outputFile   string
	noProgress   bool
	noColor      bool
	verbosity    int
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pyloc [flags] <path>",
		Short: "Count lines of code in a directory tree",
		Long: `pyloc counts physical lines of code in a directory tree and classifies
every line of every supported file as code, comment, or blank.

It walks the tree recursively, skips binary files, optionally honors the
.gitignore at the scan root, and reports totals per run and per extension
in summary, JSON, or YAML format.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runCount(cmd, flags, path)
		},
	}

	rootCmd.Flags().StringSliceVarP(&flags.extensions, "extensions", "e", nil,
		"limit counting to these file extensions (e.g. py,go,js)")
	rootCmd.Flags().BoolVarP(&flags.useGitignore, "use-gitignore", "g", false,
		"exclude paths matched by the .gitignore at the scan root")
	rootCmd.Flags().BoolVarP(&flags.insights, "insights", "i", false,
		"show per-extension insights with the longest file")
	rootCmd.Flags().BoolVar(&flags.noParallel, "no-parallel", false,
		"count files sequentially instead of using the worker pool")
	rootCmd.Flags().IntVarP(&flags.workers, "workers", "w", runtime.NumCPU(),
		"number of concurrent workers")
	rootCmd.Flags().IntVarP(&flags.rateLimit, "rate-limit", "r", 0,
		"rate limit for file operations (ops/sec, 0 for unlimited)")
	rootCmd.Flags().StringVarP(&flags.outputFormat, "output", "o", "summary",
		"output format: summary|json|yaml")
	rootCmd.Flags().StringVarP(&flags.outputFile, "output-file", "f", "",
		"write the report to a file instead of stdout")
	rootCmd.Flags().BoolVar(&flags.noProgress, "no-progress", false,
		"disable progress reporting")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false,
		"disable colored output")
	rootCmd.Flags().CountVarP(&flags.verbosity, "verbose", "v",
		"verbose output (can be used multiple times)")

	rootCmd.AddCommand(
		newVersionCommand(),
	)

	return rootCmd
}

// runCount loads the configuration, applies flag overrides and executes the
// counting run.
func runCount(cmd *cobra.Command, flags *rootFlags, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Command-line flags take precedence over environment variables.
	if cmd.Flags().Changed("extensions") {
		cfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("use-gitignore") {
		cfg.UseGitignore = flags.useGitignore
	}
	if cmd.Flags().Changed("insights") {
		cfg.Insights = flags.insights
	}
	if cmd.Flags().Changed("no-parallel") {
		cfg.NoParallel = flags.noParallel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.workers
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = flags.rateLimit
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.outputFormat
	}
	if cmd.Flags().Changed("output-file") {
		cfg.OutputFile = flags.outputFile
	}
	if cmd.Flags().Changed("no-progress") {
		cfg.NoProgress = flags.noProgress
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = flags.noColor
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flags.verbosity
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	application := app.New(&cfg)
	defer application.Shutdown()

	return application.Run(path)
}
