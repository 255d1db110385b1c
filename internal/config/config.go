/*
Package config provides configuration management for the pyloc application.
It handles both environment variables and validation of all configuration
parameters.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Environment Variables:

	PYLOC_EXTENSIONS       Comma-separated file extensions to include
	PYLOC_USE_GITIGNORE    Exclude paths matched by the root .gitignore
	PYLOC_INSIGHTS         Show per-extension insights
	PYLOC_NO_PARALLEL      Disable the worker pool
	PYLOC_WORKERS          Number of concurrent workers
	PYLOC_RATE_LIMIT       Rate limit for file operations
	PYLOC_OUTPUT           Output format: summary|json|yaml
	PYLOC_OUTPUT_FILE      Output file path
	PYLOC_NO_PROGRESS      Disable progress reporting
	PYLOC_NO_COLOR         Disable colored output
	PYLOC_VERBOSE          Verbosity level (number of 'v's)

Default Values:

	Workers:     Number of CPU cores
	Output:      "summary"
	Parallel:    enabled
*/
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Extensions limits counting to the listed extensions (empty = all supported)
	Extensions []string

	// UseGitignore excludes paths matched by the root .gitignore file
	UseGitignore bool

	// Insights enables the per-extension breakdown with longest files
	Insights bool

	// NoParallel disables the worker pool; parallel is the default mode
	NoParallel bool

	// Workers is the worker pool size for parallel counting
	Workers int

	// RateLimit is the maximum number of file operations per second (0 for unlimited)
	RateLimit int

	// Output specifies the output format (summary, json, or yaml)
	Output string

	// OutputFile is the path to write the report to (empty for stdout)
	OutputFile string

	// NoProgress disables progress reporting
	NoProgress bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// validOutputFormats contains the list of supported output formats
var validOutputFormats = map[string]bool{
	"summary": true,
	"json":    true,
	"yaml":    true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("output", "summary")
	v.SetDefault("rate_limit", 0)
	v.SetDefault("use_gitignore", false)
	v.SetDefault("insights", false)
	v.SetDefault("no_parallel", false)
	v.SetDefault("no_progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("PYLOC")
	v.AutomaticEnv()

	v.BindEnv("extensions")
	v.BindEnv("use_gitignore")
	v.BindEnv("insights")
	v.BindEnv("no_parallel")
	v.BindEnv("workers")
	v.BindEnv("rate_limit")
	v.BindEnv("output")
	v.BindEnv("output_file")
	v.BindEnv("no_progress")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Process verbosity level from a string of 'v's
	if verboseStr := v.GetString("verbose"); strings.Contains(verboseStr, "v") {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		UseGitignore: v.GetBool("use_gitignore"),
		Insights:     v.GetBool("insights"),
		NoParallel:   v.GetBool("no_parallel"),
		Workers:      v.GetInt("workers"),
		RateLimit:    v.GetInt("rate_limit"),
		Output:       v.GetString("output"),
		OutputFile:   v.GetString("output_file"),
		NoProgress:   v.GetBool("no_progress"),
		NoColor:      v.GetBool("no_color"),
		Verbose:      v.GetInt("verbose"),
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	// Process extension list
	if extStr := v.GetString("extensions"); extStr != "" {
		parts := strings.Split(extStr, ",")
		cfg.Extensions = make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.Extensions = append(cfg.Extensions, trimmed)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers count must be positive")
	}
	maxWorkers := runtime.NumCPU() * MaxWorkerMultiplier
	if c.Workers > maxWorkers {
		return fmt.Errorf("workers count cannot exceed system CPU count * %d", MaxWorkerMultiplier)
	}

	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [summary json yaml]")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Extensions: %v, UseGitignore: %v, Insights: %v, NoParallel: %v, "+
			"Workers: %d, RateLimit: %d, Output: %s, OutputFile: %s, "+
			"NoProgress: %v, NoColor: %v, Verbose: %d}",
		c.Extensions, c.UseGitignore, c.Insights, c.NoParallel,
		c.Workers, c.RateLimit, c.Output, c.OutputFile,
		c.NoProgress, c.NoColor, c.Verbose,
	)
}
