// Package config provides configuration management for the pyloc application.
// It handles environment variables, command-line flags, and validation of all
// configuration parameters.
//
// # Configuration Loading
//
// To load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	PYLOC_EXTENSIONS     Comma-separated file extensions to include
//	PYLOC_USE_GITIGNORE  Exclude paths matched by the root .gitignore (true/false)
//	PYLOC_INSIGHTS       Show per-extension insights (true/false)
//	PYLOC_NO_PARALLEL    Disable the worker pool (true/false)
//	PYLOC_WORKERS        Number of concurrent workers (default: CPU cores)
//	PYLOC_RATE_LIMIT     Rate limit for file operations (0 for unlimited)
//	PYLOC_OUTPUT         Output format: summary|json|yaml
//	PYLOC_OUTPUT_FILE    Output file path (empty for stdout)
//	PYLOC_NO_PROGRESS    Disable progress reporting (true/false)
//	PYLOC_NO_COLOR       Disable colored output (true/false)
//	PYLOC_VERBOSE        Verbosity level (number of 'v's)
//
// # Example Usage
//
// Basic usage with default configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Using %d workers\n", cfg.Workers)
//
// Setting environment variables:
//
//	os.Setenv("PYLOC_WORKERS", "4")
//	os.Setenv("PYLOC_EXTENSIONS", "py,go,js")
//	os.Setenv("PYLOC_OUTPUT", "json")
//
//	cfg, err := config.Load()
//	// ...
//
// # Configuration Validation
//
// The package performs validation on all configuration values:
//   - Workers must be positive and not exceed CPU cores * 4
//   - Output format must be one of: summary, json, yaml
//   - RateLimit must be non-negative
//
// # Default Values
//
// The following defaults are applied if not specified:
//   - Workers:      Number of CPU cores
//   - Output:       "summary"
//   - RateLimit:    0 (unlimited)
//   - UseGitignore: false
//   - Insights:     false
//   - NoParallel:   false
//   - NoProgress:   false
//   - NoColor:      false
//   - Verbose:      0
//
// # Extension Filters
//
// The PYLOC_EXTENSIONS environment variable limits counting to the listed
// extensions. Entries may be given with or without the leading dot:
//
//	PYLOC_EXTENSIONS="py,go,.js"
//
// When the list is empty, every supported extension is counted.
//
// # Output Formats
//
// The package supports three output formats:
//
// Summary Format (default):
//
//	----- [PYLOC SUMMARY] ------
//	Duration:      0.12 s
//	Files:         42
//	Lines of code: 1200
//	Comments:      300
//	Blank lines:   150
//
// JSON Format:
//
//	{
//	  "code": 1200,
//	  "comment": 300,
//	  "blank": 150,
//	  "total": 1650,
//	  "files": 42,
//	  "extensions": [...]
//	}
//
// YAML Format:
//
//	code: 1200
//	comment: 300
//	blank: 150
//	total: 1650
//	files: 42
//	extensions: [...]
//
// # Error Handling
//
// The package returns detailed error messages for invalid configurations:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // Error messages are descriptive:
//	    // "workers count must be positive"
//	    // "invalid output format: must be one of [summary json yaml]"
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The configuration is immutable after loading and is safe for concurrent access
// across multiple goroutines.
//
// # Performance Considerations
//
// The package uses viper internally for configuration management, which provides
// efficient environment variable parsing and type conversion. Configuration
// loading is designed to be performed once at application startup.
//
// # See Also
//
// Related Packages:
//   - "github.com/marcoimbee/pyloc/pkg/logger"   - Logging package
//   - "github.com/marcoimbee/pyloc/pkg/counter"  - Line counting
//   - "github.com/marcoimbee/pyloc/pkg/worker"   - Worker pool implementation
package config
