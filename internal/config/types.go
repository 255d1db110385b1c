package config

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	// OutputFormatSummary represents the human-readable summary format
	OutputFormatSummary OutputFormat = "summary"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"
)

// Constants for configuration limits
const (
	// MaxWorkerMultiplier is the maximum multiple of CPU cores for worker count
	MaxWorkerMultiplier = 4
)
