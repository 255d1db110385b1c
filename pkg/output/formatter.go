/*
Package output provides formatters for count reports in various formats
including a plain text summary, JSON, and YAML. It supports colored output
and an insights breakdown per extension.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatSummary,
		WithColors: true,
	}, log)

	text, err := formatter.Format(report)
*/
package output

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marcoimbee/pyloc/pkg/counter"
	"github.com/marcoimbee/pyloc/pkg/logger"
)

// Format represents the output format type
type Format string

const (
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Config holds formatter configuration
type Config struct {
	Format     Format
	WithColors bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(*counter.Report) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the report according to the configured format
func (f *formatter) Format(report *counter.Report) (string, error) {
	if report == nil {
		msg := "nil report provided for formatting"
		f.log.Error(msg)
		return "", errors.New(msg)
	}

	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"withColors": f.config.WithColors,
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatSummary:
		return f.formatSummary(report)
	case FormatJSON:
		return f.formatJSON(report)
	case FormatYAML:
		return f.formatYAML(report)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", errors.New(msg)
	}
}

// sortedSummaries returns extension summaries ordered by descending code
// count, with the extension name as a stable secondary key.
func sortedSummaries(report *counter.Report) []*counter.ExtensionSummary {
	summaries := make([]*counter.ExtensionSummary, 0, len(report.Extensions))
	for _, summary := range report.Extensions {
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Code != summaries[j].Code {
			return summaries[i].Code > summaries[j].Code
		}
		return summaries[i].Ext < summaries[j].Ext
	})

	return summaries
}
