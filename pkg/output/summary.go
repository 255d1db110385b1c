package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/marcoimbee/pyloc/pkg/counter"
)

// formatSummary renders the human-readable summary. With insights enabled on
// the report it appends the per-extension breakdown sorted by descending
// code count, each line carrying the extension's longest file.
func (f *formatter) formatSummary(report *counter.Report) (string, error) {
	f.log.Debug("Formatting summary output")

	header := func(s string) string { return s }
	accent := func(s string) string { return s }
	if f.config.WithColors {
		headerColor := color.New(color.FgCyan, color.Bold)
		accentColor := color.New(color.FgGreen)
		header = func(s string) string { return headerColor.Sprint(s) }
		accent = func(s string) string { return accentColor.Sprint(s) }
	}

	var builder strings.Builder

	builder.WriteString(header("----- [PYLOC SUMMARY] ------"))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Duration:      %.2f s\n", report.Duration.Seconds()))
	builder.WriteString(fmt.Sprintf("Files:         %d\n", report.Files))
	builder.WriteString(fmt.Sprintf("Lines of code: %s\n", accent(fmt.Sprintf("%d", report.Code))))
	builder.WriteString(fmt.Sprintf("Comments:      %d\n", report.Comment))
	builder.WriteString(fmt.Sprintf("Blank lines:   %d\n", report.Blank))

	if report.SkippedFiles > 0 {
		builder.WriteString(fmt.Sprintf("Skipped files: %d\n", report.SkippedFiles))
	}

	if report.Insights {
		builder.WriteString("\n")
		builder.WriteString(header("--- [LOCs per file type] ---"))
		builder.WriteString("\n")

		for _, summary := range sortedSummaries(report) {
			line := fmt.Sprintf(".%s:\t%d LOCs", summary.Ext, summary.Code)
			if summary.LongestFile != "" {
				line += fmt.Sprintf("\tLongest file: %s (%d LOCs)", summary.LongestFile, summary.LongestCode)
			}
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}
