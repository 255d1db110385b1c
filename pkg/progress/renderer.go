package progress

import (
	"fmt"
	"strings"
)

type renderer interface {
	render(Status, string, Statistics) string
}

type spinnerRenderer struct {
	noColor   bool
	showStats bool
	frame     int
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (r *spinnerRenderer) render(status Status, message string, stats Statistics) string {
	r.frame = (r.frame + 1) % len(spinnerFrames)
	spinner := spinnerFrames[r.frame]

	if !r.noColor {
		spinner = fmt.Sprintf("\033[36m%s\033[0m", spinner)
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("\r%s %s", spinner, message))
	output.WriteString(fmt.Sprintf(" | %d files, %d lines", status.FilesCounted, status.LinesCounted))

	if status.CurrentPath != "" {
		output.WriteString(fmt.Sprintf(" | %s", status.CurrentPath))
	}

	if r.showStats {
		output.WriteString(fmt.Sprintf(" | %.1f files/s", stats.FilesPerSecond))
	}

	return output.String()
}

type simpleRenderer struct {
	noColor   bool
	showStats bool
}

func (r *simpleRenderer) render(status Status, message string, stats Statistics) string {
	if !r.noColor {
		switch {
		case strings.Contains(message, "Error"):
			message = fmt.Sprintf("\033[31m%s\033[0m", message)
		case strings.Contains(message, "Complete"):
			message = fmt.Sprintf("\033[32m%s\033[0m", message)
		}
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("\r%s (%d/%d files)", message, status.FilesCounted, status.FilesFound))

	if r.showStats {
		output.WriteString(fmt.Sprintf(" | %d lines | %.1f lines/s",
			status.LinesCounted,
			stats.LinesPerSecond))
	}

	return output.String()
}
