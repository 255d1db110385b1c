package progress

import "time"

// Style represents the type of progress visualization
type Style string

const (
	// StyleSpinner shows a spinning indicator with live counters
	StyleSpinner Style = "spinner"

	// StyleSimple shows basic text progress
	StyleSimple Style = "simple"
)

// Config holds the configuration for progress visualization
type Config struct {
	// Style defines how progress should be displayed
	Style Style

	// ShowStats enables/disables additional statistics
	ShowStats bool

	// NoColor disables colored output
	NoColor bool

	// RefreshRate defines how often the display updates
	RefreshRate time.Duration

	// HideAfterComplete removes the progress line after completion
	HideAfterComplete bool
}

// Status represents the current progress of a counting run
type Status struct {
	// FilesFound is the number of eligible files discovered by the walker
	FilesFound int64

	// FilesCounted is the number of files classified so far
	FilesCounted int64

	// LinesCounted is the number of physical lines classified so far
	LinesCounted int64

	// CurrentPath is the path currently being processed
	CurrentPath string

	// StartTime of the operation
	StartTime time.Time
}

// Statistics provides derived progress information
type Statistics struct {
	ElapsedTime    time.Duration
	FilesPerSecond float64
	LinesPerSecond float64
}

// Progress defines the interface for progress visualization
type Progress interface {
	// Start begins progress visualization with an initial message
	Start(message string)

	// Update updates the progress status
	Update(status Status)

	// Complete marks the operation as successfully completed
	Complete(message string)

	// Error marks the operation as failed
	Error(message string)

	// Stop stops progress visualization
	Stop()

	// IsSupportedTerminal checks if the terminal supports advanced features
	IsSupportedTerminal() bool
}
