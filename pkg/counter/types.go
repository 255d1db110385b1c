package counter

import (
	"time"
)

// Config contains counter configuration options
type Config struct {
	// Extensions limits counting to the listed extensions. Empty means every
	// extension the language rule table knows about. Extensions that the
	// table does not know fall back to counting every non-blank line as code.
	Extensions []string

	// IgnoreLines are the raw lines of the root ignore file. Nil or empty
	// disables ignore matching entirely.
	IgnoreLines []string

	// Insights enables tracking of the longest file per extension.
	Insights bool

	// Parallel selects the worker-pool execution mode.
	Parallel bool

	// Workers is the worker pool size used when Parallel is set.
	Workers int

	// RateLimit caps file operations per second (0 for unlimited).
	RateLimit int
}

// Counts holds the line classification of a single file.
type Counts struct {
	Code    int `json:"code" yaml:"code"`
	Comment int `json:"comment" yaml:"comment"`
	Blank   int `json:"blank" yaml:"blank"`
	Total   int `json:"total" yaml:"total"`
}

// FileResult is the classification outcome for one file. It is immutable
// after creation and owned by the worker that produced it until folded.
type FileResult struct {
	// Path is the file path relative to the scan root.
	Path string

	// Ext is the normalized extension the file was counted under.
	Ext string

	// Seq is the traversal sequence number assigned by the walker. It breaks
	// longest-file ties deterministically even when results arrive out of
	// order from the pool.
	Seq int

	Counts
}

// ExtensionSummary accumulates counts across all files of one extension.
type ExtensionSummary struct {
	Ext     string `json:"extension" yaml:"extension"`
	Code    int    `json:"code" yaml:"code"`
	Comment int    `json:"comment" yaml:"comment"`
	Blank   int    `json:"blank" yaml:"blank"`
	Total   int    `json:"total" yaml:"total"`
	Files   int    `json:"files" yaml:"files"`

	// LongestFile tracking, populated only in insights mode.
	LongestFile string `json:"longestFile,omitempty" yaml:"longestFile,omitempty"`
	LongestCode int    `json:"longestFileCode,omitempty" yaml:"longestFileCode,omitempty"`

	longestSeq int
	hasLongest bool
}

// Report is the final result of a counting run.
type Report struct {
	// Grand totals across all extensions.
	Code    int `json:"code" yaml:"code"`
	Comment int `json:"comment" yaml:"comment"`
	Blank   int `json:"blank" yaml:"blank"`
	Total   int `json:"total" yaml:"total"`

	// Files is the number of files that were classified successfully.
	Files int `json:"files" yaml:"files"`

	// Extensions maps a normalized extension to its summary.
	Extensions map[string]*ExtensionSummary `json:"extensions" yaml:"extensions"`

	// SkippedFiles counts files that could not be read or decoded. Skipped
	// files never contribute to any summary.
	SkippedFiles int `json:"skippedFiles" yaml:"skippedFiles"`

	// Errors records the per-path reason for every skipped file.
	Errors map[string]error `json:"-" yaml:"-"`

	// Insights mirrors the configuration flag the run was made with.
	Insights bool `json:"insights" yaml:"insights"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// fileOutcome carries one walked file through the worker pool.
type fileOutcome struct {
	result  FileResult
	path    string
	skipErr error
}
