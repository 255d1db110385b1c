package output

import (
	"encoding/json"
	"time"

	"github.com/marcoimbee/pyloc/pkg/counter"
	"github.com/marcoimbee/pyloc/pkg/logger"
)

// jsonReport is the wire shape shared by the JSON and YAML formatters.
type jsonReport struct {
	Code         int                                  `json:"code" yaml:"code"`
	Comment      int                                  `json:"comment" yaml:"comment"`
	Blank        int                                  `json:"blank" yaml:"blank"`
	Total        int                                  `json:"total" yaml:"total"`
	Files        int                                  `json:"files" yaml:"files"`
	SkippedFiles int                                  `json:"skippedFiles" yaml:"skippedFiles"`
	Skipped      map[string]string                    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Extensions   []*counter.ExtensionSummary          `json:"extensions" yaml:"extensions"`
	DurationSecs float64                              `json:"durationSeconds" yaml:"durationSeconds"`
	Generated    time.Time                            `json:"generated" yaml:"generated"`
}

func (f *formatter) convertReport(report *counter.Report) *jsonReport {
	out := &jsonReport{
		Code:         report.Code,
		Comment:      report.Comment,
		Blank:        report.Blank,
		Total:        report.Total,
		Files:        report.Files,
		SkippedFiles: report.SkippedFiles,
		Extensions:   sortedSummaries(report),
		DurationSecs: report.Duration.Seconds(),
		Generated:    time.Now(),
	}

	if len(report.Errors) > 0 {
		out.Skipped = make(map[string]string, len(report.Errors))
		for path, err := range report.Errors {
			out.Skipped[path] = err.Error()
		}
	}

	return out
}

func (f *formatter) formatJSON(report *counter.Report) (string, error) {
	f.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(f.convertReport(report), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
