package output

import (
	"gopkg.in/yaml.v3"

	"github.com/marcoimbee/pyloc/pkg/counter"
	"github.com/marcoimbee/pyloc/pkg/logger"
)

func (f *formatter) formatYAML(report *counter.Report) (string, error) {
	f.log.Debug("Formatting YAML output")

	// Reuse the JSON wire shape for YAML output
	bytes, err := yaml.Marshal(f.convertReport(report))
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
