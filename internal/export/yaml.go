package export

import (
	"fmt"
	"io"

	"card-wrapped/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLWriter prints a YAML document with two-space indentation.
type YAMLWriter struct{}

func (y YAMLWriter) Write(w io.Writer, report *domain.WrappedReport) error {
	return y.Encode(w, report)
}

func (YAMLWriter) Encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to generate YAML report: %w", err)
	}
	return enc.Close()
}
