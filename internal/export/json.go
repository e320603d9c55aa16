package export

import (
	"encoding/json"
	"fmt"
	"io"

	"card-wrapped/internal/domain"
)

// JSONWriter prints indented JSON.
type JSONWriter struct{}

func (j JSONWriter) Write(w io.Writer, report *domain.WrappedReport) error {
	return j.Encode(w, report)
}

func (JSONWriter) Encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	return nil
}
