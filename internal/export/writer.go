// Package export renders a wrapped report in the formats the CLI offers.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"card-wrapped/internal/domain"
)

// Output format names accepted by New and NewEncoder.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
	FormatText = "text"
)

// ErrUnknownFormat is returned for a format name no writer handles.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer renders a whole report to w.
type Writer interface {
	Write(w io.Writer, report *domain.WrappedReport) error
}

// Encoder serialises arbitrary values, such as a bare transaction list.
type Encoder interface {
	Encode(w io.Writer, v interface{}) error
}

// Formats lists every name New accepts.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatXLSX, FormatText}
}

// New returns the report writer for format.
func New(format string) (Writer, error) {
	switch normalize(format) {
	case FormatJSON:
		return JSONWriter{}, nil
	case FormatYAML, "yml":
		return YAMLWriter{}, nil
	case FormatXLSX:
		return XLSXWriter{}, nil
	case FormatText:
		return TextWriter{}, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
}

// NewEncoder returns the value encoder for format. Only structured text
// formats have one.
func NewEncoder(format string) (Encoder, error) {
	switch normalize(format) {
	case FormatJSON:
		return JSONWriter{}, nil
	case FormatYAML, "yml":
		return YAMLWriter{}, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
