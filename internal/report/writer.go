package report

import (
	"io"

	"github.com/nao1215/phoneosint/internal/model"
)

// Writer renders a report to its destination.
type Writer interface {
	// Write outputs the report and returns the number of bytes written.
	Write(report *model.Report) (int, error)
}

// Format selects a Writer implementation.
type Format int

const (
	// FormatMarkdown renders Markdown. It is the default.
	FormatMarkdown Format = iota
	// FormatText renders plain text.
	FormatText
	// FormatJSON renders indented JSON.
	FormatJSON
)

// NewWriter returns the Writer for format. version is embedded in JSON output.
func NewWriter(output io.Writer, format Format, version string) Writer {
	switch format {
	case FormatText:
		return NewSimpleWriter(output)
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version))
	default:
		return NewMarkdownWriter(output)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
