package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/phoneosint/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs plain text reports for terminal display.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in plain text.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	w.writeSection(&sb, TitleLocal)
	w.writeFields(&sb, localFields(report))

	w.writeSection(&sb, TitleRemote)
	switch {
	case report.RemoteSkipped():
		sb.WriteString("  " + SkippedText + "\n")
	case report.Remote.Failed():
		sb.WriteString("  Error: " + report.Remote.Error + "\n")
	default:
		w.writeFields(&sb, remoteFields(report.Remote))
	}

	w.writeSection(&sb, TitleIdentity)
	if report.IdentitySkipped() {
		sb.WriteString("  " + SkippedText + "\n")
	} else {
		w.writeFields(&sb, identityFields(report.Identity))
	}

	w.writeSection(&sb, TitleLinks)
	for _, l := range report.Links {
		fmt.Fprintf(&sb, "  %-15s %s\n", l.Name+":", l.URL)
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	title := strings.ToUpper(TitleReport)
	sb.WriteString(strings.Repeat(" ", (ruleWidth-len(title))/2) + title + "\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Input:     %s\n", report.Input)
	fmt.Fprintf(sb, "Generated: %s\n", FormatTimestamp(report.GeneratedAt))
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFields(sb *strings.Builder, fields []field) {
	for _, f := range fields {
		fmt.Fprintf(sb, "  %-22s %s\n", f.label+":", f.value)
	}
}
