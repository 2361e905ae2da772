package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/nao1215/phoneosint/internal/model"
)

// MarkdownWriter outputs reports in Markdown format using nao1215/markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeLocal(md, report)
	w.writeRemote(md, report)
	w.writeIdentity(md, report)
	w.writeLinks(md, report)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1(TitleReport)
	md.BulletList(
		"**Input:** `"+report.Input+"`",
		"**Generated:** "+FormatTimestamp(report.GeneratedAt),
	)
	md.PlainText("")
}

func (w *MarkdownWriter) writeLocal(md *markdown.Markdown, report *model.Report) {
	md.H2(TitleLocal)
	md.BulletList(fieldItems(localFields(report))...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeRemote(md *markdown.Markdown, report *model.Report) {
	md.H2(TitleRemote)
	switch {
	case report.RemoteSkipped():
		md.PlainText(SkippedText)
	case report.Remote.Failed():
		md.BulletList("Error: " + report.Remote.Error)
	default:
		md.BulletList(fieldItems(remoteFields(report.Remote))...)
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeIdentity(md *markdown.Markdown, report *model.Report) {
	md.H2(TitleIdentity)
	if report.IdentitySkipped() {
		md.PlainText(SkippedText)
	} else {
		md.BulletList(fieldItems(identityFields(report.Identity))...)
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeLinks(md *markdown.Markdown, report *model.Report) {
	md.H2(TitleLinks)
	items := make([]string, len(report.Links))
	for i, l := range report.Links {
		items[i] = "[" + l.Name + "](" + l.URL + ")"
	}
	md.BulletList(items...)
}

// fieldItems formats fields as bold-labelled list items.
func fieldItems(fields []field) []string {
	items := make([]string, len(fields))
	for i, f := range fields {
		items[i] = "**" + f.label + ":** " + f.value
	}
	return items
}
