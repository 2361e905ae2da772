// Package report assembles the result of a lookup and renders it.
//
// Assemble is a pure function that combines the outputs of every stage into
// a model.Report. Writers render that report:
//   - MarkdownWriter: the default Markdown report
//   - SimpleWriter: plain text for terminals and logs
//   - JSONWriter: structured JSON for tool integration
//
// All writers render the same sections in the same order: header, local
// metadata, NumVerify, identity lookup and links. Apart from the timestamp
// the output depends only on the report contents.
package report
