// Package exporter renders the merged landing page summary into the grouped
// Markdown report file.
//
// MarkdownWriter applies the low-traffic filter, re-derives the canonical
// program/channel ordering, and writes one section per program with one
// subsection per channel, each page as a bullet line with signed session and
// conversion deltas.
//
// Example usage:
//
//	writer := exporter.NewMarkdownWriter(logger, 20)
//	err := writer.Write(ctx, "data/reports/landing_pages.md", summary)
package exporter
