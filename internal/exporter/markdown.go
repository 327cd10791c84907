package exporter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"lpreport/internal/dataprocessing"
	apperrors "lpreport/internal/errors"
	"lpreport/pkg/contracts/domain"
)

// MarkdownWriter renders summary tables as grouped Markdown reports.
type MarkdownWriter struct {
	logger      *slog.Logger
	minSessions float64
}

// NewMarkdownWriter creates a Markdown report writer. Rows with MoM sessions
// at or below minSessions are excluded from the report.
func NewMarkdownWriter(logger *slog.Logger, minSessions float64) *MarkdownWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &MarkdownWriter{logger: logger, minSessions: minSessions}
}

// Write renders the summary table to path. Programs appear in the official
// order, channels within a program in the order they occur in the sorted
// data, pages within a channel by descending MoM sessions. The report is
// written incrementally; on a mid-write failure the partial file is left in
// place.
func (w *MarkdownWriter) Write(ctx context.Context, path string, rows []domain.SummaryRow) error {
	kept := make([]domain.SummaryRow, 0, len(rows))
	for _, row := range rows {
		if row.SessionsMoM > w.minSessions {
			kept = append(kept, row)
		}
	}
	kept = dataprocessing.SortCanonical(kept)

	w.logger.InfoContext(ctx, "writing landing page report",
		slog.String("path", path),
		slog.Int("rows", len(kept)),
		slog.Int("dropped_low_traffic", len(rows)-len(kept)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewFileAccessError("failed to create report directory", err).WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewFileAccessError("failed to create report file", err).WithContext("path", path)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	for _, program := range domain.ProgramOrder() {
		programRows := rowsForProgram(kept, program)
		if len(programRows) == 0 {
			continue
		}

		fmt.Fprintf(buf, "## **%s**\n\n", domain.ProgramDisplayName(program))
		fmt.Fprintf(buf, "### **Landing Page Report**\n\n")

		for _, channel := range channelOrder(programRows) {
			channelRows := rowsForChannel(programRows, channel)
			sort.SliceStable(channelRows, func(i, j int) bool {
				return channelRows[i].SessionsMoM > channelRows[j].SessionsMoM
			})

			fmt.Fprintf(buf, "#### **%s**\n\n", channel)
			for _, row := range channelRows {
				buf.WriteString(bulletLine(row))
			}
			buf.WriteString("\n")
		}

		buf.WriteString("\n")
	}

	if err := buf.Flush(); err != nil {
		return apperrors.NewFileAccessError("failed to write report file", err).WithContext("path", path)
	}
	if err := file.Close(); err != nil {
		return apperrors.NewFileAccessError("failed to close report file", err).WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "landing page report written", slog.String("path", path))

	return nil
}

// bulletLine formats one page row. Conversion details are shown only for
// pages with current conversions.
func bulletLine(row domain.SummaryRow) string {
	line := fmt.Sprintf("* \"%s\": %s sessions (YoY: %s | MoM: %s)",
		row.LandingPage,
		formatCount(row.SessionsMoM),
		formatSigned(row.SessionsYoYDiff),
		formatSigned(row.SessionsMoMDiff))

	if row.ConversionsMoM > 0 {
		// Both baselines subtract from current MoM conversions; the YoY side
		// carries no independent current value in the extract.
		prevConvMoM := row.ConversionsMoM - row.ConversionsMoMDiff
		prevConvYoY := row.ConversionsMoM - row.ConversionsYoYDiff

		line += fmt.Sprintf(" Conversions: %s (YoY: %s, %s%% | MoM: %s, %s%%)",
			formatCount(row.ConversionsMoM),
			formatSigned(row.ConversionsYoYDiff),
			formatSigned(percentChange(row.ConversionsYoYDiff, prevConvYoY)),
			formatSigned(row.ConversionsMoMDiff),
			formatSigned(percentChange(row.ConversionsMoMDiff, prevConvMoM)))
	}

	return line + "\n"
}

// rowsForProgram returns the rows belonging to one program.
func rowsForProgram(rows []domain.SummaryRow, program string) []domain.SummaryRow {
	out := make([]domain.SummaryRow, 0)
	for _, row := range rows {
		if row.Program == program {
			out = append(out, row)
		}
	}
	return out
}

// rowsForChannel returns the rows belonging to one channel.
func rowsForChannel(rows []domain.SummaryRow, channel string) []domain.SummaryRow {
	out := make([]domain.SummaryRow, 0)
	for _, row := range rows {
		if row.Channel == channel {
			out = append(out, row)
		}
	}
	return out
}

// channelOrder returns the distinct channels in first-appearance order.
func channelOrder(rows []domain.SummaryRow) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, row := range rows {
		if _, ok := seen[row.Channel]; !ok {
			seen[row.Channel] = struct{}{}
			order = append(order, row.Channel)
		}
	}
	return order
}
