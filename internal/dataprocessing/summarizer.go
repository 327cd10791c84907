package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	"lpreport/pkg/contracts/domain"
)

// Summarizer merges the ranked MoM and YoY tables into the summary table the
// report is rendered from.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Merge performs a full outer join of the MoM and YoY tables on
// (program, channel, page). Pages present on only one side keep zero values
// for the other side's metrics, so every numeric field of the result is
// always populated. The result carries the canonical program/channel
// ordering.
func (s *Summarizer) Merge(ctx context.Context, mom, yoy []domain.PageRecord) []domain.SummaryRow {
	s.logger.InfoContext(ctx, "merging MoM and YoY tables",
		slog.Int("mom_rows", len(mom)),
		slog.Int("yoy_rows", len(yoy)))

	index := make(map[domain.PageKey]int, len(mom))
	rows := make([]domain.SummaryRow, 0, len(mom)+len(yoy))

	for _, rec := range mom {
		key := rec.Key()
		if _, exists := index[key]; exists {
			// Ranked input never repeats a page within a group; a duplicate
			// means the same page appears twice in the extract. Last one wins,
			// matching a keyed overwrite.
			rows[index[key]] = momSide(rec, rows[index[key]])
			continue
		}
		index[key] = len(rows)
		rows = append(rows, momSide(rec, domain.SummaryRow{
			Program:     rec.Program,
			Channel:     rec.Channel,
			LandingPage: rec.LandingPage,
		}))
	}

	for _, rec := range yoy {
		key := rec.Key()
		if i, exists := index[key]; exists {
			rows[i] = yoySide(rec, rows[i])
			continue
		}
		index[key] = len(rows)
		rows = append(rows, yoySide(rec, domain.SummaryRow{
			Program:     rec.Program,
			Channel:     rec.Channel,
			LandingPage: rec.LandingPage,
		}))
	}

	sorted := SortCanonical(rows)

	s.logger.InfoContext(ctx, "summary table built",
		slog.Int("summary_rows", len(sorted)),
		slog.Int("dropped_unknown_programs", len(rows)-len(sorted)))

	return sorted
}

// momSide fills the month-over-month metrics of a summary row.
func momSide(rec domain.PageRecord, row domain.SummaryRow) domain.SummaryRow {
	row.SessionsMoM = rec.Sessions
	row.ConversionsMoM = rec.Conversions
	row.SessionsMoMDiff = rec.SessionsDiff
	row.ConversionsMoMDiff = rec.ConversionsDiff
	row.ConvRateMoMPctDiff = rec.ConversionRatePctDiff
	return row
}

// yoySide fills the year-over-year metrics of a summary row.
func yoySide(rec domain.PageRecord, row domain.SummaryRow) domain.SummaryRow {
	row.SessionsYoY = rec.Sessions
	row.ConversionsYoY = rec.Conversions
	row.SessionsYoYDiff = rec.SessionsDiff
	row.ConversionsYoYDiff = rec.ConversionsDiff
	row.ConvRateYoYPctDiff = rec.ConversionRatePctDiff
	return row
}

// SortCanonical orders summary rows by the official program sequence, then
// by channel alphabetically. Rows whose program is outside the official
// enumeration have no rank and are dropped. The ordering is re-derived on
// every call; it is deterministic and total for the rows that survive.
func SortCanonical(rows []domain.SummaryRow) []domain.SummaryRow {
	ranked := make([]domain.SummaryRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := domain.ProgramRank(row.Program); ok {
			ranked = append(ranked, row)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, _ := domain.ProgramRank(ranked[i].Program)
		rj, _ := domain.ProgramRank(ranked[j].Program)
		if ri != rj {
			return ri < rj
		}
		return ranked[i].Channel < ranked[j].Channel
	})

	return ranked
}
