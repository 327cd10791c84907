package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "lpreport/internal/errors"
	"lpreport/pkg/contracts/domain"
)

// Column names shared by both extract variants.
const (
	colProgram     = "program_category"
	colChannel     = "default_channel"
	colPage        = "Landing_page"
	colSessions    = "Session"
	colConversions = "Conversions"
)

// ColumnSpec names the variant-specific difference columns of an extract.
type ColumnSpec struct {
	SessionsDiff    string
	ConversionsDiff string
	ConvRatePctDiff string
}

// MoMColumns describes the month-over-month extract.
var MoMColumns = ColumnSpec{
	SessionsDiff:    "sessions_mom_difference",
	ConversionsDiff: "conversions_mom_difference",
	ConvRatePctDiff: "conversion_rate_mom_percent_difference",
}

// YoYColumns describes the year-over-year extract.
var YoYColumns = ColumnSpec{
	SessionsDiff:    "sessions_yoy_difference",
	ConversionsDiff: "conversions_yoy_difference",
	ConvRatePctDiff: "conversion_rate_yoy_percent_difference",
}

// LoadTable reads a landing page extract into memory. The format is chosen
// by file extension: .xlsx/.xlsm via excelize, anything else as CSV. Column
// positions are mapped from the header row, so extracts survive column
// reordering in the dashboard export.
//
// The grouping columns and Session are required; a file without them fails
// with a PARSING error. Numeric columns that are absent or blank load as 0.
func LoadTable(path string, spec ColumnSpec) ([]domain.PageRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParseError("input has no header row", nil).WithContext("path", path)
	}

	columnMap := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columnMap[strings.TrimSpace(header)] = i
	}

	for _, col := range []string{colProgram, colChannel, colPage, colSessions} {
		if _, ok := columnMap[col]; !ok {
			return nil, apperrors.NewParseError(fmt.Sprintf("missing required column %q", col), nil).
				WithContext("path", path)
		}
	}

	cell := func(row []string, name string) string {
		if idx, ok := columnMap[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	records := make([]domain.PageRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := domain.PageRecord{
			Program:     cell(row, colProgram),
			Channel:     cell(row, colChannel),
			LandingPage: cell(row, colPage),
		}
		// Skip rows with no identity, e.g. trailing blank lines
		if rec.Program == "" && rec.Channel == "" && rec.LandingPage == "" {
			continue
		}

		rec.Sessions = parseFloat(cell(row, colSessions))
		rec.Conversions = parseFloat(cell(row, colConversions))
		rec.SessionsDiff = parseFloat(cell(row, spec.SessionsDiff))
		rec.ConversionsDiff = parseFloat(cell(row, spec.ConversionsDiff))
		rec.ConversionRatePctDiff = parseFloat(cell(row, spec.ConvRatePctDiff))

		records = append(records, rec)
	}

	return records, nil
}

// readRows reads the raw table rows of a CSV or Excel file.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewFileAccessError("failed to open input file", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Dashboard exports occasionally carry ragged rows; lengths are checked
	// against the header map during record building instead.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParseError("malformed CSV input", err).WithContext("path", path)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewFileAccessError("failed to open input file", err).WithContext("path", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParseError("malformed Excel input", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParseError("Excel input has no sheets", nil).WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParseError("failed to read Excel sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}
	return rows, nil
}

// parseFloat parses a numeric cell, tolerating thousands separators and
// blanks. Unparseable cells load as 0.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return v
}
