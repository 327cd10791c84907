package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "lpreport/internal/errors"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTable_CSV(t *testing.T) {
	path := writeCSV(t, "mom.csv",
		"program_category,default_channel,Landing_page,Session,Conversions,sessions_mom_difference,conversions_mom_difference,conversion_rate_mom_percent_difference\n"+
			"Informatics,Organic Search,/home,50,10,5,2,0.4\n"+
			"CyberOps,Paid Search,/apply,\"1,200\",30,-12,-1,-0.1\n")

	records, err := LoadTable(path, MoMColumns)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Informatics", records[0].Program)
	assert.Equal(t, "Organic Search", records[0].Channel)
	assert.Equal(t, "/home", records[0].LandingPage)
	assert.Equal(t, 50.0, records[0].Sessions)
	assert.Equal(t, 10.0, records[0].Conversions)
	assert.Equal(t, 5.0, records[0].SessionsDiff)
	assert.Equal(t, 2.0, records[0].ConversionsDiff)
	assert.Equal(t, 0.4, records[0].ConversionRatePctDiff)

	// Thousands separators are tolerated
	assert.Equal(t, 1200.0, records[1].Sessions)
	assert.Equal(t, -12.0, records[1].SessionsDiff)
}

func TestLoadTable_YoYColumns(t *testing.T) {
	path := writeCSV(t, "yoy.csv",
		"program_category,default_channel,Landing_page,Session,Conversions,sessions_yoy_difference,conversions_yoy_difference,conversion_rate_yoy_percent_difference\n"+
			"MED,Paid Social,/teaching,90,4,-3,-1,-0.2\n")

	records, err := LoadTable(path, YoYColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, -3.0, records[0].SessionsDiff)
	assert.Equal(t, -1.0, records[0].ConversionsDiff)
	assert.Equal(t, -0.2, records[0].ConversionRatePctDiff)
}

func TestLoadTable_ColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, "reordered.csv",
		"Session,Landing_page,program_category,default_channel\n"+
			"75,/home,Informatics,Organic Search\n")

	records, err := LoadTable(path, MoMColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 75.0, records[0].Sessions)
	assert.Equal(t, "/home", records[0].LandingPage)
}

func TestLoadTable_OptionalColumnsDefaultZero(t *testing.T) {
	path := writeCSV(t, "minimal.csv",
		"program_category,default_channel,Landing_page,Session\n"+
			"Informatics,Organic Search,/home,42\n")

	records, err := LoadTable(path, MoMColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Conversions)
	assert.Equal(t, 0.0, records[0].SessionsDiff)
	assert.Equal(t, 0.0, records[0].ConversionsDiff)
	assert.Equal(t, 0.0, records[0].ConversionRatePctDiff)
}

func TestLoadTable_SkipsBlankRows(t *testing.T) {
	path := writeCSV(t, "blank.csv",
		"program_category,default_channel,Landing_page,Session\n"+
			"Informatics,Organic Search,/home,42\n"+
			",,,\n")

	records, err := LoadTable(path, MoMColumns)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv"), MoMColumns)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFileAccess))
}

func TestLoadTable_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "nosession.csv",
		"program_category,default_channel,Landing_page\n"+
			"Informatics,Organic Search,/home\n")

	_, err := LoadTable(path, MoMColumns)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "Session")
}

func TestLoadTable_EmptyFile(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")

	_, err := LoadTable(path, MoMColumns)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoadTable_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mom.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"program_category", "default_channel", "Landing_page", "Session", "Conversions", "sessions_mom_difference", "conversions_mom_difference", "conversion_rate_mom_percent_difference"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	values := []interface{}{"Informatics", "Organic Search", "/home", 50, 10, 5, 2, 0.4}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := LoadTable(path, MoMColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Informatics", records[0].Program)
	assert.Equal(t, 50.0, records[0].Sessions)
	assert.Equal(t, 2.0, records[0].ConversionsDiff)
}

func TestLoadTable_ExcelMissing(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.xlsx"), MoMColumns)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFileAccess))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"42", 42},
		{"-3.5", -3.5},
		{"1,234", 1234},
		{"1,234,567.5", 1234567.5},
		{"n/a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFloat(tt.in))
		})
	}
}
