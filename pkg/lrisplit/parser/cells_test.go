package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExtractDataset(t *testing.T) {
	// Two rows of mixed cell types on the first sheet.
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Réservation")
	f.SetCellValue(sheetName, "B1", "Arrivée")
	f.SetCellValue(sheetName, "C1", "Taxe")
	f.SetCellValue(sheetName, "A2", "R-1")
	f.SetCellValue(sheetName, "B2", "02/01/2024")
	f.SetCellValue(sheetName, "C2", 12.5)
	f.SetCellValue(sheetName, "A3", "R-2")
	f.SetCellValue(sheetName, "B3", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	f.SetCellValue(sheetName, "C3", "1 234,56")

	// A second sheet must be ignored.
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	f.SetCellValue("Other", "A1", "ignored")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	ds, name, err := ExtractDataset(f2)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", name)
	assert.Equal(t, []string{"Réservation", "Arrivée", "Taxe"}, ds.Columns)
	require.Len(t, ds.Records, 2)

	assert.Equal(t, models.Str("R-1"), ds.Records[0][0])
	assert.Equal(t, models.Str("02/01/2024"), ds.Records[0][1])
	assert.Equal(t, models.Number(12.5), ds.Records[0][2])

	arrival, ok := ds.Records[1][1].Time()
	require.True(t, ok, "date-formatted cell should load as a date, got %v", ds.Records[1][1])
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), arrival)
	assert.Equal(t, models.Str("1 234,56"), ds.Records[1][2])
}

func TestExtractDatasetShortRowsAndBlanks(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Arrivée")
	f.SetCellValue(sheetName, "B1", "Taxe")
	f.SetCellValue(sheetName, "A2", "05/01/2024")
	// Row 3 is blank, row 4 only has a value in column A.
	f.SetCellValue(sheetName, "A4", "06/01/2024")

	tmpFile := filepath.Join(t.TempDir(), "short.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	ds, _, err := ExtractDataset(f2)
	require.NoError(t, err)

	require.Len(t, ds.Records, 3)
	for _, rec := range ds.Records {
		assert.Len(t, rec, 2)
		assert.True(t, rec[1].IsEmpty())
	}
	assert.True(t, ds.Records[1][0].IsEmpty())
}

func TestExtractDatasetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, _, err := ExtractDataset(f)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		numCols  int
		expected []string
	}{
		{
			name:     "plain",
			row:      []string{"A", "B"},
			numCols:  2,
			expected: []string{"A", "B"},
		},
		{
			name:     "blank and missing headers",
			row:      []string{"A", ""},
			numCols:  3,
			expected: []string{"A", "Unnamed: 1", "Unnamed: 2"},
		},
		{
			name:     "duplicates",
			row:      []string{"Taxe", "Taxe", "Taxe"},
			numCols:  3,
			expected: []string{"Taxe", "Taxe.1", "Taxe.2"},
		},
		{
			name:     "decomposed accent",
			row:      []string{"Arrive\u0301e"},
			numCols:  1,
			expected: []string{"Arrivée"},
		},
		{
			name:     "trailing space kept",
			row:      []string{"Commission du canal "},
			numCols:  1,
			expected: []string{"Commission du canal "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, headerNames(tt.row, tt.numCols))
		})
	}
}

func TestIsDateFormat(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		numFmt   int
		custom   *string
		expected bool
	}{
		{0, nil, false},
		{2, nil, false},
		{14, nil, true},
		{22, nil, true},
		{49, nil, false},
		{0, custom("dd/mm/yyyy"), true},
		{0, custom("0.00"), false},
		{0, custom("[Red]#,##0"), false},
		{0, custom(`"day"0`), false},
		{0, custom("hh:mm"), false},
	}

	for _, tt := range tests {
		result := isDateFormat(tt.numFmt, tt.custom)
		if result != tt.expected {
			t.Errorf("isDateFormat(%d, %v) = %v, expected %v", tt.numFmt, tt.custom, result, tt.expected)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{"A", "B", ""},
		{"1", "", "", ""},
		{"", "", "x"},
		{"", " "},
		{},
	}

	numRows, numCols := findDataBounds(rows)
	assert.Equal(t, 3, numRows)
	assert.Equal(t, 3, numCols)

	numRows, numCols = findDataBounds(nil)
	assert.Zero(t, numRows)
	assert.Zero(t, numCols)
}
