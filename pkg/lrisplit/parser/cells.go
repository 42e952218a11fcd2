package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ExtractDataset reads the first sheet of f into a Dataset. The first row
// is the header; every following row becomes a Record aligned with it.
// Cell values are kept as found: no coercion beyond the cell's own type.
func ExtractDataset(f *excelize.File) (*models.Dataset, string, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, "", ErrNoSheets
	}
	sheetName := sheetList[0]

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheetName, err
	}

	numRows, numCols := findDataBounds(rows)
	if numRows == 0 {
		return nil, sheetName, ErrNoHeader
	}

	cr := &cellReader{f: f, sheet: sheetName, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		cr.date1904 = *props.Date1904
	}

	ds := &models.Dataset{
		Columns: headerNames(rows[0], numCols),
		Records: make([]models.Record, 0, numRows-1),
	}

	for rowIdx := 1; rowIdx < numRows; rowIdx++ {
		row := rows[rowIdx]
		rec := make(models.Record, numCols)
		for colIdx := 0; colIdx < numCols && colIdx < len(row); colIdx++ {
			if row[colIdx] == "" {
				continue
			}
			v, err := cr.value(colIdx+1, rowIdx+1, row[colIdx])
			if err != nil {
				return nil, sheetName, err
			}
			rec[colIdx] = v
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, sheetName, nil
}

// headerNames builds unique, NFC-normalized column names from the header
// row. Blank headers become "Unnamed: <index>" and repeats get ".N"
// suffixes.
func headerNames(row []string, numCols int) []string {
	names := make([]string, numCols)
	seen := make(map[string]int)
	for i := 0; i < numCols; i++ {
		name := ""
		if i < len(row) {
			name = norm.NFC.String(row[i])
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for seen[name] > 0 {
			name = fmt.Sprintf("%s.%d", base, seen[base])
			seen[base]++
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// cellReader classifies raw cell text using the cell's type and style.
type cellReader struct {
	f          *excelize.File
	sheet      string
	dateStyles map[int]bool
	date1904   bool
}

func (c *cellReader) value(col, row int, raw string) (models.Value, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Value{}, err
	}
	cellType, err := c.f.GetCellType(c.sheet, cellName)
	if err != nil {
		return models.Value{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeBool, excelize.CellTypeError:
		return models.Str(raw), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return models.Time(t), nil
		}
		return models.Str(raw), nil
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Str(raw), nil
	}
	isDate, err := c.isDateStyled(cellName)
	if err != nil {
		return models.Value{}, err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(num, c.date1904); err == nil {
			return models.Time(t), nil
		}
	}
	return models.Number(num), nil
}

// isDateStyled reports whether the cell's number format renders a date.
func (c *cellReader) isDateStyled(cellName string) (bool, error) {
	styleID, err := c.f.GetCellStyle(c.sheet, cellName)
	if err != nil {
		return false, err
	}
	if styleID == 0 {
		return false, nil
	}
	if isDate, ok := c.dateStyles[styleID]; ok {
		return isDate, nil
	}
	style, err := c.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := isDateFormat(style.NumFmt, style.CustomNumFmt)
	c.dateStyles[styleID] = isDate
	return isDate, nil
}

// isDateFormat reports whether a built-in number format id or a custom
// format code displays a calendar date.
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case numFmt >= 14 && numFmt <= 17, numFmt == 22:
		return true
	case numFmt >= 27 && numFmt <= 36, numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

// isDateFormatCode looks for day or year tokens outside
// of quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case r == 'd', r == 'y':
			return true
		}
	}
	return false
}
