// Package writer renders sheets into an xlsx workbook and commits it to disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/xuri/excelize/v2"
)

// twoDecimals is the built-in "0.00" number format.
const twoDecimals = 2

const dateFormat = "dd/mm/yyyy"

// styles holds the style ids shared by every sheet of a workbook.
type styles struct {
	number     int
	bold       int
	boldNumber int
	date       int
	boldDate   int
}

func newStyles(f *excelize.File) (*styles, error) {
	var s styles
	var err error
	dateFmt := dateFormat
	if s.number, err = f.NewStyle(&excelize.Style{NumFmt: twoDecimals}); err != nil {
		return nil, err
	}
	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, err
	}
	if s.boldNumber, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: twoDecimals,
	}); err != nil {
		return nil, err
	}
	if s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err != nil {
		return nil, err
	}
	if s.boldDate, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &dateFmt,
	}); err != nil {
		return nil, err
	}
	return &s, nil
}

// Render builds an in-memory workbook holding sheets in order. On a sheet
// flagged HasTotals, columns listed as numeric get the "0.00" format and
// the first data row is rendered bold. Other sheets keep the default
// number format.
func Render(sheets []models.Sheet, isNumeric func(string) bool) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to render")
	}

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(f, st, sheet, isNumeric); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

func writeSheet(f *excelize.File, st *styles, sheet models.Sheet, isNumeric func(string) bool) error {
	numeric := make([]bool, len(sheet.Columns))
	for colIdx, name := range sheet.Columns {
		numeric[colIdx] = sheet.HasTotals && isNumeric(name)
		if !numeric[colIdx] {
			continue
		}
		colName, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColStyle(sheet.Name, colName, st.number); err != nil {
			return err
		}
	}

	header := make([]interface{}, len(sheet.Columns))
	for i, name := range sheet.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	if sheet.HasTotals {
		if err := f.SetRowStyle(sheet.Name, 2, 2, st.bold); err != nil {
			return err
		}
	}

	for rowIdx, rec := range sheet.Rows {
		rowNum := rowIdx + 2
		bold := sheet.HasTotals && rowIdx == 0
		for colIdx := range sheet.Columns {
			v := rec.Get(colIdx)
			if v.IsEmpty() {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, cellName, v.Interface()); err != nil {
				return err
			}
			if styleID := st.cellStyle(v.Kind(), numeric[colIdx], bold); styleID != 0 {
				if err := f.SetCellStyle(sheet.Name, cellName, cellName, styleID); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// cellStyle picks the style of a written cell, or 0 for the default.
func (s *styles) cellStyle(kind models.Kind, numeric, bold bool) int {
	switch {
	case kind == models.KindTime && bold:
		return s.boldDate
	case kind == models.KindTime:
		return s.date
	case numeric && bold:
		return s.boldNumber
	case numeric:
		return s.number
	case bold:
		return s.bold
	}
	return 0
}

// Commit writes f to path by saving to a temporary file in the same
// directory and renaming it over the destination.
func Commit(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lrisplit-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}
	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmpName, info.Mode().Perm())
	} else {
		os.Chmod(tmpName, 0644)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	committed = true
	return nil
}
