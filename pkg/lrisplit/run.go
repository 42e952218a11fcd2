package lrisplit

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/parser"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/partition"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/report"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/writer"
	"github.com/xuri/excelize/v2"
)

// MonthCount is the number of records landing on one monthly sheet.
type MonthCount struct {
	Key   models.PartitionKey
	Sheet string
	Count int
}

// Result describes a planned or completed run.
type Result struct {
	// Workbook holds the sheets in output order.
	Workbook *models.WorkbookData
	// Months lists the monthly sheets in output order.
	Months []MonthCount
	// Total is the number of source records.
	Total int
	// Dropped is the number of records without a valid date.
	Dropped int
	// Output is the path written, empty for a plan.
	Output string
}

// Load reads the first sheet of the workbook at path and checks that the
// date column is present.
func Load(path string, opts Options) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewStageError("load", path, ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewStageError("load", path, err)
	}
	defer f.Close()

	ds, sheetName, err := parser.ExtractDataset(f)
	if err != nil {
		if errors.Is(err, parser.ErrNoSheets) || errors.Is(err, parser.ErrNoHeader) {
			err = errors.Join(ErrEmptyWorkbook, err)
		}
		return nil, NewStageError("load", path, err)
	}

	if ds.ColumnIndex(opts.DateColumn) < 0 {
		return nil, &SchemaError{Column: opts.DateColumn, Available: ds.Columns}
	}

	opts.logger().Debug("Dataset loaded",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("records", ds.Len()))

	return ds, nil
}

// Build partitions ds and lays out the output sheets.
func Build(ds *models.Dataset, opts Options) (*Result, error) {
	parts, err := partition.Split(ds, opts.DateColumn)
	if err != nil {
		return nil, &SchemaError{Column: opts.DateColumn, Available: ds.Columns}
	}

	layout := opts.Layout()
	sheets := report.Build(parts, layout)

	res := &Result{
		Workbook: &models.WorkbookData{Sheets: sheets},
		Total:    ds.Len(),
		Dropped:  parts.Dropped,
	}
	for i, p := range parts.Partitions {
		res.Months = append(res.Months, MonthCount{
			Key:   p.Key,
			Sheet: sheets[i+1].Name,
			Count: len(p.Records),
		})
	}

	if parts.Dropped > 0 {
		opts.logger().Info("Records without a valid date skipped",
			slog.String("column", opts.DateColumn),
			slog.Int("dropped", parts.Dropped))
	}

	return res, nil
}

// Plan loads and partitions the workbook without writing anything.
func Plan(path string, opts Options) (*Result, error) {
	ds, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	res, err := Build(ds, opts)
	if err != nil {
		return nil, err
	}
	res.Workbook.BookName = filepath.Base(path)
	return res, nil
}

// Run rewrites the workbook at path as the global sheet followed by the
// monthly sheets. The new workbook is built in memory and committed with
// a single rename, so any failure before the commit leaves the input
// untouched.
func Run(path string, opts Options) (*Result, error) {
	res, err := Plan(path, opts)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == "" {
		out = path
	}

	layout := opts.Layout()
	f, err := writer.Render(res.Workbook.Sheets, layout.IsNumeric)
	if err != nil {
		return nil, NewStageError("render", out, err)
	}
	defer f.Close()

	if err := writer.Commit(f, out); err != nil {
		return nil, NewStageError("write", out, err)
	}

	res.Output = out
	opts.logger().Info("Workbook written",
		slog.String("path", out),
		slog.Int("sheets", len(res.Workbook.Sheets)))

	return res, nil
}
