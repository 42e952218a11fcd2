package report

import (
	"sort"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/partition"
)

// Build lays out the output workbook: the global sheet first, then one
// sheet per partition in ascending (year, month) order.
func Build(res *partition.Result, layout Layout) []models.Sheet {
	sheets := make([]models.Sheet, 0, len(res.Partitions)+1)
	sheets = append(sheets, GlobalSheet(res, layout))
	for _, p := range res.Partitions {
		sheets = append(sheets, MonthlySheet(res.Columns, res.DateIndex, p, layout))
	}
	return sheets
}

// GlobalSheet holds every valid record in chronological order, without
// a totals row.
func GlobalSheet(res *partition.Result, layout Layout) models.Sheet {
	return models.Sheet{
		Name:     layout.GlobalSheet,
		Columns:  res.Columns,
		Rows:     res.Global,
		DataRows: len(res.Global),
	}
}

// MonthlySheet sorts the partition by the raw text of the date column
// and prefixes it with a totals row and one blank row.
func MonthlySheet(columns []string, dateIdx int, p partition.Partition, layout Layout) models.Sheet {
	records := make([]models.Record, len(p.Records))
	copy(records, p.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Get(dateIdx).String() < records[j].Get(dateIdx).String()
	})

	rows := make([]models.Record, 0, len(records)+2)
	rows = append(rows, TotalsRow(columns, records, layout))
	rows = append(rows, make(models.Record, len(columns)))
	rows = append(rows, records...)

	return models.Sheet{
		Name:      layout.SheetName(p.Key),
		Columns:   columns,
		Rows:      rows,
		HasTotals: true,
		DataRows:  len(records),
	}
}
