package report

import (
	"math"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/parser"
	"github.com/shopspring/decimal"
)

// TotalsRow builds the synthetic first row of a monthly sheet: the record
// count in the count column, the sum of each numeric column, and empty
// cells elsewhere. A numeric column with no parseable value stays empty.
func TotalsRow(columns []string, records []models.Record, layout Layout) models.Record {
	row := make(models.Record, len(columns))
	for i, col := range columns {
		switch {
		case col == layout.CountColumn:
			row[i] = models.Number(float64(len(records)))
		case layout.IsNumeric(col):
			if total, ok := sumColumn(records, i); ok {
				row[i] = models.Number(total)
			}
		}
	}
	return row
}

// sumColumn adds the normalized values of column idx. ok is false when no
// value parsed or the total is not finite. Finite values are summed exactly.
func sumColumn(records []models.Record, idx int) (float64, bool) {
	sum := decimal.Zero
	found := false
	for _, rec := range records {
		f := parser.NormalizeNumber(rec.Get(idx))
		if math.IsNaN(f) {
			continue
		}
		if math.IsInf(f, 0) {
			return 0, false
		}
		found = true
		sum = sum.Add(decimal.NewFromFloat(f))
	}
	if !found {
		return 0, false
	}
	total := sum.InexactFloat64()
	if math.IsInf(total, 0) {
		return 0, false
	}
	return total, true
}
