// Package report turns partitions into the sheets of the output workbook.
package report

import (
	"fmt"
	"strconv"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
)

// Layout is the fixed naming and column configuration of the report.
type Layout struct {
	// GlobalSheet names the sheet holding every valid record.
	GlobalSheet string
	// CountColumn receives the record count in a totals row.
	CountColumn string
	// NumericColumns are summed in totals rows and formatted "0.00".
	NumericColumns []string
	// MonthNames maps month 1..12 to its display name.
	MonthNames [12]string
}

// IsNumeric reports whether the column is in the numeric list.
func (l Layout) IsNumeric(column string) bool {
	for _, c := range l.NumericColumns {
		if c == column {
			return true
		}
	}
	return false
}

// SheetName returns "<MonthName> <YY>" for key. Months outside 1..12
// fall back to "M<MM>".
func (l Layout) SheetName(key models.PartitionKey) string {
	name := fmt.Sprintf("M%02d", key.Month)
	if key.Month >= 1 && key.Month <= 12 && l.MonthNames[key.Month-1] != "" {
		name = l.MonthNames[key.Month-1]
	}
	year := strconv.Itoa(key.Year)
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return name + " " + year
}
