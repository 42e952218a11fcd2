package models

import "fmt"

// PartitionKey identifies a (year, month) bucket.
type PartitionKey struct {
	Year  int
	Month int
}

// Less orders keys ascending by year then month.
func (k PartitionKey) Less(o PartitionKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

// String renders the key as YYYY-MM.
func (k PartitionKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// WorkbookData is the ordered set of sheets to write.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the sheets in output order.
	Sheets []Sheet `json:"sheets"`
}

// SheetNames returns the sheet names in output order.
func (w *WorkbookData) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
