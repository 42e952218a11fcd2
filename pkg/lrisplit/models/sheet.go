package models

// Record is one row of the source table, aligned with its Dataset's columns.
type Record []Value

// Get returns the cell at column index i, or an empty value when the
// record is shorter than the header.
func (r Record) Get(i int) Value {
	if i < 0 || i >= len(r) {
		return Empty()
	}
	return r[i]
}

// Dataset is an ordered sequence of records sharing a common column set.
type Dataset struct {
	// Columns holds the header names in source order.
	Columns []string
	// Records holds the rows in source order.
	Records []Record
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// BlankRecord returns a record of empty values as wide as the dataset.
func (d *Dataset) BlankRecord() Record {
	return make(Record, len(d.Columns))
}

// Sheet is one output worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Columns holds the header row.
	Columns []string `json:"columns"`
	// Rows holds the rows rendered below the header.
	Rows []Record `json:"-"`
	// HasTotals marks the first row as a totals row.
	HasTotals bool `json:"has_totals"`
	// DataRows is the number of source records on the sheet, excluding
	// the totals and blank rows.
	DataRows int `json:"data_rows"`
}
