// Package partition groups records by the month of their arrival date.
package partition

import (
	"fmt"
	"sort"
	"time"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/JF-WK/wk-compta/pkg/lrisplit/parser"
)

// Partition holds the records of one (year, month) bucket in the order
// they appear in the chronological global set.
type Partition struct {
	Key     models.PartitionKey
	Records []models.Record
}

// Result is the outcome of Split.
type Result struct {
	// Columns is the shared column set.
	Columns []string
	// DateIndex is the position of the date column in Columns.
	DateIndex int
	// Global holds every record with a valid date, ordered by
	// (year, month, date) with ties in source order.
	Global []models.Record
	// Partitions holds one entry per month present, ascending.
	Partitions []Partition
	// Dropped counts records whose date did not parse.
	Dropped int
}

// Counts returns the number of records per partition, in partition order.
func (r *Result) Counts() []int {
	counts := make([]int, len(r.Partitions))
	for i, p := range r.Partitions {
		counts[i] = len(p.Records)
	}
	return counts
}

type dated struct {
	rec  models.Record
	date time.Time
	key  models.PartitionKey
}

// Split parses the date column of every record, drops the records whose
// date is invalid and groups the rest by (year, month).
func Split(ds *models.Dataset, dateColumn string) (*Result, error) {
	dateIdx := ds.ColumnIndex(dateColumn)
	if dateIdx < 0 {
		return nil, fmt.Errorf("column %q not found", dateColumn)
	}

	res := &Result{Columns: ds.Columns, DateIndex: dateIdx}

	valid := make([]dated, 0, len(ds.Records))
	for _, rec := range ds.Records {
		t, ok := parser.ParseDate(rec.Get(dateIdx))
		if !ok {
			res.Dropped++
			continue
		}
		valid = append(valid, dated{
			rec:  rec,
			date: t,
			key:  models.PartitionKey{Year: t.Year(), Month: int(t.Month())},
		})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].key != valid[j].key {
			return valid[i].key.Less(valid[j].key)
		}
		return valid[i].date.Before(valid[j].date)
	})

	res.Global = make([]models.Record, len(valid))
	for i, d := range valid {
		res.Global[i] = d.rec
		n := len(res.Partitions)
		if n == 0 || res.Partitions[n-1].Key != d.key {
			res.Partitions = append(res.Partitions, Partition{Key: d.key})
			n++
		}
		res.Partitions[n-1].Records = append(res.Partitions[n-1].Records, d.rec)
	}

	return res, nil
}
