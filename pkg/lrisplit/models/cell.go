// Package models defines data structures for the monthly workbook split.
package models

import (
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindEmpty is a blank cell.
	KindEmpty Kind = iota
	// KindString is a text cell.
	KindString
	// KindNumber is a numeric cell.
	KindNumber
	// KindTime is a numeric cell carrying a date number format.
	KindTime
)

// TimeLayout is used to stringify Time values.
const TimeLayout = "2006-01-02 15:04:05"

// Value is a loosely-typed cell value.
type Value struct {
	kind Kind
	str  string
	num  float64
	t    time.Time
}

// Empty returns a blank value.
func Empty() Value { return Value{} }

// Str returns a text value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Time returns a date value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is a blank cell.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Float returns the numeric payload and whether v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Time returns the date payload and whether v is a date.
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindTime
}

// String renders the value as cell text. Numbers use the shortest
// representation, dates use TimeLayout so that they order chronologically.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTime:
		return v.t.Format(TimeLayout)
	default:
		return ""
	}
}

// Interface returns the value in the form excelize expects when writing
// a cell. Empty values return nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindTime:
		return v.t
	default:
		return nil
	}
}
