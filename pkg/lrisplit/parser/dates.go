package parser

import (
	"strings"
	"time"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/xuri/excelize/v2"
)

// dayFirstLayouts are tried in order. Non-padded day and month verbs
// accept both one and two digits.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2-1-2006",
	"2-1-2006 15:04",
	"2-1-2006 15:04:05",
	"2.1.2006",
	"2.1.2006 15:04",
	"2/1/06",
	"2-1-06",
	"2.1.06",
}

var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/1/2",
	"2006/1/2 15:04:05",
}

// ParseDate interprets a cell as a calendar date, reading ambiguous
// numeric dates day-first. Dates pass through, numbers are taken as
// Excel serial dates (1900 system) and text is matched against the
// day-first then ISO layouts. ok is false when nothing matches.
func ParseDate(v models.Value) (t time.Time, ok bool) {
	switch v.Kind() {
	case models.KindTime:
		t, _ = v.Time()
		return t, true
	case models.KindNumber:
		f, _ := v.Float()
		if f <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case models.KindString:
		return parseDateText(v.String())
	}
	return time.Time{}, false
}

func parseDateText(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
