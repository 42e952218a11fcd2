package parser

import "errors"

// ErrNoSheets is returned when the workbook holds no worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNoHeader is returned when the first sheet holds no header row.
var ErrNoHeader = errors.New("first sheet has no header row")
