// Package lrisplit rewrites a reservation workbook as a global sheet plus
// one sheet per arrival month, each monthly sheet topped by a totals row.
package lrisplit

import (
	"log/slog"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/report"
)

// DefaultDateColumn holds the arrival date used for partitioning.
const DefaultDateColumn = "Arrivée"

// DefaultCountColumn receives the record count in totals rows.
const DefaultCountColumn = "Réservation"

// DefaultGlobalSheet names the sheet holding every valid record.
const DefaultGlobalSheet = "Global"

// DefaultNumericColumns are summed and formatted with two decimals.
var DefaultNumericColumns = []string{
	"Commission du canal ",
	"Frais de nettoyage",
	"frais de ménage corrigé",
	"correction panier",
	"Taxe",
	"Facturé",
	"Versement OTA",
	"Montant pour le propriétaire",
	"Montant de l'agence",
	"prix proprio Brut / nuit",
	"prix nuité brut convenu",
	"réajustement",
	"Loyer Brut proprio",
	"Loyer brut réajusté",
	"TOTAL HT",
	"TOTAL TVA",
	"TOTAL TTC",
	"Commission au propriétaire",
}

// DefaultMonthNames are the French month names used in sheet names.
var DefaultMonthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// Options configures a run.
type Options struct {
	// DateColumn is the required arrival-date column.
	DateColumn string
	// CountColumn receives the record count in totals rows.
	CountColumn string
	// GlobalSheet names the unpartitioned sheet.
	GlobalSheet string
	// NumericColumns are summed in totals rows and formatted "0.00".
	NumericColumns []string
	// MonthNames maps months 1..12 to sheet name prefixes.
	MonthNames [12]string
	// Output is the destination path. Empty rewrites the input in place.
	Output string
	// Logger receives progress records. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the reservation layout.
func DefaultOptions() Options {
	return Options{
		DateColumn:     DefaultDateColumn,
		CountColumn:    DefaultCountColumn,
		GlobalSheet:    DefaultGlobalSheet,
		NumericColumns: append([]string(nil), DefaultNumericColumns...),
		MonthNames:     DefaultMonthNames,
	}
}

// Layout returns a copy of the report configuration held by o.
func (o Options) Layout() report.Layout {
	return report.Layout{
		GlobalSheet:    o.GlobalSheet,
		CountColumn:    o.CountColumn,
		NumericColumns: append([]string(nil), o.NumericColumns...),
		MonthNames:     o.MonthNames,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
