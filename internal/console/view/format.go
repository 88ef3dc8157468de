// Package view turns domain values into display-ready strings, icons and
// rows for the presentation host. Everything here is a pure function of its
// inputs.
package view

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a monetary value with its currency symbol. Unknown
// currency codes and unparseable values fall back to "<value> <code>".
func FormatCurrency(value, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return value + " " + code
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return value + " " + code
	}

	f, _ := d.Float64()
	return printer.Sprint(currency.Symbol(unit.Amount(f)))
}

// FormatTimestamp renders a time of day for timestamps on the current local
// calendar day and a short date for any other day. A timestamp at exactly
// local midnight of today counts as today.
func FormatTimestamp(ts, now time.Time) string {
	if startOfDay(ts.Local()).Equal(startOfDay(now.Local())) {
		return ts.Local().Format("15:04")
	}
	return ts.Local().Format("2 Jan")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
