package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as the processor reports it: a decimal string
// plus an ISO-4217 currency code. It is never mutated after creation.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// NewAmount validates the raw value against the currency's minor unit.
func NewAmount(value, currency string) (Amount, error) {
	if currency == "" {
		return Amount{}, ErrMissingCurrency
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: negative value %q", ErrInvalidAmount, value)
	}
	if -d.Exponent() > MinorUnits(currency) {
		return Amount{}, fmt.Errorf("%w: %q exceeds %s precision", ErrInvalidAmount, value, currency)
	}

	return Amount{Value: value, Currency: currency}, nil
}

// AmountFromDecimal renders d at the currency's minor-unit precision.
func AmountFromDecimal(d decimal.Decimal, currency string) Amount {
	return Amount{
		Value:    d.StringFixed(MinorUnits(currency)),
		Currency: currency,
	}
}

// Decimal parses the value for arithmetic.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.Value)
}

func (a Amount) IsZero() bool {
	d, err := a.Decimal()
	if err != nil {
		return false
	}
	return d.IsZero()
}

func (a Amount) String() string {
	return a.Value + " " + a.Currency
}

// Currencies whose minor unit is not the usual two digits.
var minorUnitOverrides = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0,
	"KMF": 0, "KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0,
	"VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnits returns the number of fractional digits for a currency code.
func MinorUnits(currency string) int32 {
	if n, ok := minorUnitOverrides[currency]; ok {
		return n
	}
	return 2
}
