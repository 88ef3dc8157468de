package console

import (
	"time"

	"github.com/shopspring/decimal"

	"merchant-console/internal/domain"
)

// DefaultCurrency is used for the zero aggregate when no payment qualifies.
const DefaultCurrency = "EUR"

// DayRevenue is the same-day paid total and transaction count.
type DayRevenue struct {
	Total domain.Amount
	Count int
}

// AggregateToday sums the paid payments created since local midnight. There
// is deliberately no upper bound: a payment stamped in the future still
// counts, matching a "since start of day" filter. The aggregate's currency
// is the first qualifying payment's; with none it is a zero DefaultCurrency
// amount.
func AggregateToday(payments []domain.Payment, now time.Time) DayRevenue {
	midnight := startOfDay(now)

	total := decimal.Zero
	count := 0
	currency := ""

	for _, p := range payments {
		if p.Status != domain.StatusPaid {
			continue
		}
		if p.CreatedAt.Local().Before(midnight) {
			continue
		}

		d, err := p.Amount.Decimal()
		if err != nil {
			continue
		}

		if currency == "" {
			currency = p.Amount.Currency
		}
		total = total.Add(d)
		count++
	}

	if currency == "" {
		currency = DefaultCurrency
	}

	return DayRevenue{
		Total: domain.AmountFromDecimal(total, currency),
		Count: count,
	}
}

// ForecastKind distinguishes a forecast that is still loading from one that
// legitimately has no data.
type ForecastKind int

const (
	ForecastLoading ForecastKind = iota
	ForecastNone
	ForecastReady
)

// Forecast is the settlement fetch's presentation state.
type Forecast struct {
	Kind       ForecastKind
	Settlement *domain.Settlement
}

func startOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
