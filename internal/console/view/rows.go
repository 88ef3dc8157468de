package view

import (
	"fmt"
	"strings"
	"time"

	"merchant-console/internal/domain"
)

// PaymentRow is one display-ready list entry plus the actions the host may
// offer for it.
type PaymentRow struct {
	ID          string
	Title       string
	Subtitle    string
	Icon        string
	Accessory   string
	StatusLabel string
	StatusTint  Tint

	DashboardURL string
	CanRefund    bool
	CopyID       string
	CopyAmount   string
}

// BuildRows prepares a payment collection for rendering. Order is the
// collection's own.
func BuildRows(payments []domain.Payment, now time.Time) []PaymentRow {
	rows := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, buildRow(p, now))
	}
	return rows
}

func buildRow(p domain.Payment, now time.Time) PaymentRow {
	label, tint := StatusPresentation(p.Status)
	formatted := FormatCurrency(p.Amount.Value, p.Amount.Currency)

	title := p.Description
	if title == "" {
		title = p.ID
	}

	return PaymentRow{
		ID:           p.ID,
		Title:        title,
		Subtitle:     formatted,
		Icon:         MethodIcon(p.Method),
		Accessory:    FormatTimestamp(p.CreatedAt, now),
		StatusLabel:  label,
		StatusTint:   tint,
		DashboardURL: p.DashboardURL,
		CanRefund:    p.Refundable(),
		CopyID:       p.ID,
		CopyAmount:   formatted,
	}
}

// SummaryView is the persistent revenue surface: today's total, the count
// breakdown, and the payout forecast line.
type SummaryView struct {
	Headline     string
	CountLine    string
	ForecastLine string
	DashboardURL string
}

// BuildSummary renders today's revenue plus the settlement forecast.
// settlementLoading keeps the forecast line distinct from "no settlement":
// the two must never be conflated.
func BuildSummary(total domain.Amount, count int, settlement *domain.Settlement, settlementLoading bool, dashboardURL string) SummaryView {
	v := SummaryView{
		Headline:     "Today: " + FormatCurrency(total.Value, total.Currency),
		CountLine:    fmt.Sprintf("%d paid payments today", count),
		DashboardURL: dashboardURL,
	}

	switch {
	case settlementLoading:
		v.ForecastLine = "Loading next payout…"
	case settlement == nil:
		v.ForecastLine = "No upcoming settlement"
	default:
		v.ForecastLine = fmt.Sprintf(
			"Next payout: %s on %s",
			FormatCurrency(settlement.Amount.Value, settlement.Amount.Currency),
			settlement.SettlementDate.Format("2 Jan"),
		)
	}

	return v
}

// DashboardTodayURL scopes the merchant dashboard link to today's paid
// payments.
func DashboardTodayURL(base string, now time.Time) string {
	if base == "" {
		return ""
	}
	day := now.Local().Format("2006-01-02")
	return fmt.Sprintf("%s/payments?status=paid&from=%s", base, day)
}

// EmptyMessage picks the empty-state text for the list. A loading
// collection, an empty account, and an empty filter result each read
// differently.
func EmptyMessage(filter domain.StatusFilter, loaded bool) string {
	if !loaded {
		return "Loading payments…"
	}
	if filter.IsAll() {
		return "No payments yet"
	}
	return fmt.Sprintf("No %s payments", strings.ToLower(FilterLabel(filter)))
}
