package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchant-console/internal/console/view"
	"merchant-console/internal/domain"
)

func TestBuildRows(t *testing.T) {
	now := time.Date(2026, time.March, 14, 16, 30, 0, 0, time.Local)

	payments := []domain.Payment{
		{
			ID:           "tr_paid",
			Amount:       domain.Amount{Value: "25.00", Currency: "EUR"},
			Description:  "Order 1001",
			Status:       domain.StatusPaid,
			Method:       "iDEAL",
			CreatedAt:    now.Add(-time.Hour),
			DashboardURL: "https://dashboard.example/tr_paid",
		},
		{
			ID:        "tr_open",
			Amount:    domain.Amount{Value: "5.00", Currency: "EUR"},
			Status:    domain.StatusOpen,
			CreatedAt: now.AddDate(0, 0, -3),
		},
	}

	rows := view.BuildRows(payments, now)
	require.Len(t, rows, 2)

	paid := rows[0]
	assert.Equal(t, "Order 1001", paid.Title)
	assert.Contains(t, paid.Subtitle, "25.00")
	assert.Equal(t, "icons/ideal.png", paid.Icon, "method lookup is case-insensitive")
	assert.Equal(t, "Paid", paid.StatusLabel)
	assert.Equal(t, view.TintGreen, paid.StatusTint)
	assert.Equal(t, "15:30", paid.Accessory)
	assert.True(t, paid.CanRefund)
	assert.Equal(t, "https://dashboard.example/tr_paid", paid.DashboardURL)
	assert.Equal(t, "tr_paid", paid.CopyID)
	assert.Equal(t, paid.Subtitle, paid.CopyAmount)

	open := rows[1]
	// No description falls back to the payment id.
	assert.Equal(t, "tr_open", open.Title)
	assert.Equal(t, view.DefaultIcon, open.Icon)
	assert.Equal(t, "11 Mar", open.Accessory)
	assert.False(t, open.CanRefund)
}

func TestStatusPresentation_UnknownStatusIsNeutral(t *testing.T) {
	label, tint := view.StatusPresentation(domain.PaymentStatus("chargeback"))
	assert.Equal(t, "chargeback", label)
	assert.Equal(t, view.TintNeutral, tint)

	label, tint = view.StatusPresentation(domain.StatusRefundPending)
	assert.Equal(t, "Refund pending", label)
	assert.Equal(t, view.TintOrange, tint)
}

func TestMethodIcon(t *testing.T) {
	assert.Equal(t, "icons/creditcard.png", view.MethodIcon("creditcard"))
	assert.Equal(t, "icons/creditcard.png", view.MethodIcon("CreditCard"))
	assert.Equal(t, view.DefaultIcon, view.MethodIcon(""))
	assert.Equal(t, view.DefaultIcon, view.MethodIcon("hypothetical"))
}

func TestBuildSummary_ForecastStates(t *testing.T) {
	total := domain.Amount{Value: "15.50", Currency: "EUR"}

	loading := view.BuildSummary(total, 2, nil, true, "")
	assert.Equal(t, "Loading next payout…", loading.ForecastLine)

	none := view.BuildSummary(total, 2, nil, false, "https://dashboard.example")
	// "No data" must never read as blank or loading.
	assert.Equal(t, "No upcoming settlement", none.ForecastLine)
	assert.Contains(t, none.Headline, "15.50")
	assert.Equal(t, "2 paid payments today", none.CountLine)
	assert.Equal(t, "https://dashboard.example", none.DashboardURL)

	settlement := &domain.Settlement{
		Amount:         domain.Amount{Value: "120.00", Currency: "EUR"},
		SettlementDate: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.Local),
	}
	ready := view.BuildSummary(total, 2, settlement, false, "")
	assert.Contains(t, ready.ForecastLine, "120.00")
	assert.Contains(t, ready.ForecastLine, "20 Mar")
}

func TestDashboardTodayURL(t *testing.T) {
	now := time.Date(2026, time.March, 14, 16, 30, 0, 0, time.Local)

	url := view.DashboardTodayURL("https://dashboard.example/org_1", now)
	assert.Equal(t, "https://dashboard.example/org_1/payments?status=paid&from=2026-03-14", url)

	assert.Empty(t, view.DashboardTodayURL("", now))
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, "Loading payments…", view.EmptyMessage(domain.FilterAll, false))
	assert.Equal(t, "No payments yet", view.EmptyMessage(domain.FilterAll, true))

	// The filtered empty state names the active filter.
	msg := view.EmptyMessage(domain.StatusFilter(domain.StatusRefunded), true)
	assert.Equal(t, "No refunded payments", msg)
	assert.NotEqual(t, "No payments yet", msg)
}
