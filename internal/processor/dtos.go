package processor

import (
	"time"

	"merchant-console/internal/domain"
)

type amountDTO struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type linkDTO struct {
	Href string `json:"href"`
}

type paymentLinksDTO struct {
	Dashboard linkDTO `json:"dashboard"`
}

type paymentResource struct {
	ID          string          `json:"id"`
	Amount      amountDTO       `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Method      string          `json:"method"`
	CreatedAt   time.Time       `json:"createdAt"`
	Links       paymentLinksDTO `json:"_links"`
}

// paymentsEnvelope is the HAL collection wrapper around a single bounded
// page of payments.
type paymentsEnvelope struct {
	Count    int `json:"count"`
	Embedded struct {
		Payments []paymentResource `json:"payments"`
	} `json:"_embedded"`
}

type settlementResource struct {
	ID             string     `json:"id"`
	Amount         *amountDTO `json:"amount"`
	SettlementDate string     `json:"settlementDate"`
}

type refundRequest struct {
	Amount amountDTO `json:"amount"`
}

func (r paymentResource) toDomain() domain.Payment {
	return domain.Payment{
		ID: r.ID,
		Amount: domain.Amount{
			Value:    r.Amount.Value,
			Currency: r.Amount.Currency,
		},
		Description:  r.Description,
		Status:       domain.PaymentStatus(r.Status),
		Method:       r.Method,
		CreatedAt:    r.CreatedAt,
		DashboardURL: r.Links.Dashboard.Href,
	}
}

func (r settlementResource) toDomain() (*domain.Settlement, error) {
	if r.Amount == nil || r.SettlementDate == "" {
		// No payout scheduled; the forecast is legitimately absent.
		return nil, nil
	}

	date, err := time.ParseInLocation("2006-01-02", r.SettlementDate, time.Local)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, r.SettlementDate); err != nil {
			return nil, err
		}
	}

	return &domain.Settlement{
		Amount: domain.Amount{
			Value:    r.Amount.Value,
			Currency: r.Amount.Currency,
		},
		SettlementDate: date,
	}, nil
}
