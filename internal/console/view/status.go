package view

import "merchant-console/internal/domain"

// Tint is a color category the host maps onto its own palette.
type Tint string

const (
	TintGreen   Tint = "green"
	TintBlue    Tint = "blue"
	TintOrange  Tint = "orange"
	TintRed     Tint = "red"
	TintPurple  Tint = "purple"
	TintGray    Tint = "gray"
	TintNeutral Tint = "neutral"
)

type statusPresentation struct {
	Label string
	Tint  Tint
}

var statusPresentations = map[domain.PaymentStatus]statusPresentation{
	domain.StatusPaid:          {Label: "Paid", Tint: TintGreen},
	domain.StatusOpen:          {Label: "Open", Tint: TintBlue},
	domain.StatusPending:       {Label: "Pending", Tint: TintOrange},
	domain.StatusFailed:        {Label: "Failed", Tint: TintRed},
	domain.StatusExpired:       {Label: "Expired", Tint: TintGray},
	domain.StatusCanceled:      {Label: "Canceled", Tint: TintGray},
	domain.StatusRefunded:      {Label: "Refunded", Tint: TintPurple},
	domain.StatusRefundPending: {Label: "Refund pending", Tint: TintOrange},
}

// StatusPresentation maps a status to its display label and color category.
// Unknown statuses keep their raw string with a neutral color.
func StatusPresentation(status domain.PaymentStatus) (string, Tint) {
	if p, ok := statusPresentations[status]; ok {
		return p.Label, p.Tint
	}
	return string(status), TintNeutral
}

// FilterLabel names a filter selection for dropdowns and empty states.
func FilterLabel(filter domain.StatusFilter) string {
	if filter.IsAll() {
		return "All"
	}
	label, _ := StatusPresentation(domain.PaymentStatus(filter))
	return label
}
