// ABOUTME: Payment entity representing a planned or recorded installment
// ABOUTME: Overdue is advisory, derived from due date at read time
package models

import "time"

// Payment statuses. Overdue is derived on read; it is only stored when a user
// explicitly marks a payment overdue.
const (
	PaymentPending   = "pending"
	PaymentPartial   = "partial"
	PaymentPaid      = "paid"
	PaymentOverdue   = "overdue"
	PaymentCancelled = "cancelled"
)

type Payment struct {
	Meta
	QuoteID       string     `json:"quoteId"`
	PaymentTermID string     `json:"paymentTermId,omitempty"`
	Description   string     `json:"description,omitempty"`
	Amount        float64    `json:"amount"`
	PaidAmount    float64    `json:"paidAmount"`
	Currency      string     `json:"currency,omitempty"`
	DueDate       time.Time  `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate,omitempty"`
	Status        string     `json:"status"`
}

// OverdueAsOf reports whether the payment is still owed and past its due
// date. Paid and cancelled payments are never overdue.
func (p *Payment) OverdueAsOf(now time.Time) bool {
	switch p.Status {
	case PaymentPending, PaymentPartial, PaymentOverdue:
	default:
		return false
	}
	if p.DueDate.IsZero() {
		return false
	}
	return p.DueDate.Before(now)
}

// Outstanding is the amount still owed on this payment.
func (p *Payment) Outstanding() float64 {
	if p.Status == PaymentCancelled {
		return 0
	}
	rest := p.Amount - p.PaidAmount
	if rest < 0 {
		return 0
	}
	return rest
}

// PaymentTemplate is a reusable named set of payment terms.
type PaymentTemplate struct {
	Meta
	Name  string        `json:"name"`
	Terms []PaymentTerm `json:"terms,omitempty"`
}
