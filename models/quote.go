// ABOUTME: Quote entity with line items and payment terms
// ABOUTME: Defines quote status and payment trigger event enums
package models

import "time"

// Quote statuses.
const (
	QuoteDraft       = "draft"
	QuoteSent        = "sent"
	QuoteReceived    = "received"
	QuoteUnderReview = "under_review"
	QuoteApproved    = "approved"
	QuoteRejected    = "rejected"
	QuoteExpired     = "expired"
)

// Trigger events anchoring a payment term's due date.
const (
	TriggerOrderConfirmation    = "order_confirmation"
	TriggerDelivery             = "delivery"
	TriggerInstallationStart    = "installation_start"
	TriggerInstallationComplete = "installation_complete"
	TriggerApproval             = "approval"
	TriggerCustomDate           = "custom_date"
)

// LineItem is a single priced row on a quote.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// PaymentTerm describes when and how much of a quote's total is due.
// Percentage and FixedAmount are mutually exclusive; terms for a quote should
// cover 100% of the total, but that is only warned about, never enforced.
type PaymentTerm struct {
	ID            string     `json:"id"`
	Description   string     `json:"description,omitempty"`
	Percentage    *float64   `json:"percentage,omitempty"`
	FixedAmount   *float64   `json:"fixedAmount,omitempty"`
	Trigger       string     `json:"trigger"`
	DueAfterDays  int        `json:"dueAfterDays"`
	CustomDueDate *time.Time `json:"customDueDate,omitempty"`
	Order         int        `json:"order"`
}

type Quote struct {
	Meta
	ProjectID    string        `json:"projectId"`
	PhaseIDs     []string      `json:"phaseIds,omitempty"`
	ContractorID string        `json:"contractorId,omitempty"`
	Status       string        `json:"status"`
	TotalAmount  float64       `json:"totalAmount"`
	Currency     string        `json:"currency,omitempty"`
	LineItems    []LineItem    `json:"lineItems,omitempty"`
	Terms        []PaymentTerm `json:"paymentTerms,omitempty"`
	ValidUntil   *time.Time    `json:"validUntil,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

// LineItemTotal sums the quote's line item totals. TotalAmount is expected to
// match this, but a mismatch only produces a warning.
func (q *Quote) LineItemTotal() float64 {
	var sum float64
	for _, li := range q.LineItems {
		sum += li.Total
	}
	return sum
}

// ValidQuoteStatus reports whether s is a known quote status.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteReceived, QuoteUnderReview, QuoteApproved, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}

// ValidTrigger reports whether s is a known payment trigger event.
func ValidTrigger(s string) bool {
	switch s {
	case TriggerOrderConfirmation, TriggerDelivery, TriggerInstallationStart,
		TriggerInstallationComplete, TriggerApproval, TriggerCustomDate:
		return true
	}
	return false
}
