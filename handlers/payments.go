// ABOUTME: Payment MCP tool handlers
// ABOUTME: Implements generate_payment_schedule, record_payment, and payment_summary tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/schedule"
	"github.com/harperreed/refit/store"
)

type PaymentHandlers struct {
	store *store.Store
}

func NewPaymentHandlers(s *store.Store) *PaymentHandlers {
	return &PaymentHandlers{store: s}
}

type GenerateScheduleInput struct {
	QuoteID               string `json:"quote_id" jsonschema:"Quote ID (required)"`
	OrderConfirmationDate string `json:"order_confirmation_date,omitempty" jsonschema:"Anchor date for order_confirmation terms (YYYY-MM-DD)"`
	DeliveryDate          string `json:"delivery_date,omitempty" jsonschema:"Anchor date for delivery terms (YYYY-MM-DD)"`
	InstallStartDate      string `json:"install_start_date,omitempty" jsonschema:"Anchor date for installation_start terms (YYYY-MM-DD)"`
	InstallCompleteDate   string `json:"install_complete_date,omitempty" jsonschema:"Anchor date for installation_complete terms (YYYY-MM-DD)"`
	ApprovalDate          string `json:"approval_date,omitempty" jsonschema:"Anchor date for approval terms (YYYY-MM-DD)"`
}

type PaymentOutput struct {
	ID            string  `json:"id"`
	QuoteID       string  `json:"quote_id"`
	PaymentTermID string  `json:"payment_term_id,omitempty"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	PaidAmount    float64 `json:"paid_amount"`
	DueDate       string  `json:"due_date,omitempty"`
	Status        string  `json:"status"`
}

func paymentToOutput(p *models.Payment) PaymentOutput {
	out := PaymentOutput{
		ID:            p.ID,
		QuoteID:       p.QuoteID,
		PaymentTermID: p.PaymentTermID,
		Description:   p.Description,
		Amount:        p.Amount,
		PaidAmount:    p.PaidAmount,
		Status:        p.Status,
	}
	if !p.DueDate.IsZero() {
		out.DueDate = p.DueDate.Format("2006-01-02")
	}
	return out
}

type GenerateScheduleOutput struct {
	Created []PaymentOutput `json:"created"`
}

func (h *PaymentHandlers) GenerateSchedule(_ context.Context, request *mcp.CallToolRequest, input GenerateScheduleInput) (*mcp.CallToolResult, GenerateScheduleOutput, error) {
	if input.QuoteID == "" {
		return nil, GenerateScheduleOutput{}, fmt.Errorf("quote_id is required")
	}

	base := schedule.BaseDates{}
	anchors := map[string]string{
		models.TriggerOrderConfirmation:    input.OrderConfirmationDate,
		models.TriggerDelivery:             input.DeliveryDate,
		models.TriggerInstallationStart:    input.InstallStartDate,
		models.TriggerInstallationComplete: input.InstallCompleteDate,
		models.TriggerApproval:             input.ApprovalDate,
	}
	for trigger, raw := range anchors {
		if raw == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, GenerateScheduleOutput{}, fmt.Errorf("invalid date for %s: %w", trigger, err)
		}
		base[trigger] = d
	}

	fresh, ok := db.SchedulePayments(h.store, input.QuoteID, base)
	if !ok {
		return nil, GenerateScheduleOutput{}, fmt.Errorf("quote not found")
	}

	out := GenerateScheduleOutput{Created: make([]PaymentOutput, len(fresh))}
	for i, p := range fresh {
		out.Created[i] = paymentToOutput(p)
	}
	return nil, out, nil
}

type RecordPaymentInput struct {
	PaymentID string  `json:"payment_id" jsonschema:"Payment ID (required)"`
	Amount    float64 `json:"amount" jsonschema:"Amount paid (required, positive)"`
	PaidDate  string  `json:"paid_date,omitempty" jsonschema:"When the money moved (YYYY-MM-DD, defaults to today)"`
}

func (h *PaymentHandlers) RecordPayment(_ context.Context, request *mcp.CallToolRequest, input RecordPaymentInput) (*mcp.CallToolResult, PaymentOutput, error) {
	if input.PaymentID == "" {
		return nil, PaymentOutput{}, fmt.Errorf("payment_id is required")
	}
	if input.Amount <= 0 {
		return nil, PaymentOutput{}, fmt.Errorf("amount must be positive")
	}

	paidAt := time.Now()
	if input.PaidDate != "" {
		d, err := time.Parse("2006-01-02", input.PaidDate)
		if err != nil {
			return nil, PaymentOutput{}, fmt.Errorf("invalid paid_date: %w", err)
		}
		paidAt = d
	}

	if !db.RecordPaymentAmount(h.store, input.PaymentID, input.Amount, paidAt) {
		return nil, PaymentOutput{}, fmt.Errorf("payment not found")
	}

	db.LogActivity(h.store, &models.TeamActivity{
		Type:       models.ActivityPaymentRecorded,
		Action:     "recorded payment",
		TargetType: "payment",
		TargetID:   input.PaymentID,
	})

	p, _ := db.GetPayment(h.store, input.PaymentID)
	return nil, paymentToOutput(p), nil
}

type PaymentSummaryInput struct {
	QuoteID string `json:"quote_id,omitempty" jsonschema:"Limit the summary to one quote's payments"`
}

type PaymentSummaryOutput struct {
	Stats    schedule.Stats  `json:"stats"`
	Overdue  []PaymentOutput `json:"overdue,omitempty"`
	Payments []PaymentOutput `json:"payments"`
}

func (h *PaymentHandlers) PaymentSummary(_ context.Context, request *mcp.CallToolRequest, input PaymentSummaryInput) (*mcp.CallToolResult, PaymentSummaryOutput, error) {
	now := time.Now()

	var payments []*models.Payment
	if input.QuoteID != "" {
		payments = db.PaymentsByQuote(h.store, input.QuoteID)
	} else {
		payments = db.AllPayments(h.store)
	}

	out := PaymentSummaryOutput{Stats: schedule.ComputeStats(payments, now)}
	for _, p := range payments {
		out.Payments = append(out.Payments, paymentToOutput(p))
		if p.OverdueAsOf(now) {
			out.Overdue = append(out.Overdue, paymentToOutput(p))
		}
	}
	return nil, out, nil
}
