// ABOUTME: Quote MCP tool handlers
// ABOUTME: Implements add_quote, set_payment_terms, and set_quote_status tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type QuoteHandlers struct {
	store *store.Store
}

func NewQuoteHandlers(s *store.Store) *QuoteHandlers {
	return &QuoteHandlers{store: s}
}

type LineItemInput struct {
	Description string  `json:"description" jsonschema:"Line item description"`
	Quantity    float64 `json:"quantity" jsonschema:"Quantity"`
	UnitPrice   float64 `json:"unit_price" jsonschema:"Price per unit"`
}

type AddQuoteInput struct {
	ProjectID    string          `json:"project_id" jsonschema:"Project ID (required)"`
	ContractorID string          `json:"contractor_id,omitempty" jsonschema:"Contractor who submitted the quote"`
	TotalAmount  float64         `json:"total_amount" jsonschema:"Quote total (required)"`
	Currency     string          `json:"currency,omitempty" jsonschema:"Currency code, e.g. EUR"`
	LineItems    []LineItemInput `json:"line_items,omitempty" jsonschema:"Priced line items"`
}

type QuoteOutput struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	Status      string   `json:"status"`
	TotalAmount float64  `json:"total_amount"`
	Currency    string   `json:"currency,omitempty"`
	TermCount   int      `json:"term_count"`
	Warnings    []string `json:"warnings,omitempty"`
}

func quoteToOutput(q *models.Quote) QuoteOutput {
	return QuoteOutput{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		Status:      q.Status,
		TotalAmount: q.TotalAmount,
		Currency:    q.Currency,
		TermCount:   len(q.Terms),
	}
}

func (h *QuoteHandlers) AddQuote(_ context.Context, request *mcp.CallToolRequest, input AddQuoteInput) (*mcp.CallToolResult, QuoteOutput, error) {
	if input.ProjectID == "" {
		return nil, QuoteOutput{}, fmt.Errorf("project_id is required")
	}
	if input.TotalAmount <= 0 {
		return nil, QuoteOutput{}, fmt.Errorf("total_amount must be positive")
	}
	if _, ok := db.GetProject(h.store, input.ProjectID); !ok {
		return nil, QuoteOutput{}, fmt.Errorf("project not found")
	}

	q := &models.Quote{
		ProjectID:    input.ProjectID,
		ContractorID: input.ContractorID,
		TotalAmount:  input.TotalAmount,
		Currency:     input.Currency,
	}
	for _, li := range input.LineItems {
		q.LineItems = append(q.LineItems, models.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Quantity * li.UnitPrice,
		})
	}
	if !db.CreateQuote(h.store, q) {
		return nil, QuoteOutput{}, fmt.Errorf("failed to create quote")
	}

	db.LogActivity(h.store, &models.TeamActivity{
		Type:       models.ActivityQuoteReceived,
		Action:     "added quote",
		TargetType: "quote",
		TargetID:   q.ID,
	})
	return nil, quoteToOutput(q), nil
}

type PaymentTermInput struct {
	Description   string   `json:"description,omitempty" jsonschema:"Term description, e.g. Deposit"`
	Percentage    *float64 `json:"percentage,omitempty" jsonschema:"Share of the total, 0-100; exclusive with fixed_amount"`
	FixedAmount   *float64 `json:"fixed_amount,omitempty" jsonschema:"Fixed amount due; exclusive with percentage"`
	Trigger       string   `json:"trigger" jsonschema:"Trigger event (order_confirmation, delivery, installation_start, installation_complete, approval, custom_date)"`
	DueAfterDays  int      `json:"due_after_days,omitempty" jsonschema:"Days after the trigger the payment is due"`
	CustomDueDate string   `json:"custom_due_date,omitempty" jsonschema:"Due date for custom_date terms (YYYY-MM-DD)"`
}

type SetPaymentTermsInput struct {
	QuoteID string             `json:"quote_id" jsonschema:"Quote ID (required)"`
	Terms   []PaymentTermInput `json:"terms" jsonschema:"Payment terms replacing the quote's current terms"`
}

func (h *QuoteHandlers) SetPaymentTerms(_ context.Context, request *mcp.CallToolRequest, input SetPaymentTermsInput) (*mcp.CallToolResult, QuoteOutput, error) {
	if input.QuoteID == "" {
		return nil, QuoteOutput{}, fmt.Errorf("quote_id is required")
	}

	terms := make([]models.PaymentTerm, 0, len(input.Terms))
	for i, ti := range input.Terms {
		if !models.ValidTrigger(ti.Trigger) {
			return nil, QuoteOutput{}, fmt.Errorf("term %d: invalid trigger %q", i+1, ti.Trigger)
		}
		term := models.PaymentTerm{
			Description:  ti.Description,
			Percentage:   ti.Percentage,
			FixedAmount:  ti.FixedAmount,
			Trigger:      ti.Trigger,
			DueAfterDays: ti.DueAfterDays,
		}
		if ti.CustomDueDate != "" {
			due, err := time.Parse("2006-01-02", ti.CustomDueDate)
			if err != nil {
				return nil, QuoteOutput{}, fmt.Errorf("term %d: invalid custom_due_date: %w", i+1, err)
			}
			term.CustomDueDate = &due
		}
		terms = append(terms, term)
	}

	warnings, ok := db.SetPaymentTerms(h.store, input.QuoteID, terms)
	if !ok {
		return nil, QuoteOutput{}, fmt.Errorf("quote not found")
	}

	q, _ := db.GetQuote(h.store, input.QuoteID)
	out := quoteToOutput(q)
	out.Warnings = warnings
	return nil, out, nil
}

type SetQuoteStatusInput struct {
	QuoteID string `json:"quote_id" jsonschema:"Quote ID (required)"`
	Status  string `json:"status" jsonschema:"New quote status (required)"`
}

func (h *QuoteHandlers) SetQuoteStatus(_ context.Context, request *mcp.CallToolRequest, input SetQuoteStatusInput) (*mcp.CallToolResult, QuoteOutput, error) {
	if input.QuoteID == "" {
		return nil, QuoteOutput{}, fmt.Errorf("quote_id is required")
	}
	if !models.ValidQuoteStatus(input.Status) {
		return nil, QuoteOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	if !db.SetQuoteStatus(h.store, input.QuoteID, input.Status) {
		return nil, QuoteOutput{}, fmt.Errorf("quote not found")
	}
	q, _ := db.GetQuote(h.store, input.QuoteID)
	return nil, quoteToOutput(q), nil
}
