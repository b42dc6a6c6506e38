// ABOUTME: Payment scheduling engine deriving planned payments from quote terms
// ABOUTME: Pure functions; aggregate stats are recomputed on every read
package schedule

import (
	"fmt"
	"math"

	"time"

	"github.com/harperreed/refit/models"
)

// BaseDates maps trigger events to the externally supplied dates that anchor
// them (order confirmation date, delivery date, and so on).
type BaseDates map[string]time.Time

// Generate computes one pending payment per term. The amount is the term's
// fixed amount when set, otherwise percentage of the total. The due date is
// the trigger's base date plus the term's day offset; custom_date terms use
// their own date. Terms whose trigger has no base date yield a zero due date,
// which the overdue check ignores.
func Generate(total float64, terms []models.PaymentTerm, base BaseDates) []*models.Payment {
	payments := make([]*models.Payment, 0, len(terms))
	for _, term := range terms {
		p := &models.Payment{
			PaymentTermID: term.ID,
			Description:   term.Description,
			Amount:        termAmount(total, term),
			PaidAmount:    0,
			DueDate:       termDueDate(term, base),
			Status:        models.PaymentPending,
		}
		payments = append(payments, p)
	}
	return payments
}

func termAmount(total float64, term models.PaymentTerm) float64 {
	if term.FixedAmount != nil {
		return *term.FixedAmount
	}
	if term.Percentage != nil {
		return total * *term.Percentage / 100
	}
	return 0
}

func termDueDate(term models.PaymentTerm, base BaseDates) time.Time {
	if term.Trigger == models.TriggerCustomDate {
		if term.CustomDueDate != nil {
			return *term.CustomDueDate
		}
		return time.Time{}
	}
	anchor, ok := base[term.Trigger]
	if !ok {
		return time.Time{}
	}
	return anchor.AddDate(0, 0, term.DueAfterDays)
}

// Merge returns the generated payments whose term is not already represented
// in existing, matched by paymentTermId. Re-running the engine against a
// quote therefore never duplicates a payment row.
func Merge(existing, generated []*models.Payment) []*models.Payment {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		if p.PaymentTermID != "" {
			seen[p.PaymentTermID] = true
		}
	}

	var fresh []*models.Payment
	for _, p := range generated {
		if p.PaymentTermID != "" && seen[p.PaymentTermID] {
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}

// Stats aggregates a payment set. Never cached; callers recompute on read.
type Stats struct {
	TotalPlanned float64 `json:"totalPlanned"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalPending float64 `json:"totalPending"`
	TotalOverdue float64 `json:"totalOverdue"`
	PaymentRate  float64 `json:"paymentRate"`
}

// ComputeStats derives the aggregate figures as of now. Overdue amounts are a
// subset of pending: outstanding money on payments past their due date.
func ComputeStats(payments []*models.Payment, now time.Time) Stats {
	var st Stats
	for _, p := range payments {
		if p.Status == models.PaymentCancelled {
			continue
		}
		st.TotalPlanned += p.Amount
		st.TotalPaid += p.PaidAmount
		st.TotalPending += p.Outstanding()
		if p.OverdueAsOf(now) {
			st.TotalOverdue += p.Outstanding()
		}
	}
	if st.TotalPlanned > 0 {
		st.PaymentRate = st.TotalPaid / st.TotalPlanned * 100
	}
	return st
}

// amountTolerance absorbs float rounding when comparing money sums.
const amountTolerance = 0.01

// VerifyTerms returns advisory warnings when the terms do not cover the quote
// total, or when a term sets both or neither of percentage and fixed amount.
// Nothing is ever rejected; callers surface these next to the form.
func VerifyTerms(total float64, terms []models.PaymentTerm) []string {
	var warnings []string
	var covered float64
	for i, term := range terms {
		switch {
		case term.Percentage != nil && term.FixedAmount != nil:
			warnings = append(warnings, fmt.Sprintf("term %d sets both a percentage and a fixed amount; the fixed amount wins", i+1))
			covered += *term.FixedAmount
		case term.FixedAmount != nil:
			covered += *term.FixedAmount
		case term.Percentage != nil:
			covered += total * *term.Percentage / 100
		default:
			warnings = append(warnings, fmt.Sprintf("term %d sets neither a percentage nor a fixed amount", i+1))
		}
	}

	if len(terms) > 0 && math.Abs(covered-total) > amountTolerance {
		warnings = append(warnings, fmt.Sprintf("terms cover %.2f of a %.2f total", covered, total))
	}
	return warnings
}
