// ABOUTME: Repository for payments and payment templates
// ABOUTME: Scheduling merges against existing rows so reruns never duplicate
package db

import (
	"time"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/schedule"
	"github.com/harperreed/refit/store"
)

func payments(s *store.Store) *store.Collection[*models.Payment] {
	return store.NewCollection[*models.Payment](s, store.KeyPayments)
}

func paymentTemplates(s *store.Store) *store.Collection[*models.PaymentTemplate] {
	return store.NewCollection[*models.PaymentTemplate](s, store.KeyPaymentTemplates)
}

// CreatePayment persists a manually entered payment. Status defaults to
// pending.
func CreatePayment(s *store.Store, p *models.Payment) bool {
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	return payments(s).Append(p)
}

// GetPayment returns the payment with the given id.
func GetPayment(s *store.Store, id string) (*models.Payment, bool) {
	return payments(s).Find(id)
}

// AllPayments returns every payment.
func AllPayments(s *store.Store) []*models.Payment {
	return payments(s).All()
}

// UpdatePayment applies a partial update to a payment.
func UpdatePayment(s *store.Store, id string, mutate func(*models.Payment)) bool {
	return payments(s).Update(id, mutate)
}

// DeletePayment removes a payment row.
func DeletePayment(s *store.Store, id string) bool {
	return payments(s).Delete(id)
}

// PaymentsByQuote returns all payments scheduled against a quote.
func PaymentsByQuote(s *store.Store, quoteID string) []*models.Payment {
	return payments(s).Filter(func(p *models.Payment) bool {
		return p.QuoteID == quoteID
	})
}

// SchedulePayments generates pending payments from the quote's terms and the
// supplied trigger dates, skipping terms that already have a payment row.
// Returns the newly created payments.
func SchedulePayments(s *store.Store, quoteID string, base schedule.BaseDates) ([]*models.Payment, bool) {
	quote, ok := GetQuote(s, quoteID)
	if !ok {
		return nil, false
	}

	generated := schedule.Generate(quote.TotalAmount, quote.Terms, base)
	fresh := schedule.Merge(PaymentsByQuote(s, quoteID), generated)
	for _, p := range fresh {
		p.QuoteID = quoteID
		p.Currency = quote.Currency
		if !payments(s).Append(p) {
			return nil, false
		}
	}
	return fresh, true
}

// RecordPaymentAmount records money paid against a payment. The status moves
// to partial or paid depending on whether the full amount is covered, and the
// paid date is stamped when the payment completes.
func RecordPaymentAmount(s *store.Store, id string, amount float64, paidAt time.Time) bool {
	if amount <= 0 {
		return false
	}
	return payments(s).Update(id, func(p *models.Payment) {
		p.PaidAmount += amount
		if p.PaidAmount >= p.Amount {
			p.Status = models.PaymentPaid
			at := paidAt
			p.PaidDate = &at
		} else {
			p.Status = models.PaymentPartial
		}
	})
}

// CancelPayment marks a payment cancelled. Cancelled payments keep their
// recorded amounts but drop out of every aggregate.
func CancelPayment(s *store.Store, id string) bool {
	return payments(s).Update(id, func(p *models.Payment) {
		p.Status = models.PaymentCancelled
	})
}

// PaymentStats recomputes the aggregate payment figures as of now.
func PaymentStats(s *store.Store, now time.Time) schedule.Stats {
	return schedule.ComputeStats(payments(s).All(), now)
}

// OverduePayments returns payments past their due date with money still owed.
func OverduePayments(s *store.Store, now time.Time) []*models.Payment {
	return payments(s).Filter(func(p *models.Payment) bool {
		return p.OverdueAsOf(now)
	})
}

// CreatePaymentTemplate persists a reusable set of payment terms.
func CreatePaymentTemplate(s *store.Store, t *models.PaymentTemplate) bool {
	return paymentTemplates(s).Append(t)
}

// AllPaymentTemplates returns every saved template.
func AllPaymentTemplates(s *store.Store) []*models.PaymentTemplate {
	return paymentTemplates(s).All()
}

// DeletePaymentTemplate removes a saved template.
func DeletePaymentTemplate(s *store.Store, id string) bool {
	return paymentTemplates(s).Delete(id)
}
