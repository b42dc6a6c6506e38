// ABOUTME: Repository for quotes, line items, and payment terms
// ABOUTME: Term assignment returns advisory coverage warnings, never rejects
package db

import (
	"github.com/google/uuid"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/schedule"
	"github.com/harperreed/refit/store"
)

func quotes(s *store.Store) *store.Collection[*models.Quote] {
	return store.NewCollection[*models.Quote](s, store.KeyQuotes)
}

// CreateQuote persists a new quote. Status defaults to draft.
func CreateQuote(s *store.Store, q *models.Quote) bool {
	if q.Status == "" {
		q.Status = models.QuoteDraft
	}
	for i := range q.LineItems {
		if q.LineItems[i].ID == "" {
			q.LineItems[i].ID = uuid.New().String()
		}
	}
	return quotes(s).Append(q)
}

// GetQuote returns the quote with the given id.
func GetQuote(s *store.Store, id string) (*models.Quote, bool) {
	return quotes(s).Find(id)
}

// AllQuotes returns every quote.
func AllQuotes(s *store.Store) []*models.Quote {
	return quotes(s).All()
}

// UpdateQuote applies a partial update to a quote.
func UpdateQuote(s *store.Store, id string, mutate func(*models.Quote)) bool {
	return quotes(s).Update(id, mutate)
}

// DeleteQuote removes a quote. Payments already scheduled against it are
// left in place.
func DeleteQuote(s *store.Store, id string) bool {
	return quotes(s).Delete(id)
}

// QuotesByProject returns all quotes attached to a project.
func QuotesByProject(s *store.Store, projectID string) []*models.Quote {
	return quotes(s).Filter(func(q *models.Quote) bool {
		return q.ProjectID == projectID
	})
}

// QuotesByStatus returns all quotes in the given status.
func QuotesByStatus(s *store.Store, status string) []*models.Quote {
	return quotes(s).Filter(func(q *models.Quote) bool {
		return q.Status == status
	})
}

// SetQuoteStatus moves a quote to a new status.
func SetQuoteStatus(s *store.Store, id, status string) bool {
	if !models.ValidQuoteStatus(status) {
		return false
	}
	return quotes(s).Update(id, func(q *models.Quote) {
		q.Status = status
	})
}

// SetPaymentTerms replaces a quote's payment terms. Terms without an id get
// one assigned, and Order is normalized to the slice position. The returned
// warnings describe coverage problems (terms not summing to the quote total,
// a term with both or neither amount field set); they never block the write.
func SetPaymentTerms(s *store.Store, quoteID string, terms []models.PaymentTerm) ([]string, bool) {
	var warnings []string
	ok := quotes(s).Update(quoteID, func(q *models.Quote) {
		for i := range terms {
			if terms[i].ID == "" {
				terms[i].ID = uuid.New().String()
			}
			terms[i].Order = i
		}
		q.Terms = terms
		warnings = schedule.VerifyTerms(q.TotalAmount, terms)
	})
	return warnings, ok
}
