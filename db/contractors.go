// ABOUTME: Repository for contractors and their reviews
// ABOUTME: Aggregate ratings are recomputed whenever a review lands
package db

import (
	"strings"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func contractors(s *store.Store) *store.Collection[*models.Contractor] {
	return store.NewCollection[*models.Contractor](s, store.KeyContractors)
}

func reviews(s *store.Store) *store.Collection[*models.ContractorReview] {
	return store.NewCollection[*models.ContractorReview](s, store.KeyContractorReviews)
}

// CreateContractor persists a new contractor.
func CreateContractor(s *store.Store, c *models.Contractor) bool {
	return contractors(s).Append(c)
}

// GetContractor returns the contractor with the given id.
func GetContractor(s *store.Store, id string) (*models.Contractor, bool) {
	return contractors(s).Find(id)
}

// AllContractors returns every contractor.
func AllContractors(s *store.Store) []*models.Contractor {
	return contractors(s).All()
}

// UpdateContractor applies a partial update to a contractor.
func UpdateContractor(s *store.Store, id string, mutate func(*models.Contractor)) bool {
	return contractors(s).Update(id, mutate)
}

// DeleteContractor removes a contractor; its reviews stay in the review
// collection as orphans.
func DeleteContractor(s *store.Store, id string) bool {
	return contractors(s).Delete(id)
}

// ContractorsBySpecialization filters contractors by a specialization,
// matched case-insensitively.
func ContractorsBySpecialization(s *store.Store, specialization string) []*models.Contractor {
	return contractors(s).Filter(func(c *models.Contractor) bool {
		for _, spec := range c.Specializations {
			if strings.EqualFold(spec, specialization) {
				return true
			}
		}
		return false
	})
}

// AddContractorReview persists a review and recomputes the contractor's
// aggregate rating from all of its reviews.
func AddContractorReview(s *store.Store, review *models.ContractorReview) bool {
	if !reviews(s).Append(review) {
		return false
	}

	all := ReviewsForContractor(s, review.ContractorID)
	rating := models.AverageRatings(all)
	return contractors(s).Update(review.ContractorID, func(c *models.Contractor) {
		c.Rating = rating
		c.ReviewCount = len(all)
	})
}

// ReviewsForContractor returns all persisted reviews for a contractor.
func ReviewsForContractor(s *store.Store, contractorID string) []*models.ContractorReview {
	return reviews(s).Filter(func(r *models.ContractorReview) bool {
		return r.ContractorID == contractorID
	})
}

// RecordContractorProject bumps the contractor's project count and value
// summary after a project is awarded.
func RecordContractorProject(s *store.Store, contractorID string, value float64) bool {
	return contractors(s).Update(contractorID, func(c *models.Contractor) {
		c.ProjectCount++
		c.TotalProjectValue += value
	})
}
