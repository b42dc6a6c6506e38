// ABOUTME: Contractor entity with specializations and aggregate rating
// ABOUTME: Ratings are averaged from separately persisted ContractorReview records
package models

// Rating holds the five review sub-scores (0-5 each).
type Rating struct {
	Quality       float64 `json:"quality"`
	Reliability   float64 `json:"reliability"`
	Communication float64 `json:"communication"`
	CostAccuracy  float64 `json:"costAccuracy"`
	Safety        float64 `json:"safety"`
}

// Overall averages the five sub-scores.
func (r Rating) Overall() float64 {
	return (r.Quality + r.Reliability + r.Communication + r.CostAccuracy + r.Safety) / 5
}

type Contractor struct {
	Meta
	Name              string   `json:"name"`
	Company           string   `json:"company,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Specializations   []string `json:"specializations,omitempty"`
	Certifications    []string `json:"certifications,omitempty"`
	Rating            Rating   `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	ProjectCount      int      `json:"projectCount"`
	TotalProjectValue float64  `json:"totalProjectValue"`
	Notes             string   `json:"notes,omitempty"`
}

// ContractorReview is persisted separately from the contractor; the
// contractor's aggregate rating is recomputed whenever a review is added.
type ContractorReview struct {
	Meta
	ContractorID string `json:"contractorId"`
	ProjectID    string `json:"projectId,omitempty"`
	Reviewer     string `json:"reviewer,omitempty"`
	Scores       Rating `json:"scores"`
	Comment      string `json:"comment,omitempty"`
}

// AverageRatings averages sub-scores across reviews. Returns a zero Rating
// for an empty slice.
func AverageRatings(reviews []*ContractorReview) Rating {
	if len(reviews) == 0 {
		return Rating{}
	}
	var sum Rating
	for _, rev := range reviews {
		sum.Quality += rev.Scores.Quality
		sum.Reliability += rev.Scores.Reliability
		sum.Communication += rev.Scores.Communication
		sum.CostAccuracy += rev.Scores.CostAccuracy
		sum.Safety += rev.Scores.Safety
	}
	n := float64(len(reviews))
	return Rating{
		Quality:       sum.Quality / n,
		Reliability:   sum.Reliability / n,
		Communication: sum.Communication / n,
		CostAccuracy:  sum.CostAccuracy / n,
		Safety:        sum.Safety / n,
	}
}
