// ABOUTME: Contractor MCP tool handlers
// ABOUTME: Implements add_contractor, find_contractors, and review_contractor tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type ContractorHandlers struct {
	store *store.Store
}

func NewContractorHandlers(s *store.Store) *ContractorHandlers {
	return &ContractorHandlers{store: s}
}

type AddContractorInput struct {
	Name            string   `json:"name" jsonschema:"Contractor name (required)"`
	Company         string   `json:"company,omitempty" jsonschema:"Company name"`
	Email           string   `json:"email,omitempty" jsonschema:"Contact email"`
	Phone           string   `json:"phone,omitempty" jsonschema:"Contact phone"`
	Specializations []string `json:"specializations,omitempty" jsonschema:"Trade specializations (electrical, plumbing...)"`
}

type ContractorOutput struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Company         string   `json:"company,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	OverallRating   float64  `json:"overall_rating"`
	ReviewCount     int      `json:"review_count"`
	ProjectCount    int      `json:"project_count"`
}

func contractorToOutput(c *models.Contractor) ContractorOutput {
	return ContractorOutput{
		ID:              c.ID,
		Name:            c.Name,
		Company:         c.Company,
		Specializations: c.Specializations,
		OverallRating:   c.Rating.Overall(),
		ReviewCount:     c.ReviewCount,
		ProjectCount:    c.ProjectCount,
	}
}

func (h *ContractorHandlers) AddContractor(_ context.Context, request *mcp.CallToolRequest, input AddContractorInput) (*mcp.CallToolResult, ContractorOutput, error) {
	if input.Name == "" {
		return nil, ContractorOutput{}, fmt.Errorf("name is required")
	}

	c := &models.Contractor{
		Name:            input.Name,
		Company:         input.Company,
		Email:           input.Email,
		Phone:           input.Phone,
		Specializations: input.Specializations,
	}
	if !db.CreateContractor(h.store, c) {
		return nil, ContractorOutput{}, fmt.Errorf("failed to create contractor")
	}
	return nil, contractorToOutput(c), nil
}

type FindContractorsInput struct {
	Specialization string `json:"specialization,omitempty" jsonschema:"Filter by trade specialization"`
}

type FindContractorsOutput struct {
	Contractors []ContractorOutput `json:"contractors"`
}

func (h *ContractorHandlers) FindContractors(_ context.Context, request *mcp.CallToolRequest, input FindContractorsInput) (*mcp.CallToolResult, FindContractorsOutput, error) {
	var contractors []*models.Contractor
	if input.Specialization != "" {
		contractors = db.ContractorsBySpecialization(h.store, input.Specialization)
	} else {
		contractors = db.AllContractors(h.store)
	}

	result := make([]ContractorOutput, len(contractors))
	for i, c := range contractors {
		result[i] = contractorToOutput(c)
	}
	return nil, FindContractorsOutput{Contractors: result}, nil
}

type ReviewContractorInput struct {
	ContractorID  string  `json:"contractor_id" jsonschema:"Contractor ID (required)"`
	ProjectID     string  `json:"project_id,omitempty" jsonschema:"Project the review covers"`
	Quality       float64 `json:"quality" jsonschema:"Work quality score, 0-5"`
	Reliability   float64 `json:"reliability" jsonschema:"Reliability score, 0-5"`
	Communication float64 `json:"communication" jsonschema:"Communication score, 0-5"`
	CostAccuracy  float64 `json:"cost_accuracy" jsonschema:"Cost accuracy score, 0-5"`
	Safety        float64 `json:"safety" jsonschema:"Site safety score, 0-5"`
	Comment       string  `json:"comment,omitempty" jsonschema:"Free-form review comment"`
}

func (h *ContractorHandlers) ReviewContractor(_ context.Context, request *mcp.CallToolRequest, input ReviewContractorInput) (*mcp.CallToolResult, ContractorOutput, error) {
	if input.ContractorID == "" {
		return nil, ContractorOutput{}, fmt.Errorf("contractor_id is required")
	}
	for _, score := range []float64{input.Quality, input.Reliability, input.Communication, input.CostAccuracy, input.Safety} {
		if score < 0 || score > 5 {
			return nil, ContractorOutput{}, fmt.Errorf("scores must be between 0 and 5")
		}
	}
	if _, ok := db.GetContractor(h.store, input.ContractorID); !ok {
		return nil, ContractorOutput{}, fmt.Errorf("contractor not found")
	}

	ok := db.AddContractorReview(h.store, &models.ContractorReview{
		ContractorID: input.ContractorID,
		ProjectID:    input.ProjectID,
		Comment:      input.Comment,
		Scores: models.Rating{
			Quality:       input.Quality,
			Reliability:   input.Reliability,
			Communication: input.Communication,
			CostAccuracy:  input.CostAccuracy,
			Safety:        input.Safety,
		},
	})
	if !ok {
		return nil, ContractorOutput{}, fmt.Errorf("failed to save review")
	}

	db.LogActivity(h.store, &models.TeamActivity{
		Type:       models.ActivityContractorReview,
		Action:     "reviewed contractor",
		TargetType: "contractor",
		TargetID:   input.ContractorID,
	})

	c, _ := db.GetContractor(h.store, input.ContractorID)
	return nil, contractorToOutput(c), nil
}
