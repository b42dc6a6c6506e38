// ABOUTME: Project MCP tool handlers
// ABOUTME: Implements add_project, list_projects, add_phase, and set_phase_status tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type ProjectHandlers struct {
	store *store.Store
}

func NewProjectHandlers(s *store.Store) *ProjectHandlers {
	return &ProjectHandlers{store: s}
}

type AddProjectInput struct {
	Name       string  `json:"name" jsonschema:"Project name (required)"`
	LocationID string  `json:"location_id,omitempty" jsonschema:"Location this project renovates"`
	Budget     float64 `json:"budget,omitempty" jsonschema:"Approved budget amount"`
	Status     string  `json:"status,omitempty" jsonschema:"Project status (defaults to planning)"`
}

type ProjectOutput struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	LocationID string        `json:"location_id,omitempty"`
	Status     string        `json:"status"`
	Budget     models.Budget `json:"budget"`
	PhaseCount int           `json:"phase_count"`
}

func projectToOutput(p *models.Project) ProjectOutput {
	return ProjectOutput{
		ID:         p.ID,
		Name:       p.Name,
		LocationID: p.LocationID,
		Status:     p.Status,
		Budget:     p.Budget,
		PhaseCount: len(p.Phases),
	}
}

func (h *ProjectHandlers) AddProject(_ context.Context, request *mcp.CallToolRequest, input AddProjectInput) (*mcp.CallToolResult, ProjectOutput, error) {
	if input.Name == "" {
		return nil, ProjectOutput{}, fmt.Errorf("name is required")
	}
	if input.Status != "" && !models.ValidProjectStatus(input.Status) {
		return nil, ProjectOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	p := &models.Project{
		Name:       input.Name,
		LocationID: input.LocationID,
		Status:     input.Status,
		Budget: models.Budget{
			Approved:  input.Budget,
			Remaining: input.Budget,
		},
	}
	if !db.CreateProject(h.store, p) {
		return nil, ProjectOutput{}, fmt.Errorf("failed to create project")
	}

	db.LogActivity(h.store, &models.TeamActivity{
		Type:       models.ActivityProjectCreated,
		Action:     "created project",
		TargetType: "project",
		TargetID:   p.ID,
		TargetName: p.Name,
	})
	return nil, projectToOutput(p), nil
}

type ListProjectsInput struct {
	LocationID string `json:"location_id,omitempty" jsonschema:"Filter by location ID"`
	Status     string `json:"status,omitempty" jsonschema:"Filter by project status"`
}

type ListProjectsOutput struct {
	Projects []ProjectOutput `json:"projects"`
}

func (h *ProjectHandlers) ListProjects(_ context.Context, request *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, ListProjectsOutput, error) {
	var projects []*models.Project
	switch {
	case input.LocationID != "":
		projects = db.ProjectsByLocation(h.store, input.LocationID)
	case input.Status != "":
		projects = db.ProjectsByStatus(h.store, input.Status)
	default:
		projects = db.AllProjects(h.store)
	}

	result := make([]ProjectOutput, len(projects))
	for i, p := range projects {
		result[i] = projectToOutput(p)
	}
	return nil, ListProjectsOutput{Projects: result}, nil
}

type AddPhaseInput struct {
	ProjectID string   `json:"project_id" jsonschema:"Project ID (required)"`
	Name      string   `json:"name" jsonschema:"Phase name (required)"`
	DependsOn []string `json:"depends_on,omitempty" jsonschema:"IDs of phases that must finish first"`
}

type AddPhaseOutput struct {
	PhaseID string `json:"phase_id"`
	Order   int    `json:"order"`
}

func (h *ProjectHandlers) AddPhase(_ context.Context, request *mcp.CallToolRequest, input AddPhaseInput) (*mcp.CallToolResult, AddPhaseOutput, error) {
	if input.ProjectID == "" {
		return nil, AddPhaseOutput{}, fmt.Errorf("project_id is required")
	}
	if input.Name == "" {
		return nil, AddPhaseOutput{}, fmt.Errorf("name is required")
	}

	phaseID, ok := db.AddPhase(h.store, input.ProjectID, models.ProjectPhase{
		Name:      input.Name,
		DependsOn: input.DependsOn,
	})
	if !ok {
		return nil, AddPhaseOutput{}, fmt.Errorf("project not found")
	}

	project, _ := db.GetProject(h.store, input.ProjectID)
	return nil, AddPhaseOutput{PhaseID: phaseID, Order: len(project.Phases) - 1}, nil
}

type SetPhaseStatusInput struct {
	ProjectID string `json:"project_id" jsonschema:"Project ID (required)"`
	PhaseID   string `json:"phase_id" jsonschema:"Phase ID (required)"`
	Status    string `json:"status" jsonschema:"New phase status (required)"`
}

type SetPhaseStatusOutput struct {
	PhaseID string `json:"phase_id"`
	Status  string `json:"status"`
}

func (h *ProjectHandlers) SetPhaseStatus(_ context.Context, request *mcp.CallToolRequest, input SetPhaseStatusInput) (*mcp.CallToolResult, SetPhaseStatusOutput, error) {
	if input.ProjectID == "" || input.PhaseID == "" {
		return nil, SetPhaseStatusOutput{}, fmt.Errorf("project_id and phase_id are required")
	}
	if !models.ValidPhaseStatus(input.Status) {
		return nil, SetPhaseStatusOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	if !db.SetPhaseStatus(h.store, input.ProjectID, input.PhaseID, input.Status) {
		return nil, SetPhaseStatusOutput{}, fmt.Errorf("phase not found")
	}

	if input.Status == models.PhaseCompleted {
		db.LogActivity(h.store, &models.TeamActivity{
			Type:       models.ActivityPhaseCompleted,
			Action:     "completed phase",
			TargetType: "phase",
			TargetID:   input.PhaseID,
		})
	}
	return nil, SetPhaseStatusOutput{PhaseID: input.PhaseID, Status: input.Status}, nil
}
