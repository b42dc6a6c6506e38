// ABOUTME: Project and phase entities with budget tracking
// ABOUTME: Budget fields are caller-maintained, never auto-reconciled
package models

import "time"

// Project statuses.
const (
	ProjectPlanning   = "planning"
	ProjectApproved   = "approved"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

// Phase statuses.
const (
	PhasePending    = "pending"
	PhaseInProgress = "in_progress"
	PhaseCompleted  = "completed"
	PhaseBlocked    = "blocked"
)

// Budget holds planned/approved/spent/remaining amounts. Remaining is not
// derived on read; whoever records spend keeps remaining = approved - spent.
type Budget struct {
	Planned   float64 `json:"planned"`
	Approved  float64 `json:"approved"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// ProjectPhase is an ordered sub-stage of a project. Dependencies reference
// other phase ids within the same project; there is no cycle detection.
type ProjectPhase struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	Order         int        `json:"order"`
	DependsOn     []string   `json:"dependsOn,omitempty"`
	ContractorIDs []string   `json:"contractorIds,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

type Project struct {
	Meta
	LocationID  string         `json:"locationId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status"`
	Budget      Budget         `json:"budget"`
	Phases      []ProjectPhase `json:"phases,omitempty"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
}

// Phase returns the phase with the given id, or nil when the project has no
// such phase.
func (p *Project) Phase(phaseID string) *ProjectPhase {
	for i := range p.Phases {
		if p.Phases[i].ID == phaseID {
			return &p.Phases[i]
		}
	}
	return nil
}

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanning, ProjectApproved, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// ValidPhaseStatus reports whether s is a known phase status.
func ValidPhaseStatus(s string) bool {
	switch s {
	case PhasePending, PhaseInProgress, PhaseCompleted, PhaseBlocked:
		return true
	}
	return false
}
