// ABOUTME: Repository for projects and their ordered phases
// ABOUTME: Budget fields are written as given; remaining is the caller's duty
package db

import (
	"github.com/google/uuid"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func projects(s *store.Store) *store.Collection[*models.Project] {
	return store.NewCollection[*models.Project](s, store.KeyProjects)
}

// CreateProject persists a new project.
func CreateProject(s *store.Store, p *models.Project) bool {
	if p.Status == "" {
		p.Status = models.ProjectPlanning
	}
	return projects(s).Append(p)
}

// GetProject returns the project with the given id.
func GetProject(s *store.Store, id string) (*models.Project, bool) {
	return projects(s).Find(id)
}

// AllProjects returns every project.
func AllProjects(s *store.Store) []*models.Project {
	return projects(s).All()
}

// UpdateProject applies a partial update to a project.
func UpdateProject(s *store.Store, id string, mutate func(*models.Project)) bool {
	return projects(s).Update(id, mutate)
}

// DeleteProject removes a project. Quotes, tasks, and appointments that
// reference it are left untouched.
func DeleteProject(s *store.Store, id string) bool {
	return projects(s).Delete(id)
}

// ProjectsByLocation filters projects by their location.
func ProjectsByLocation(s *store.Store, locationID string) []*models.Project {
	return projects(s).Filter(func(p *models.Project) bool {
		return p.LocationID == locationID
	})
}

// ProjectsByStatus filters projects by status.
func ProjectsByStatus(s *store.Store, status string) []*models.Project {
	return projects(s).Filter(func(p *models.Project) bool {
		return p.Status == status
	})
}

// AddPhase appends a phase to the project's ordered list, assigning its id
// and order index.
func AddPhase(s *store.Store, projectID string, phase models.ProjectPhase) (string, bool) {
	if phase.ID == "" {
		phase.ID = uuid.New().String()
	}
	if phase.Status == "" {
		phase.Status = models.PhasePending
	}
	id := phase.ID
	ok := projects(s).Update(projectID, func(p *models.Project) {
		phase.Order = len(p.Phases)
		p.Phases = append(p.Phases, phase)
	})
	if !ok {
		return "", false
	}
	return id, true
}

// SetPhaseStatus updates one phase's status. Dependencies are not checked;
// the board surfaces blocked states, it does not enforce them.
func SetPhaseStatus(s *store.Store, projectID, phaseID, status string) bool {
	updated := false
	ok := projects(s).Update(projectID, func(p *models.Project) {
		if phase := p.Phase(phaseID); phase != nil {
			phase.Status = status
			updated = true
		}
	})
	return ok && updated
}

// AssignContractorToPhase records a contractor on a phase. Adding the same
// contractor twice is a no-op.
func AssignContractorToPhase(s *store.Store, projectID, phaseID, contractorID string) bool {
	assigned := false
	ok := projects(s).Update(projectID, func(p *models.Project) {
		phase := p.Phase(phaseID)
		if phase == nil {
			return
		}
		for _, id := range phase.ContractorIDs {
			if id == contractorID {
				assigned = true
				return
			}
		}
		phase.ContractorIDs = append(phase.ContractorIDs, contractorID)
		assigned = true
	})
	return ok && assigned
}

// RecordSpend adds to the project's spent amount and keeps
// remaining = approved - spent, the reconciliation the budget fields
// themselves never do.
func RecordSpend(s *store.Store, projectID string, amount float64) bool {
	return projects(s).Update(projectID, func(p *models.Project) {
		p.Budget.Spent += amount
		p.Budget.Remaining = p.Budget.Approved - p.Budget.Spent
	})
}
