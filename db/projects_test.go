// ABOUTME: Tests for the project repository
// ABOUTME: Covers phase ordering, contractor assignment, and budget spend
package db

import (
	"testing"

	"github.com/harperreed/refit/models"
)

func TestCreateProjectDefaultsStatus(t *testing.T) {
	s := setupTestStore(t)

	p := &models.Project{Name: "Kitchen refit"}
	if !CreateProject(s, p) {
		t.Fatal("CreateProject failed")
	}
	got, ok := GetProject(s, p.ID)
	if !ok {
		t.Fatal("project not found after create")
	}
	if got.Status != models.ProjectPlanning {
		t.Errorf("Expected status %q, got %q", models.ProjectPlanning, got.Status)
	}
}

func TestAddPhaseAssignsOrder(t *testing.T) {
	s := setupTestStore(t)

	p := &models.Project{Name: "Store remodel"}
	CreateProject(s, p)

	firstID, ok := AddPhase(s, p.ID, models.ProjectPhase{Name: "Demolition"})
	if !ok {
		t.Fatal("AddPhase failed")
	}
	secondID, _ := AddPhase(s, p.ID, models.ProjectPhase{Name: "Electrical"})

	got, _ := GetProject(s, p.ID)
	if len(got.Phases) != 2 {
		t.Fatalf("Expected 2 phases, got %d", len(got.Phases))
	}
	if got.Phases[0].ID != firstID || got.Phases[0].Order != 0 {
		t.Errorf("first phase id=%s order=%d", got.Phases[0].ID, got.Phases[0].Order)
	}
	if got.Phases[1].ID != secondID || got.Phases[1].Order != 1 {
		t.Errorf("second phase id=%s order=%d", got.Phases[1].ID, got.Phases[1].Order)
	}
	if got.Phases[0].Status != models.PhasePending {
		t.Errorf("Expected pending phase, got %q", got.Phases[0].Status)
	}
}

func TestAddPhaseMissingProject(t *testing.T) {
	s := setupTestStore(t)

	if _, ok := AddPhase(s, "nope", models.ProjectPhase{Name: "Demolition"}); ok {
		t.Error("Expected AddPhase to fail for missing project")
	}
}

func TestAssignContractorToPhaseDedupes(t *testing.T) {
	s := setupTestStore(t)

	p := &models.Project{Name: "Cafe refit"}
	CreateProject(s, p)
	phaseID, _ := AddPhase(s, p.ID, models.ProjectPhase{Name: "Plumbing"})

	if !AssignContractorToPhase(s, p.ID, phaseID, "contractor-1") {
		t.Fatal("first assignment failed")
	}
	if !AssignContractorToPhase(s, p.ID, phaseID, "contractor-1") {
		t.Fatal("repeat assignment should still report success")
	}

	got, _ := GetProject(s, p.ID)
	if n := len(got.Phase(phaseID).ContractorIDs); n != 1 {
		t.Errorf("Expected 1 contractor on phase, got %d", n)
	}
}

func TestSetPhaseStatusUnknownPhase(t *testing.T) {
	s := setupTestStore(t)

	p := &models.Project{Name: "Cafe refit"}
	CreateProject(s, p)

	if SetPhaseStatus(s, p.ID, "ghost", models.PhaseInProgress) {
		t.Error("Expected SetPhaseStatus to fail for unknown phase")
	}
}

func TestRecordSpendReconcilesRemaining(t *testing.T) {
	s := setupTestStore(t)

	p := &models.Project{Name: "Bar refit", Budget: models.Budget{Approved: 10000}}
	CreateProject(s, p)

	RecordSpend(s, p.ID, 2500)
	RecordSpend(s, p.ID, 1500)

	got, _ := GetProject(s, p.ID)
	if got.Budget.Spent != 4000 {
		t.Errorf("Expected spent 4000, got %v", got.Budget.Spent)
	}
	if got.Budget.Remaining != 6000 {
		t.Errorf("Expected remaining 6000, got %v", got.Budget.Remaining)
	}
}

func TestProjectsByLocation(t *testing.T) {
	s := setupTestStore(t)

	CreateProject(s, &models.Project{Name: "A", LocationID: "loc-1"})
	CreateProject(s, &models.Project{Name: "B", LocationID: "loc-2"})
	CreateProject(s, &models.Project{Name: "C", LocationID: "loc-1"})

	if n := len(ProjectsByLocation(s, "loc-1")); n != 2 {
		t.Errorf("Expected 2 projects at loc-1, got %d", n)
	}
}
