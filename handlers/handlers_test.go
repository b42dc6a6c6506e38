// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Validates tool input validation and end-to-end effects on the store
package handlers

import (
	"context"
	"testing"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddProjectHandler(t *testing.T) {
	s := setupTestStore(t)
	handler := NewProjectHandlers(s)

	_, out, err := handler.AddProject(context.Background(), nil, AddProjectInput{
		Name:   "Flagship refit",
		Budget: 50000,
	})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	if out.ID == "" {
		t.Error("ID was not set")
	}
	if out.Status != models.ProjectPlanning {
		t.Errorf("Expected planning status, got %q", out.Status)
	}
	if out.Budget.Remaining != 50000 {
		t.Errorf("Expected remaining 50000, got %v", out.Budget.Remaining)
	}

	// Creation lands in the activity log.
	if n := len(db.AllProjects(s)); n != 1 {
		t.Errorf("Expected 1 stored project, got %d", n)
	}
}

func TestAddProjectRequiresName(t *testing.T) {
	s := setupTestStore(t)
	handler := NewProjectHandlers(s)

	if _, _, err := handler.AddProject(context.Background(), nil, AddProjectInput{}); err == nil {
		t.Error("Expected error for missing name")
	}
}

func TestSetPaymentTermsHandlerSurfacesWarnings(t *testing.T) {
	s := setupTestStore(t)
	ph := NewProjectHandlers(s)
	qh := NewQuoteHandlers(s)

	_, proj, _ := ph.AddProject(context.Background(), nil, AddProjectInput{Name: "Refit"})
	_, quote, err := qh.AddQuote(context.Background(), nil, AddQuoteInput{
		ProjectID:   proj.ID,
		TotalAmount: 10000,
	})
	if err != nil {
		t.Fatalf("AddQuote failed: %v", err)
	}

	half := 50.0
	_, out, err := qh.SetPaymentTerms(context.Background(), nil, SetPaymentTermsInput{
		QuoteID: quote.ID,
		Terms: []PaymentTermInput{
			{Description: "Deposit", Percentage: &half, Trigger: models.TriggerOrderConfirmation},
		},
	})
	if err != nil {
		t.Fatalf("SetPaymentTerms failed: %v", err)
	}
	if len(out.Warnings) == 0 {
		t.Error("Expected a coverage warning for 50% terms")
	}
	if out.TermCount != 1 {
		t.Errorf("Expected 1 term stored, got %d", out.TermCount)
	}
}

func TestSetPaymentTermsRejectsBadTrigger(t *testing.T) {
	s := setupTestStore(t)
	qh := NewQuoteHandlers(s)

	pct := 100.0
	_, _, err := qh.SetPaymentTerms(context.Background(), nil, SetPaymentTermsInput{
		QuoteID: "any",
		Terms:   []PaymentTermInput{{Percentage: &pct, Trigger: "when_i_feel_like_it"}},
	})
	if err == nil {
		t.Error("Expected error for unknown trigger")
	}
}

func TestGenerateScheduleAndRecordPayment(t *testing.T) {
	s := setupTestStore(t)
	ph := NewProjectHandlers(s)
	qh := NewQuoteHandlers(s)
	pay := NewPaymentHandlers(s)
	ctx := context.Background()

	_, proj, _ := ph.AddProject(ctx, nil, AddProjectInput{Name: "Refit"})
	_, quote, _ := qh.AddQuote(ctx, nil, AddQuoteInput{ProjectID: proj.ID, TotalAmount: 10000})

	dep, rest := 30.0, 70.0
	qh.SetPaymentTerms(ctx, nil, SetPaymentTermsInput{
		QuoteID: quote.ID,
		Terms: []PaymentTermInput{
			{Description: "Deposit", Percentage: &dep, Trigger: models.TriggerOrderConfirmation},
			{Description: "Final", Percentage: &rest, Trigger: models.TriggerInstallationComplete},
		},
	})

	_, sched, err := pay.GenerateSchedule(ctx, nil, GenerateScheduleInput{
		QuoteID:               quote.ID,
		OrderConfirmationDate: "2026-03-01",
	})
	if err != nil {
		t.Fatalf("GenerateSchedule failed: %v", err)
	}
	if len(sched.Created) != 2 {
		t.Fatalf("Expected 2 payments, got %d", len(sched.Created))
	}
	if sched.Created[0].Amount != 3000 {
		t.Errorf("Expected 3000 deposit, got %v", sched.Created[0].Amount)
	}

	_, rec, err := pay.RecordPayment(ctx, nil, RecordPaymentInput{
		PaymentID: sched.Created[0].ID,
		Amount:    3000,
		PaidDate:  "2026-03-02",
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if rec.Status != models.PaymentPaid {
		t.Errorf("Expected paid, got %q", rec.Status)
	}

	_, summary, _ := pay.PaymentSummary(ctx, nil, PaymentSummaryInput{QuoteID: quote.ID})
	if summary.Stats.TotalPaid != 3000 {
		t.Errorf("Expected total paid 3000, got %v", summary.Stats.TotalPaid)
	}
}

func TestAddCommentHandlerResolvesMentions(t *testing.T) {
	s := setupTestStore(t)
	ch := NewCommentHandlers(s)

	sam := &models.TeamMember{Name: "Samantha Reyes"}
	db.CreateTeamMember(s, sam)

	_, out, err := ch.AddComment(context.Background(), nil, AddCommentInput{
		EntityType: "task",
		EntityID:   "t1",
		AuthorID:   "author",
		Content:    "waiting on @Samantha Reyes for the permit",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if len(out.Mentions) != 1 || out.Mentions[0] != sam.ID {
		t.Errorf("Expected mention of %s, got %v", sam.ID, out.Mentions)
	}
}

func TestListNotificationsGrouped(t *testing.T) {
	s := setupTestStore(t)
	nh := NewNotificationHandlers(s)

	db.AddNotification(s, &models.Notification{Type: models.NotifyTaskAssigned, Message: "a", Metadata: &models.NotificationMeta{ProjectID: "P1"}})
	db.AddNotification(s, &models.Notification{Type: models.NotifyTaskAssigned, Message: "b", Metadata: &models.NotificationMeta{ProjectID: "P1"}})
	db.AddNotification(s, &models.Notification{Type: models.NotifySystem, Message: "c"})

	_, out, err := nh.ListNotifications(context.Background(), nil, ListNotificationsInput{Grouped: true})
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(out.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(out.Groups))
	}
	if out.Groups[0].Count+out.Groups[1].Count != 3 {
		t.Error("Grouping lost notifications")
	}
}

func TestSuggestAssigneesHandler(t *testing.T) {
	s := setupTestStore(t)
	th := NewTaskHandlers(s)
	ctx := context.Background()

	db.CreateTeamMember(s, &models.TeamMember{
		Name:                "Expert",
		Skills:              []string{"electrical"},
		WeeklyCapacityHours: 40,
		OnTimeCompletion:    100,
		TasksCompleted:      20,
	})
	db.CreateTeamMember(s, &models.TeamMember{
		Name:                "Novice",
		WeeklyCapacityHours: 40,
	})

	_, task, _ := th.AddTask(ctx, nil, AddTaskInput{
		ProjectID:      "p1",
		Title:          "Rewire mains",
		RequiredSkills: []string{"electrical"},
		EstimatedHours: 8,
	})

	_, out, err := th.SuggestAssignees(ctx, nil, SuggestAssigneesInput{TaskID: task.ID})
	if err != nil {
		t.Fatalf("SuggestAssignees failed: %v", err)
	}
	if len(out.Candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(out.Candidates))
	}
	if out.Candidates[0].Name != "Expert" {
		t.Errorf("Expected Expert ranked first, got %s", out.Candidates[0].Name)
	}
}
