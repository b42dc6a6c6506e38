// ABOUTME: Tests for the payment scheduling engine
// ABOUTME: Covers amount distribution, due dates, idempotent merge, aggregates, warnings
package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/refit/models"
)

func pct(v float64) *float64   { return &v }
func fixed(v float64) *float64 { return &v }

func TestGenerateThirtyFortyThirty(t *testing.T) {
	terms := []models.PaymentTerm{
		{ID: "t1", Percentage: pct(30), Trigger: models.TriggerOrderConfirmation},
		{ID: "t2", Percentage: pct(40), Trigger: models.TriggerInstallationStart},
		{ID: "t3", Percentage: pct(30), Trigger: models.TriggerInstallationComplete},
	}
	anchor := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	base := BaseDates{
		models.TriggerOrderConfirmation:    anchor,
		models.TriggerInstallationStart:    anchor.AddDate(0, 1, 0),
		models.TriggerInstallationComplete: anchor.AddDate(0, 2, 0),
	}

	payments := Generate(10000, terms, base)
	if len(payments) != 3 {
		t.Fatalf("Expected 3 payments, got %d", len(payments))
	}

	want := []float64{3000, 4000, 3000}
	var sum float64
	for i, p := range payments {
		if p.Amount != want[i] {
			t.Errorf("Payment %d: expected %v, got %v", i, want[i], p.Amount)
		}
		if p.Status != models.PaymentPending {
			t.Errorf("Payment %d: expected pending, got %s", i, p.Status)
		}
		if p.PaidAmount != 0 {
			t.Errorf("Payment %d: expected zero paid amount", i)
		}
		sum += p.Amount
	}
	if sum != 10000 {
		t.Errorf("Expected payments to sum to 10000, got %v", sum)
	}
}

func TestGenerateAmountsSumToTotal(t *testing.T) {
	// Percentages summing to 100 must reproduce the total within tolerance.
	terms := []models.PaymentTerm{
		{ID: "a", Percentage: pct(12.5), Trigger: models.TriggerOrderConfirmation},
		{ID: "b", Percentage: pct(37.5), Trigger: models.TriggerDelivery},
		{ID: "c", Percentage: pct(33.4), Trigger: models.TriggerInstallationStart},
		{ID: "d", Percentage: pct(16.6), Trigger: models.TriggerInstallationComplete},
	}
	base := BaseDates{}
	total := 9871.23

	var sum float64
	for _, p := range Generate(total, terms, base) {
		sum += p.Amount
	}
	if math.Abs(sum-total) > 0.01 {
		t.Errorf("Expected sum within tolerance of %v, got %v", total, sum)
	}
}

func TestGenerateFixedAmountWinsOverPercentage(t *testing.T) {
	terms := []models.PaymentTerm{
		{ID: "t", Percentage: pct(50), FixedAmount: fixed(1234), Trigger: models.TriggerApproval},
	}
	payments := Generate(10000, terms, BaseDates{models.TriggerApproval: time.Now()})
	if payments[0].Amount != 1234 {
		t.Errorf("Expected fixed amount 1234, got %v", payments[0].Amount)
	}
}

func TestGenerateDueDates(t *testing.T) {
	delivery := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	custom := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	terms := []models.PaymentTerm{
		{ID: "t1", Percentage: pct(50), Trigger: models.TriggerDelivery, DueAfterDays: 14},
		{ID: "t2", Percentage: pct(50), Trigger: models.TriggerCustomDate, CustomDueDate: &custom},
		{ID: "t3", FixedAmount: fixed(100), Trigger: models.TriggerApproval}, // no base date supplied
	}

	payments := Generate(1000, terms, BaseDates{models.TriggerDelivery: delivery})

	if got := payments[0].DueDate; !got.Equal(delivery.AddDate(0, 0, 14)) {
		t.Errorf("Expected delivery+14d, got %v", got)
	}
	if got := payments[1].DueDate; !got.Equal(custom) {
		t.Errorf("Expected custom date, got %v", got)
	}
	if !payments[2].DueDate.IsZero() {
		t.Errorf("Missing base date should leave due date zero, got %v", payments[2].DueDate)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	terms := []models.PaymentTerm{
		{ID: "t1", Percentage: pct(60), Trigger: models.TriggerOrderConfirmation},
		{ID: "t2", Percentage: pct(40), Trigger: models.TriggerDelivery},
	}
	base := BaseDates{
		models.TriggerOrderConfirmation: time.Now(),
		models.TriggerDelivery:          time.Now(),
	}

	first := Generate(5000, terms, base)
	fresh := Merge(nil, first)
	if len(fresh) != 2 {
		t.Fatalf("Expected 2 fresh payments, got %d", len(fresh))
	}

	// Re-running against existing payments creates nothing new.
	again := Merge(fresh, Generate(5000, terms, base))
	if len(again) != 0 {
		t.Errorf("Expected no duplicates on re-run, got %d", len(again))
	}

	// A newly added term is the only thing generated.
	terms = append(terms, models.PaymentTerm{ID: "t3", FixedAmount: fixed(500), Trigger: models.TriggerApproval})
	base[models.TriggerApproval] = time.Now()
	added := Merge(fresh, Generate(5000, terms, base))
	if len(added) != 1 || added[0].PaymentTermID != "t3" {
		t.Errorf("Expected only the new term's payment, got %d", len(added))
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	payments := []*models.Payment{
		{Status: models.PaymentPaid, Amount: 3000, PaidAmount: 3000, DueDate: now.AddDate(0, 0, -30)},
		{Status: models.PaymentPartial, Amount: 4000, PaidAmount: 1000, DueDate: now.AddDate(0, 0, -5)},
		{Status: models.PaymentPending, Amount: 3000, DueDate: now.AddDate(0, 0, 20)},
		{Status: models.PaymentCancelled, Amount: 9999, DueDate: now.AddDate(0, 0, -1)},
	}

	st := ComputeStats(payments, now)
	if st.TotalPlanned != 10000 {
		t.Errorf("Expected planned 10000, got %v", st.TotalPlanned)
	}
	if st.TotalPaid != 4000 {
		t.Errorf("Expected paid 4000, got %v", st.TotalPaid)
	}
	if st.TotalPending != 6000 {
		t.Errorf("Expected pending 6000, got %v", st.TotalPending)
	}
	if st.TotalOverdue != 3000 {
		t.Errorf("Expected overdue 3000 (the partial), got %v", st.TotalOverdue)
	}
	if st.PaymentRate != 40 {
		t.Errorf("Expected rate 40%%, got %v", st.PaymentRate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, time.Now())
	if st.PaymentRate != 0 {
		t.Errorf("Expected zero rate with no payments, got %v", st.PaymentRate)
	}
}

func TestVerifyTermsWarnsButNeverRejects(t *testing.T) {
	good := []models.PaymentTerm{
		{Percentage: pct(50), Trigger: models.TriggerOrderConfirmation},
		{Percentage: pct(50), Trigger: models.TriggerDelivery},
	}
	if warnings := VerifyTerms(8000, good); len(warnings) != 0 {
		t.Errorf("Expected no warnings for complete terms, got %v", warnings)
	}

	short := []models.PaymentTerm{
		{Percentage: pct(30), Trigger: models.TriggerOrderConfirmation},
	}
	if warnings := VerifyTerms(8000, short); len(warnings) == 0 {
		t.Error("Expected coverage warning for 30% terms")
	}

	both := []models.PaymentTerm{
		{Percentage: pct(100), FixedAmount: fixed(8000), Trigger: models.TriggerDelivery},
	}
	if warnings := VerifyTerms(8000, both); len(warnings) == 0 {
		t.Error("Expected warning for percentage+fixed on one term")
	}

	// Warnings never block generation.
	if payments := Generate(8000, short, BaseDates{}); len(payments) != 1 {
		t.Error("Generation must proceed despite warnings")
	}
}
