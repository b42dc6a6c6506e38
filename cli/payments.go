// ABOUTME: Quote and payment CLI commands
// ABOUTME: Schedule generation, payment recording, and the money summary
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/schedule"
	"github.com/harperreed/refit/store"
)

// AddQuoteCommand records a contractor quote against a project.
func AddQuoteCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-quote", flag.ExitOnError)
	project := fs.String("project", "", "Project ID (required)")
	contractor := fs.String("contractor", "", "Contractor ID")
	total := fs.Float64("total", 0, "Quote total (required)")
	currency := fs.String("currency", "EUR", "Currency code")
	_ = fs.Parse(args)

	if *project == "" {
		return fmt.Errorf("--project is required")
	}
	if *total <= 0 {
		return fmt.Errorf("--total must be positive")
	}
	if _, ok := db.GetProject(s, *project); !ok {
		return fmt.Errorf("project not found")
	}

	q := &models.Quote{
		ProjectID:    *project,
		ContractorID: *contractor,
		TotalAmount:  *total,
		Currency:     *currency,
	}
	if !db.CreateQuote(s, q) {
		return fmt.Errorf("failed to create quote")
	}

	fmt.Printf("✓ Quote created: %.2f %s (ID: %s)\n", q.TotalAmount, q.Currency, q.ID)
	return nil
}

// ScheduleCommand generates the payment schedule for a quote.
func ScheduleCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	quote := fs.String("quote", "", "Quote ID (required)")
	confirmed := fs.String("confirmed", "", "Order confirmation date (YYYY-MM-DD)")
	delivered := fs.String("delivered", "", "Delivery date (YYYY-MM-DD)")
	installed := fs.String("installed", "", "Installation complete date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *quote == "" {
		return fmt.Errorf("--quote is required")
	}

	base := schedule.BaseDates{}
	for trigger, raw := range map[string]string{
		models.TriggerOrderConfirmation:    *confirmed,
		models.TriggerDelivery:             *delivered,
		models.TriggerInstallationComplete: *installed,
	} {
		if raw == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", raw, err)
		}
		base[trigger] = d
	}

	fresh, ok := db.SchedulePayments(s, *quote, base)
	if !ok {
		return fmt.Errorf("quote not found")
	}
	if len(fresh) == 0 {
		fmt.Println("No new payments (schedule already generated)")
		return nil
	}

	fmt.Printf("✓ Scheduled %d payment(s):\n", len(fresh))
	for _, p := range fresh {
		due := "no due date yet"
		if !p.DueDate.IsZero() {
			due = "due " + p.DueDate.Format("2006-01-02")
		}
		fmt.Printf("  %.2f %s - %s (%s)\n", p.Amount, p.Currency, p.Description, due)
	}
	return nil
}

// RecordPaymentCommand records money paid against a scheduled payment.
func RecordPaymentCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("record-payment", flag.ExitOnError)
	payment := fs.String("payment", "", "Payment ID (required)")
	amount := fs.Float64("amount", 0, "Amount paid (required)")
	date := fs.String("date", "", "Paid date (YYYY-MM-DD, defaults to today)")
	_ = fs.Parse(args)

	if *payment == "" {
		return fmt.Errorf("--payment is required")
	}
	if *amount <= 0 {
		return fmt.Errorf("--amount must be positive")
	}

	paidAt := time.Now()
	if *date != "" {
		d, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		paidAt = d
	}

	if !db.RecordPaymentAmount(s, *payment, *amount, paidAt) {
		return fmt.Errorf("payment not found")
	}

	db.LogActivity(s, &models.TeamActivity{
		Type:       models.ActivityPaymentRecorded,
		Action:     "recorded payment",
		TargetType: "payment",
		TargetID:   *payment,
	})

	p, _ := db.GetPayment(s, *payment)
	fmt.Printf("✓ Payment recorded: %.2f of %.2f (%s)\n", p.PaidAmount, p.Amount, p.Status)
	return nil
}

// PaymentsCommand prints all payments and the aggregate summary.
func PaymentsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("payments", flag.ExitOnError)
	quote := fs.String("quote", "", "Limit to one quote's payments")
	overdueOnly := fs.Bool("overdue", false, "Only show overdue payments")
	_ = fs.Parse(args)

	now := time.Now()
	var payments []*models.Payment
	switch {
	case *overdueOnly:
		payments = db.OverduePayments(s, now)
	case *quote != "":
		payments = db.PaymentsByQuote(s, *quote)
	default:
		payments = db.AllPayments(s)
	}

	if len(payments) == 0 {
		fmt.Println("No payments found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DESCRIPTION\tAMOUNT\tPAID\tDUE\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "-----------\t------\t----\t---\t------\t--")

	for _, p := range payments {
		due := "-"
		if !p.DueDate.IsZero() {
			due = p.DueDate.Format("2006-01-02")
		}
		status := p.Status
		if p.OverdueAsOf(now) {
			status = "OVERDUE"
		}
		desc := p.Description
		if desc == "" {
			desc = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
			desc, p.Amount, p.PaidAmount, due, status, shortID(p.ID))
	}
	_ = w.Flush()

	stats := schedule.ComputeStats(payments, now)
	fmt.Printf("\nPlanned %.2f  Paid %.2f (%.0f%%)  Pending %.2f  Overdue %.2f\n",
		stats.TotalPlanned, stats.TotalPaid, stats.PaymentRate, stats.TotalPending, stats.TotalOverdue)
	return nil
}
