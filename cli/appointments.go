// ABOUTME: Appointment CLI commands
// ABOUTME: Schedule and list site visits, inspections, deliveries, and meetings
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

// AddAppointmentCommand schedules a new appointment.
func AddAppointmentCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-appointment", flag.ExitOnError)
	title := fs.String("title", "", "Appointment title (required)")
	typ := fs.String("type", "", "Type (site_visit, contractor_meeting, inspection, delivery, other)")
	date := fs.String("date", "", "Date as YYYY-MM-DD (required)")
	start := fs.String("start", "", "Start time as HH:MM")
	end := fs.String("end", "", "End time as HH:MM")
	project := fs.String("project", "", "Related project ID")
	contractor := fs.String("contractor", "", "Related contractor ID")
	notes := fs.String("notes", "", "Free-form notes")
	_ = fs.Parse(args)

	if *title == "" || *date == "" {
		return fmt.Errorf("--title and --date are required")
	}
	if _, err := time.Parse("2006-01-02", *date); err != nil {
		return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", *date)
	}

	a := &models.Appointment{
		Title:        *title,
		Type:         *typ,
		Date:         *date,
		StartTime:    *start,
		EndTime:      *end,
		ProjectID:    *project,
		ContractorID: *contractor,
		Notes:        *notes,
	}
	if !db.CreateAppointment(s, a) {
		return fmt.Errorf("failed to create appointment")
	}

	fmt.Printf("✓ Appointment scheduled: %s on %s (ID: %s)\n", a.Title, a.Date, a.ID)
	return nil
}

// AppointmentsCommand lists appointments.
func AppointmentsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("appointments", flag.ExitOnError)
	from := fs.String("from", "", "Range start date YYYY-MM-DD (inclusive)")
	to := fs.String("to", "", "Range end date YYYY-MM-DD (inclusive)")
	upcoming := fs.Bool("upcoming", false, "Only pending and confirmed appointments from today on")
	status := fs.String("status", "", "Set status of --id instead of listing")
	id := fs.String("id", "", "Appointment ID for --status")
	_ = fs.Parse(args)

	if *status != "" {
		if *id == "" {
			return fmt.Errorf("--status requires --id")
		}
		if !models.ValidAppointmentStatus(*status) {
			return fmt.Errorf("invalid status %q", *status)
		}
		if !db.UpdateAppointment(s, *id, func(a *models.Appointment) {
			a.Status = *status
		}) {
			return fmt.Errorf("appointment not found")
		}
		fmt.Printf("✓ Appointment %s → %s\n", shortID(*id), *status)
		return nil
	}

	var appts []*models.Appointment
	if *upcoming {
		appts = db.UpcomingAppointments(s, time.Now().Format("2006-01-02"))
	} else {
		appts = db.AppointmentsByDateRange(s, *from, *to)
	}

	if len(appts) == 0 {
		fmt.Println("No appointments found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tTIME\tTITLE\tTYPE\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t-----\t----\t------\t--")

	for _, a := range appts {
		slot := a.StartTime
		if a.EndTime != "" {
			slot = a.StartTime + "-" + a.EndTime
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Date, slot, a.Title, a.Type, a.Status, shortID(a.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d appointment(s)\n", len(appts))
	return nil
}
