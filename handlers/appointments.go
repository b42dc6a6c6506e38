// ABOUTME: Appointment MCP tool handlers
// ABOUTME: Implements add_appointment, list_appointments, and set_appointment_status tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type AppointmentHandlers struct {
	store *store.Store
}

func NewAppointmentHandlers(s *store.Store) *AppointmentHandlers {
	return &AppointmentHandlers{store: s}
}

type AddAppointmentInput struct {
	Title        string `json:"title" jsonschema:"Appointment title (required)"`
	Type         string `json:"type,omitempty" jsonschema:"Appointment type (site_visit, contractor_meeting, inspection, delivery, other)"`
	Date         string `json:"date" jsonschema:"Date as YYYY-MM-DD (required)"`
	StartTime    string `json:"start_time,omitempty" jsonschema:"Start time as HH:MM"`
	EndTime      string `json:"end_time,omitempty" jsonschema:"End time as HH:MM"`
	ProjectID    string `json:"project_id,omitempty" jsonschema:"Related project ID"`
	ContractorID string `json:"contractor_id,omitempty" jsonschema:"Related contractor ID"`
	Notes        string `json:"notes,omitempty" jsonschema:"Free-form notes"`
}

type AppointmentOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
}

func appointmentToOutput(a *models.Appointment) AppointmentOutput {
	return AppointmentOutput{
		ID:        a.ID,
		Title:     a.Title,
		Type:      a.Type,
		Status:    a.Status,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		ProjectID: a.ProjectID,
	}
}

func (h *AppointmentHandlers) AddAppointment(_ context.Context, request *mcp.CallToolRequest, input AddAppointmentInput) (*mcp.CallToolResult, AppointmentOutput, error) {
	if input.Title == "" {
		return nil, AppointmentOutput{}, fmt.Errorf("title is required")
	}
	if input.Date == "" {
		return nil, AppointmentOutput{}, fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, AppointmentOutput{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", input.Date)
	}

	a := &models.Appointment{
		Title:        input.Title,
		Type:         input.Type,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		ProjectID:    input.ProjectID,
		ContractorID: input.ContractorID,
		Notes:        input.Notes,
	}
	if !db.CreateAppointment(h.store, a) {
		return nil, AppointmentOutput{}, fmt.Errorf("failed to create appointment")
	}
	return nil, appointmentToOutput(a), nil
}

type ListAppointmentsInput struct {
	From     string `json:"from,omitempty" jsonschema:"Range start date YYYY-MM-DD (inclusive)"`
	To       string `json:"to,omitempty" jsonschema:"Range end date YYYY-MM-DD (inclusive)"`
	Status   string `json:"status,omitempty" jsonschema:"Filter by status"`
	Upcoming bool   `json:"upcoming,omitempty" jsonschema:"Only pending and confirmed appointments from today on"`
}

type ListAppointmentsOutput struct {
	Appointments []AppointmentOutput `json:"appointments"`
}

func (h *AppointmentHandlers) ListAppointments(_ context.Context, request *mcp.CallToolRequest, input ListAppointmentsInput) (*mcp.CallToolResult, ListAppointmentsOutput, error) {
	var appts []*models.Appointment
	switch {
	case input.Upcoming:
		appts = db.UpcomingAppointments(h.store, time.Now().Format("2006-01-02"))
	case input.Status != "":
		appts = db.AppointmentsByStatus(h.store, input.Status)
	default:
		appts = db.AppointmentsByDateRange(h.store, input.From, input.To)
	}

	result := make([]AppointmentOutput, len(appts))
	for i, a := range appts {
		result[i] = appointmentToOutput(a)
	}
	return nil, ListAppointmentsOutput{Appointments: result}, nil
}

type SetAppointmentStatusInput struct {
	ID     string `json:"id" jsonschema:"Appointment ID (required)"`
	Status string `json:"status" jsonschema:"New status (pending, confirmed, cancelled, completed)"`
}

func (h *AppointmentHandlers) SetAppointmentStatus(_ context.Context, request *mcp.CallToolRequest, input SetAppointmentStatusInput) (*mcp.CallToolResult, AppointmentOutput, error) {
	if input.ID == "" {
		return nil, AppointmentOutput{}, fmt.Errorf("id is required")
	}
	if !models.ValidAppointmentStatus(input.Status) {
		return nil, AppointmentOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	if !db.UpdateAppointment(h.store, input.ID, func(a *models.Appointment) {
		a.Status = input.Status
	}) {
		return nil, AppointmentOutput{}, fmt.Errorf("appointment not found")
	}
	a, _ := db.GetAppointment(h.store, input.ID)
	return nil, appointmentToOutput(a), nil
}
