// ABOUTME: Appointment entity for scheduled site visits, inspections, deliveries
// ABOUTME: Dates and times are plain strings, as entered
package models

// Appointment types.
const (
	AppointmentSiteVisit         = "site_visit"
	AppointmentContractorMeeting = "contractor_meeting"
	AppointmentInspection        = "inspection"
	AppointmentDelivery          = "delivery"
	AppointmentOther             = "other"
)

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment dates are YYYY-MM-DD strings and times HH:MM strings, which
// keeps range filtering a lexicographic comparison.
// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

type Appointment struct {
	Meta
	Title        string `json:"title"`
	Type         string `json:"type,omitempty"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	LocationID   string `json:"locationId,omitempty"`
	ProjectID    string `json:"projectId,omitempty"`
	ContractorID string `json:"contractorId,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
