// ABOUTME: Repository for appointments with date range queries
// ABOUTME: Range filtering is lexicographic over YYYY-MM-DD strings
package db

import (
	"sort"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func appointments(s *store.Store) *store.Collection[*models.Appointment] {
	return store.NewCollection[*models.Appointment](s, store.KeyAppointments)
}

// CreateAppointment persists a new appointment. Status defaults to pending.
func CreateAppointment(s *store.Store, a *models.Appointment) bool {
	if a.Status == "" {
		a.Status = models.AppointmentPending
	}
	return appointments(s).Append(a)
}

// GetAppointment returns the appointment with the given id.
func GetAppointment(s *store.Store, id string) (*models.Appointment, bool) {
	return appointments(s).Find(id)
}

// AllAppointments returns every appointment.
func AllAppointments(s *store.Store) []*models.Appointment {
	return appointments(s).All()
}

// UpdateAppointment applies a partial update to an appointment.
func UpdateAppointment(s *store.Store, id string, mutate func(*models.Appointment)) bool {
	return appointments(s).Update(id, mutate)
}

// DeleteAppointment removes an appointment.
func DeleteAppointment(s *store.Store, id string) bool {
	return appointments(s).Delete(id)
}

// AppointmentsByDateRange returns appointments whose date falls within
// [from, to] inclusive, sorted by date then start time. Empty bounds are
// open-ended.
func AppointmentsByDateRange(s *store.Store, from, to string) []*models.Appointment {
	matched := appointments(s).Filter(func(a *models.Appointment) bool {
		if from != "" && a.Date < from {
			return false
		}
		if to != "" && a.Date > to {
			return false
		}
		return true
	})
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].StartTime < matched[j].StartTime
	})
	return matched
}

// AppointmentsByStatus returns all appointments in the given status.
func AppointmentsByStatus(s *store.Store, status string) []*models.Appointment {
	return appointments(s).Filter(func(a *models.Appointment) bool {
		return a.Status == status
	})
}

// UpcomingAppointments returns pending and confirmed appointments on or after
// today, soonest first.
func UpcomingAppointments(s *store.Store, today string) []*models.Appointment {
	upcoming := AppointmentsByDateRange(s, today, "")
	kept := upcoming[:0]
	for _, a := range upcoming {
		if a.Status == models.AppointmentPending || a.Status == models.AppointmentConfirmed {
			kept = append(kept, a)
		}
	}
	return kept
}
