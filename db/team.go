// ABOUTME: Repository for team members and the current-user record
// ABOUTME: The current user is a single object, not a collection row
package db

import (
	"strings"

	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func teamMembers(s *store.Store) *store.Collection[*models.TeamMember] {
	return store.NewCollection[*models.TeamMember](s, store.KeyUsers)
}

// CreateTeamMember persists a new team member. New members start available.
func CreateTeamMember(s *store.Store, m *models.TeamMember) bool {
	m.Available = true
	return teamMembers(s).Append(m)
}

// GetTeamMember returns the member with the given id.
func GetTeamMember(s *store.Store, id string) (*models.TeamMember, bool) {
	return teamMembers(s).Find(id)
}

// AllTeamMembers returns the whole roster.
func AllTeamMembers(s *store.Store) []*models.TeamMember {
	return teamMembers(s).All()
}

// UpdateTeamMember applies a partial update to a member.
func UpdateTeamMember(s *store.Store, id string, mutate func(*models.TeamMember)) bool {
	return teamMembers(s).Update(id, mutate)
}

// DeleteTeamMember removes a member from the roster. Their task assignments
// and mentions stay as recorded.
func DeleteTeamMember(s *store.Store, id string) bool {
	return teamMembers(s).Delete(id)
}

// AvailableTeamMembers returns members currently open for assignment.
func AvailableTeamMembers(s *store.Store) []*models.TeamMember {
	return teamMembers(s).Filter(func(m *models.TeamMember) bool {
		return m.Available
	})
}

// FindTeamMemberByName looks a member up by exact name, case-insensitively.
func FindTeamMemberByName(s *store.Store, name string) (*models.TeamMember, bool) {
	matches := teamMembers(s).Filter(func(m *models.TeamMember) bool {
		return strings.EqualFold(m.Name, name)
	})
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// AddWorkloadHours adjusts a member's current workload and recomputes their
// utilization rate. Negative hours release workload.
func AddWorkloadHours(s *store.Store, id string, hours float64) bool {
	return teamMembers(s).Update(id, func(m *models.TeamMember) {
		m.CurrentWorkloadHours += hours
		if m.CurrentWorkloadHours < 0 {
			m.CurrentWorkloadHours = 0
		}
		if m.WeeklyCapacityHours > 0 {
			m.UtilizationRate = m.CurrentWorkloadHours / m.WeeklyCapacityHours * 100
		}
	})
}

// CurrentUser returns the signed-in user record, if one is set.
func CurrentUser(s *store.Store) (*models.TeamMember, bool) {
	return store.GetObject[*models.TeamMember](s, store.KeyCurrentUser)
}

// SetCurrentUser records who is using the dashboard.
func SetCurrentUser(s *store.Store, m *models.TeamMember) bool {
	return store.SetObject(s, store.KeyCurrentUser, m)
}
