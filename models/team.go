// ABOUTME: Team member entity used for assignment scoring and mentions
// ABOUTME: Utilization and completion figures are percentages
package models

import "strings"

type TeamMember struct {
	Meta
	Name                 string   `json:"name"`
	Role                 string   `json:"role,omitempty"`
	Email                string   `json:"email,omitempty"`
	Skills               []string `json:"skills,omitempty"`
	WeeklyCapacityHours  float64  `json:"weeklyCapacityHours,omitempty"`
	CurrentWorkloadHours float64  `json:"currentWorkloadHours,omitempty"`
	UtilizationRate      float64  `json:"utilizationRate,omitempty"`
	OnTimeCompletion     float64  `json:"onTimeCompletion,omitempty"`
	TasksCompleted       int      `json:"tasksCompleted,omitempty"`
	Available            bool     `json:"available"`
}

// HasSkill matches a required skill case-insensitively.
func (m *TeamMember) HasSkill(skill string) bool {
	for _, s := range m.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
