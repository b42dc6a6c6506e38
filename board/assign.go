// ABOUTME: Smart assignment scorer ranking available team members for a task
// ABOUTME: Deterministic weighted score; overloaded candidates stay visible but unselectable
package board

import (
	"sort"

	"github.com/harperreed/refit/models"
)

// overloadThreshold is the projected-utilization percentage above which a
// candidate is flagged and locked out of selection.
const overloadThreshold = 90

// Request describes the task being assigned. Members passed to Suggest are
// expected to be pre-filtered to those marked available.
type Request struct {
	RequiredSkills []string
	EstimatedHours float64
	Priority       string
}

// Candidate is one scored team member.
type Candidate struct {
	Member               *models.TeamMember `json:"member"`
	Score                float64            `json:"score"`
	SkillMatch           float64            `json:"skillMatch"`
	ProjectedUtilization float64            `json:"projectedUtilization"`
	WouldBeOverloaded    bool               `json:"wouldBeOverloaded"`
	Selectable           bool               `json:"selectable"`
}

// Suggest scores and ranks candidates for the request. The score (0-100) is:
// skill-match ratio x40 (20 flat with no required skills), remaining capacity
// (100-utilization)/100 x30, on-time completion /100 x20, and
// min(tasksCompleted/10, 1) x10. Overload never changes the score, only the
// flag and selectability.
func Suggest(members []*models.TeamMember, req Request) []Candidate {
	candidates := make([]Candidate, 0, len(members))
	for _, m := range members {
		c := Candidate{Member: m}

		c.SkillMatch = skillMatchRatio(m, req.RequiredSkills)
		if len(req.RequiredSkills) == 0 {
			c.Score += 20
		} else {
			c.Score += c.SkillMatch * 40
		}

		c.Score += (100 - m.UtilizationRate) / 100 * 30
		c.Score += m.OnTimeCompletion / 100 * 20

		experience := float64(m.TasksCompleted) / 10
		if experience > 1 {
			experience = 1
		}
		c.Score += experience * 10

		c.ProjectedUtilization = projectedUtilization(m, req.EstimatedHours)
		c.WouldBeOverloaded = c.ProjectedUtilization > overloadThreshold
		c.Selectable = !c.WouldBeOverloaded

		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Member.Name < candidates[j].Member.Name
	})
	return candidates
}

func skillMatchRatio(m *models.TeamMember, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	matched := 0
	for _, skill := range required {
		if m.HasSkill(skill) {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func projectedUtilization(m *models.TeamMember, estimatedHours float64) float64 {
	if m.WeeklyCapacityHours <= 0 {
		// No stated capacity: any added work counts as overload.
		return 100
	}
	return (m.CurrentWorkloadHours + estimatedHours) / m.WeeklyCapacityHours * 100
}
