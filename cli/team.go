// ABOUTME: Team roster CLI commands
// ABOUTME: Members, capacity, and the current-user record
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

// AddMemberCommand adds a team member to the roster.
func AddMemberCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-member", flag.ExitOnError)
	name := fs.String("name", "", "Member name (required)")
	role := fs.String("role", "", "Role, e.g. site manager")
	email := fs.String("email", "", "Email address")
	skills := fs.String("skills", "", "Comma-separated skills")
	capacity := fs.Float64("capacity", 40, "Weekly capacity in hours")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	m := &models.TeamMember{
		Name:                *name,
		Role:                *role,
		Email:               *email,
		WeeklyCapacityHours: *capacity,
	}
	if *skills != "" {
		for _, skill := range strings.Split(*skills, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				m.Skills = append(m.Skills, skill)
			}
		}
	}
	if !db.CreateTeamMember(s, m) {
		return fmt.Errorf("failed to create team member")
	}

	fmt.Printf("✓ Team member added: %s (ID: %s)\n", m.Name, m.ID)
	return nil
}

// ListTeamCommand lists the roster with workload figures.
func ListTeamCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("team", flag.ExitOnError)
	availableOnly := fs.Bool("available", false, "Only show available members")
	_ = fs.Parse(args)

	var members []*models.TeamMember
	if *availableOnly {
		members = db.AvailableTeamMembers(s)
	} else {
		members = db.AllTeamMembers(s)
	}

	if len(members) == 0 {
		fmt.Println("No team members")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tROLE\tSKILLS\tWORKLOAD\tUTIL\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t------\t--------\t----\t--")

	for _, m := range members {
		role := m.Role
		if role == "" {
			role = "-"
		}
		skills := strings.Join(m.Skills, ", ")
		if skills == "" {
			skills = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.0f/%.0fh\t%.0f%%\t%s\n",
			m.Name, role, skills, m.CurrentWorkloadHours, m.WeeklyCapacityHours,
			m.UtilizationRate, shortID(m.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d member(s)\n", len(members))
	return nil
}

// WhoamiCommand shows or sets the current user.
func WhoamiCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	set := fs.String("set", "", "Member name to become the current user")
	_ = fs.Parse(args)

	if *set != "" {
		m, ok := db.FindTeamMemberByName(s, *set)
		if !ok {
			return fmt.Errorf("no team member named %q", *set)
		}
		if !db.SetCurrentUser(s, m) {
			return fmt.Errorf("failed to set current user")
		}
		fmt.Printf("✓ Current user: %s\n", m.Name)
		return nil
	}

	m, ok := db.CurrentUser(s)
	if !ok {
		fmt.Println("No current user set (use --set)")
		return nil
	}
	fmt.Printf("%s (%s)\n", m.Name, m.Role)
	return nil
}
