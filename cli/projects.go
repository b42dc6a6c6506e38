// ABOUTME: Project and location CLI commands
// ABOUTME: Human-friendly commands for managing sites, projects, and phases
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

// AddLocationCommand adds a new location.
func AddLocationCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-location", flag.ExitOnError)
	name := fs.String("name", "", "Location name (required)")
	typ := fs.String("type", "", "Location type (store, office, warehouse...)")
	address := fs.String("address", "", "Street address")
	city := fs.String("city", "", "City")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	loc := &models.Location{
		Name:    *name,
		Type:    *typ,
		Address: *address,
		City:    *city,
	}
	if !db.CreateLocation(s, loc) {
		return fmt.Errorf("failed to create location")
	}

	fmt.Printf("✓ Location created: %s (ID: %s)\n", loc.Name, loc.ID)
	return nil
}

// AddProjectCommand adds a new renovation project.
func AddProjectCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-project", flag.ExitOnError)
	name := fs.String("name", "", "Project name (required)")
	location := fs.String("location", "", "Location ID")
	budget := fs.Float64("budget", 0, "Approved budget")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	p := &models.Project{
		Name:       *name,
		LocationID: *location,
		Budget:     models.Budget{Approved: *budget, Remaining: *budget},
	}
	if !db.CreateProject(s, p) {
		return fmt.Errorf("failed to create project")
	}

	db.LogActivity(s, &models.TeamActivity{
		Type:       models.ActivityProjectCreated,
		Action:     "created project",
		TargetType: "project",
		TargetID:   p.ID,
		TargetName: p.Name,
	})

	fmt.Printf("✓ Project created: %s (ID: %s)\n", p.Name, p.ID)
	if *budget > 0 {
		fmt.Printf("  Budget: %.2f\n", *budget)
	}
	return nil
}

// ListProjectsCommand lists projects.
func ListProjectsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-projects", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	location := fs.String("location", "", "Filter by location ID")
	_ = fs.Parse(args)

	var projects []*models.Project
	switch {
	case *location != "":
		projects = db.ProjectsByLocation(s, *location)
	case *status != "":
		projects = db.ProjectsByStatus(s, *status)
	default:
		projects = db.AllProjects(s)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSTATUS\tPHASES\tSPENT\tREMAINING\tID")
	_, _ = fmt.Fprintln(w, "----\t------\t------\t-----\t---------\t--")

	for _, p := range projects {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%s\n",
			p.Name, p.Status, len(p.Phases), p.Budget.Spent, p.Budget.Remaining, shortID(p.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d project(s)\n", len(projects))
	return nil
}

// AddPhaseCommand appends a phase to a project.
func AddPhaseCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-phase", flag.ExitOnError)
	project := fs.String("project", "", "Project ID (required)")
	name := fs.String("name", "", "Phase name (required)")
	_ = fs.Parse(args)

	if *project == "" || *name == "" {
		return fmt.Errorf("--project and --name are required")
	}

	phaseID, ok := db.AddPhase(s, *project, models.ProjectPhase{Name: *name})
	if !ok {
		return fmt.Errorf("project not found")
	}

	fmt.Printf("✓ Phase added: %s (ID: %s)\n", *name, phaseID)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
