// ABOUTME: Visualization CLI commands
// ABOUTME: Phase/task dependency graphs and the ASCII dashboard
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/harperreed/refit/store"
	"github.com/harperreed/refit/viz"
)

// VizCommand renders a dependency graph for a project.
func VizCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz", flag.ExitOnError)
	project := fs.String("project", "", "Project ID (required)")
	kind := fs.String("kind", "phases", "Graph kind: phases or tasks")
	out := fs.String("out", "", "Output file (defaults to stdout)")
	_ = fs.Parse(args)

	if *project == "" {
		return fmt.Errorf("--project is required")
	}

	generator := viz.NewGraphGenerator(s)
	var graph string
	var err error
	switch *kind {
	case "phases":
		graph, err = generator.GeneratePhaseGraph(*project)
	case "tasks":
		graph, err = generator.GenerateTaskGraph(*project)
	default:
		return fmt.Errorf("unknown graph kind %q", *kind)
	}
	if err != nil {
		return fmt.Errorf("failed to generate graph: %w", err)
	}

	if *out == "" {
		fmt.Println(graph)
		return nil
	}
	if err := os.WriteFile(*out, []byte(graph), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	fmt.Printf("✓ Graph written to %s\n", *out)
	return nil
}

// DashboardCommand prints the ASCII overview.
func DashboardCommand(s *store.Store, args []string) error {
	stats := viz.GenerateDashboardStats(s, time.Now())
	fmt.Print(viz.RenderDashboard(stats))
	return nil
}
