// ABOUTME: Phase dependency graph generation for a project
// ABOUTME: Renders phases as nodes colored by status with dependency edges
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(s *store.Store) *GraphGenerator {
	return &GraphGenerator{store: s}
}

func phaseFillColor(status string) string {
	switch status {
	case models.PhaseCompleted:
		return "lightgreen"
	case models.PhaseInProgress:
		return "lightyellow"
	case models.PhaseBlocked:
		return "lightcoral"
	default:
		return "lightgray"
	}
}

// GeneratePhaseGraph renders a project's phases and their dependencies as
// XDOT text.
func (g *GraphGenerator) GeneratePhaseGraph(projectID string) (string, error) {
	project, ok := db.GetProject(g.store, projectID)
	if !ok {
		return "", fmt.Errorf("project %s not found", projectID)
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLabel(fmt.Sprintf("Phases: %s", project.Name))
	graph.SetRankDir(cgraph.LRRank)

	nodes := make(map[string]*cgraph.Node)
	for _, phase := range project.Phases {
		node, err := graph.CreateNodeByName(fmt.Sprintf("phase_%s", shortID(phase.ID)))
		if err != nil {
			return "", fmt.Errorf("failed to create phase node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n(%s)", phase.Name, phase.Status))
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor(phaseFillColor(phase.Status))
		nodes[phase.ID] = node
	}

	for _, phase := range project.Phases {
		for _, depID := range phase.DependsOn {
			dep, ok := nodes[depID]
			if !ok {
				continue
			}
			edge, err := graph.CreateEdgeByName("depends_on", dep, nodes[phase.ID])
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel("then")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
