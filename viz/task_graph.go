// ABOUTME: Task dependency graph generation across a project
// ABOUTME: Tasks link to their phase and to the tasks they depend on
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
)

func taskFillColor(status string) string {
	switch status {
	case models.TaskCompleted:
		return "lightgreen"
	case models.TaskInProgress:
		return "lightyellow"
	case models.TaskBlocked:
		return "lightcoral"
	case models.TaskCancelled:
		return "gray"
	default:
		return "white"
	}
}

// GenerateTaskGraph renders a project's tasks with their dependency edges
// and phase groupings as XDOT text.
func (g *GraphGenerator) GenerateTaskGraph(projectID string) (string, error) {
	project, ok := db.GetProject(g.store, projectID)
	if !ok {
		return "", fmt.Errorf("project %s not found", projectID)
	}
	tasks := db.TasksByProject(g.store, projectID)

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

	graph.SetLabel(fmt.Sprintf("Tasks: %s", project.Name))

	phaseNodes := make(map[string]*cgraph.Node)
	for _, phase := range project.Phases {
		node, err := graph.CreateNodeByName(fmt.Sprintf("phase_%s", shortID(phase.ID)))
		if err != nil {
			return "", fmt.Errorf("failed to create phase node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n(phase)", phase.Name))
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor("lightblue")
		phaseNodes[phase.ID] = node
	}

	taskNodes := make(map[string]*cgraph.Node)
	for _, task := range tasks {
		node, err := graph.CreateNodeByName(fmt.Sprintf("task_%s", shortID(task.ID)))
		if err != nil {
			return "", fmt.Errorf("failed to create task node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n%d%%", task.Title, task.ProgressPercent()))
		node.SetShape("ellipse")
		node.SetStyle("filled")
		node.SetFillColor(taskFillColor(task.Status))
		taskNodes[task.ID] = node

		if phaseNode, ok := phaseNodes[task.PhaseID]; ok {
			edge, err := graph.CreateEdgeByName("in_phase", phaseNode, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetStyle("dashed")
		}
	}

	for _, task := range tasks {
		for _, depID := range task.DependsOn {
			dep, ok := taskNodes[depID]
			if !ok {
				continue
			}
			edge, err := graph.CreateEdgeByName("depends_on", dep, taskNodes[task.ID])
			if err != nil {
				return "", fmt.Errorf("failed to create dependency edge: %w", err)
			}
			edge.SetLabel("blocks")
			edge.SetStyle("dotted")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}
