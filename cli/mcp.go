// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the dashboard's tools over stdio for assistant integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/handlers"
	"github.com/harperreed/refit/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s *store.Store) error {
	log.Println("Starting refit MCP server...")

	locationHandlers := handlers.NewLocationHandlers(s)
	projectHandlers := handlers.NewProjectHandlers(s)
	contractorHandlers := handlers.NewContractorHandlers(s)
	quoteHandlers := handlers.NewQuoteHandlers(s)
	paymentHandlers := handlers.NewPaymentHandlers(s)
	taskHandlers := handlers.NewTaskHandlers(s)
	appointmentHandlers := handlers.NewAppointmentHandlers(s)
	commentHandlers := handlers.NewCommentHandlers(s)
	notificationHandlers := handlers.NewNotificationHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "refit",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_location",
		Description: "Add a location (store, office, site) to the dashboard",
	}, locationHandlers.AddLocation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_locations",
		Description: "List locations, optionally filtered by status",
	}, locationHandlers.ListLocations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_location_status",
		Description: "Change a location's lifecycle status",
	}, locationHandlers.UpdateLocationStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_project",
		Description: "Create a renovation project, optionally tied to a location",
	}, projectHandlers.AddProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List projects filtered by location or status",
	}, projectHandlers.ListProjects)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_phase",
		Description: "Append a phase to a project's ordered phase list",
	}, projectHandlers.AddPhase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_phase_status",
		Description: "Move a project phase between pending, in_progress, completed, and blocked",
	}, projectHandlers.SetPhaseStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contractor",
		Description: "Add a contractor with trade specializations to the roster",
	}, contractorHandlers.AddContractor)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contractors",
		Description: "Find contractors, optionally by trade specialization",
	}, contractorHandlers.FindContractors)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "review_contractor",
		Description: "Record a five-score contractor review and refresh the aggregate rating",
	}, contractorHandlers.ReviewContractor)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_quote",
		Description: "Record a contractor quote against a project",
	}, quoteHandlers.AddQuote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_payment_terms",
		Description: "Replace a quote's payment terms; coverage problems come back as warnings",
	}, quoteHandlers.SetPaymentTerms)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_quote_status",
		Description: "Move a quote through its review workflow",
	}, quoteHandlers.SetQuoteStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_payment_schedule",
		Description: "Derive pending payments from a quote's terms; reruns never duplicate",
	}, paymentHandlers.GenerateSchedule)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_payment",
		Description: "Record money paid against a scheduled payment",
	}, paymentHandlers.RecordPayment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "payment_summary",
		Description: "Aggregate payment figures with the overdue breakdown",
	}, paymentHandlers.PaymentSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Create a task within a project, optionally under a phase",
	}, taskHandlers.AddTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_board",
		Description: "The task board grouped into status lanes",
	}, taskHandlers.TaskBoard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_task_status",
		Description: "Move a task between board lanes",
	}, taskHandlers.SetTaskStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_assignees",
		Description: "Rank available team members for a task by skills, workload, and track record",
	}, taskHandlers.SuggestAssignees)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_appointment",
		Description: "Schedule a site visit, inspection, delivery, or contractor meeting",
	}, appointmentHandlers.AddAppointment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_appointments",
		Description: "List appointments by date range, status, or upcoming only",
	}, appointmentHandlers.ListAppointments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_appointment_status",
		Description: "Confirm, cancel, or complete an appointment",
	}, appointmentHandlers.SetAppointmentStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_comment",
		Description: "Comment on an entity; @Name mentions notify the mentioned members",
	}, commentHandlers.AddComment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_comments",
		Description: "List an entity's comment threads with replies",
	}, commentHandlers.ListComments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notifications",
		Description: "List notifications, optionally unread-only or grouped by similarity",
	}, notificationHandlers.ListNotifications)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mark_notifications_read",
		Description: "Mark one or all notifications read",
	}, notificationHandlers.MarkNotificationsRead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_activity",
		Description: "The team activity feed, filterable by type, user, and date range",
	}, notificationHandlers.RecentActivity)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
