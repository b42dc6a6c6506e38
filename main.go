// ABOUTME: Entry point for the refit dashboard MCP server, CLI, and TUI
// ABOUTME: Routes to subcommands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/harperreed/refit/cli"
	"github.com/harperreed/refit/store"
	"github.com/harperreed/refit/tui"
)

const version = "0.1.0"

func main() {
	// .env is optional; it can set REFIT_DATA_PATH for dev setups
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataPath := flag.String("data-path", "", "Data directory (default: ~/.local/share/refit)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("refit version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	dataDir := getDataPath(*dataPath)
	s, err := store.Open(filepath.Join(dataDir, "refit.db"))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	archivePath := filepath.Join(dataDir, "archive.db")

	command := args[0]
	commandArgs := args[1:]

	var cmdErr error
	switch command {
	case "mcp":
		cmdErr = cli.MCPCommand(s)

	case "tui":
		p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
		_, cmdErr = p.Run()

	case "dashboard":
		cmdErr = cli.DashboardCommand(s, commandArgs)

	case "add-location":
		cmdErr = cli.AddLocationCommand(s, commandArgs)
	case "add-project":
		cmdErr = cli.AddProjectCommand(s, commandArgs)
	case "list-projects":
		cmdErr = cli.ListProjectsCommand(s, commandArgs)
	case "add-phase":
		cmdErr = cli.AddPhaseCommand(s, commandArgs)

	case "add-contractor":
		cmdErr = cli.AddContractorCommand(s, commandArgs)
	case "list-contractors":
		cmdErr = cli.ListContractorsCommand(s, commandArgs)
	case "review-contractor":
		cmdErr = cli.ReviewContractorCommand(s, commandArgs)

	case "add-quote":
		cmdErr = cli.AddQuoteCommand(s, commandArgs)
	case "schedule":
		cmdErr = cli.ScheduleCommand(s, commandArgs)
	case "record-payment":
		cmdErr = cli.RecordPaymentCommand(s, commandArgs)
	case "payments":
		cmdErr = cli.PaymentsCommand(s, commandArgs)

	case "add-task":
		cmdErr = cli.AddTaskCommand(s, commandArgs)
	case "board":
		cmdErr = cli.BoardCommand(s, commandArgs)
	case "move-task":
		cmdErr = cli.MoveTaskCommand(s, commandArgs)
	case "suggest":
		cmdErr = cli.SuggestCommand(s, commandArgs)

	case "add-member":
		cmdErr = cli.AddMemberCommand(s, commandArgs)
	case "team":
		cmdErr = cli.ListTeamCommand(s, commandArgs)
	case "whoami":
		cmdErr = cli.WhoamiCommand(s, commandArgs)

	case "add-appointment":
		cmdErr = cli.AddAppointmentCommand(s, commandArgs)
	case "appointments":
		cmdErr = cli.AppointmentsCommand(s, commandArgs)

	case "activity":
		cmdErr = cli.ActivityCommand(s, commandArgs)
	case "notifications":
		cmdErr = cli.NotificationsCommand(s, commandArgs)

	case "export":
		cmdErr = cli.ExportCommand(s, archivePath, commandArgs)
	case "import":
		cmdErr = cli.ImportCommand(s, archivePath, commandArgs)
	case "snapshots":
		cmdErr = cli.SnapshotsCommand(archivePath, commandArgs)

	case "viz":
		cmdErr = cli.VizCommand(s, commandArgs)

	case "reset":
		if os.Getenv("REFIT_ENV") != "development" {
			cmdErr = fmt.Errorf("reset is only available with REFIT_ENV=development")
			break
		}
		cmdErr = s.Reset()
		if cmdErr == nil {
			fmt.Println("✓ All data wiped")
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		log.Fatalf("Error: %v", cmdErr)
	}
}

func getDataPath(dataPath string) string {
	if dataPath != "" {
		return dataPath
	}
	if env := os.Getenv("REFIT_DATA_PATH"); env != "" {
		return env
	}
	return filepath.Join(xdg.DataHome, "refit")
}

func printUsage() {
	fmt.Printf(`refit v%s - Renovation project dashboard

USAGE:
  refit [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-path <path>     Data directory (default: ~/.local/share/refit)

COMMANDS:
  mcp                    Start MCP server (stdio, for assistant integration)
  tui                    Interactive full-screen dashboard
  dashboard              ASCII overview of projects, tasks, and payments

  add-location           Add a location       (--name, --type, --address, --city)
  add-project            Create a project     (--name, --location, --budget)
  list-projects          List projects        (--status, --location)
  add-phase              Append a phase       (--project, --name)

  add-contractor         Add a contractor     (--name, --company, --specializations)
  list-contractors       List contractors     (--specialization)
  review-contractor      Record a review      (--contractor, --quality, --reliability, ...)

  add-quote              Record a quote       (--project, --contractor, --total)
  schedule               Generate payments    (--quote, --confirmed, --delivered, --installed)
  record-payment         Record money paid    (--payment, --amount, --date)
  payments               List payments        (--quote, --overdue)

  add-task               Create a task        (--project, --title, --skills, --hours)
  board                  Show the task board  (--project)
  move-task              Move a task          (--task, --status)
  suggest                Rank assignees       (--task)

  add-member             Add a team member    (--name, --role, --skills, --capacity)
  team                   List the roster      (--available)
  whoami                 Show or set the current user (--set)

  add-appointment        Schedule an appointment (--title, --date, --start, --type)
  appointments           List appointments    (--from, --to, --upcoming)

  activity               Recent activity feed (--days, --user, --search, --prune)
  notifications          Notification inbox   (--all, --grouped, --mark-read)

  export                 Export a snapshot    (--out, --archive)
  import                 Import a snapshot    (--in, --latest)
  snapshots              List archived snapshots (--prune)
  viz                    Dependency graphs    (--project, --kind, --out)
`, version)
}
