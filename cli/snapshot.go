// ABOUTME: Snapshot export/import CLI commands backed by the SQLite archive
// ABOUTME: Exports the full dataset as JSON or into the snapshot history
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/harperreed/refit/archive"
	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/store"
)

// ExportCommand writes a snapshot to a JSON file, or into the archive when
// --archive is given.
func ExportCommand(s *store.Store, archivePath string, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "Output file (defaults to stdout)")
	toArchive := fs.Bool("archive", false, "Save into the snapshot archive instead of a file")
	_ = fs.Parse(args)

	snap, err := db.ExportSnapshot(s, time.Now())
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if *toArchive {
		a, err := archive.Open(archivePath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer a.Close()

		id, err := a.Save(snap)
		if err != nil {
			return fmt.Errorf("failed to archive snapshot: %w", err)
		}
		fmt.Printf("✓ Snapshot %d archived (%d keys)\n", id, len(snap.Data))
		return nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	fmt.Printf("✓ Snapshot written to %s (%d keys)\n", *out, len(snap.Data))
	return nil
}

// ImportCommand loads a snapshot from a JSON file or the archive.
func ImportCommand(s *store.Store, archivePath string, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("in", "", "Snapshot JSON file")
	fromArchive := fs.Bool("latest", false, "Restore the latest archived snapshot")
	_ = fs.Parse(args)

	var snap *db.Snapshot
	switch {
	case *fromArchive:
		a, err := archive.Open(archivePath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer a.Close()

		snap, err = a.Latest()
		if err != nil {
			return fmt.Errorf("no archived snapshot: %w", err)
		}
	case *in != "":
		data, err := os.ReadFile(*in)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", *in, err)
		}
		snap = &db.Snapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			return fmt.Errorf("invalid snapshot file: %w", err)
		}
	default:
		return fmt.Errorf("--in or --latest is required")
	}

	written, err := db.ImportSnapshot(s, snap)
	if err != nil {
		return fmt.Errorf("import failed after %d keys: %w", written, err)
	}
	fmt.Printf("✓ Imported %d key(s) from snapshot taken %s\n",
		written, snap.ExportDate.Format("2006-01-02 15:04"))
	return nil
}

// SnapshotsCommand lists archived snapshots.
func SnapshotsCommand(archivePath string, args []string) error {
	fs := flag.NewFlagSet("snapshots", flag.ExitOnError)
	pruneDays := fs.Int("prune", 0, "Delete snapshots older than this many days")
	_ = fs.Parse(args)

	a, err := archive.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer a.Close()

	if *pruneDays > 0 {
		removed, err := a.Prune(time.Now().AddDate(0, 0, -*pruneDays))
		if err != nil {
			return fmt.Errorf("prune failed: %w", err)
		}
		fmt.Printf("✓ Pruned %d snapshot(s)\n", removed)
		return nil
	}

	entries, err := a.List()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No archived snapshots")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%4d  %s  v%s\n", e.ID, e.TakenAt.Format("2006-01-02 15:04"), e.Version)
	}
	return nil
}
