// ABOUTME: Tests for snapshot export and import
// ABOUTME: Unknown keys in an imported snapshot must be ignored
package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/harperreed/refit/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestStore(t)
	CreateLocation(src, &models.Location{Name: "Flagship store"})
	CreateProject(src, &models.Project{Name: "Refit", LocationID: "loc"})
	CreateTask(src, &models.Task{ProjectID: "p", Title: "Order tiles"})

	snap, err := ExportSnapshot(src, time.Now())
	if err != nil {
		t.Fatalf("ExportSnapshot failed: %v", err)
	}
	if snap.Version != SnapshotVersion {
		t.Errorf("Expected version %q, got %q", SnapshotVersion, snap.Version)
	}
	if _, ok := snap.Data["locations"]; !ok {
		t.Error("Expected locations in snapshot")
	}
	// Never-written keys are absent, not empty arrays.
	if _, ok := snap.Data["comments"]; ok {
		t.Error("Did not expect comments in snapshot")
	}

	dst := setupTestStore(t)
	written, err := ImportSnapshot(dst, snap)
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	if written != len(snap.Data) {
		t.Errorf("Expected %d keys written, got %d", len(snap.Data), written)
	}
	if n := len(AllProjects(dst)); n != 1 {
		t.Errorf("Expected 1 project after import, got %d", n)
	}
	if n := len(AllTasks(dst)); n != 1 {
		t.Errorf("Expected 1 task after import, got %d", n)
	}
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	s := setupTestStore(t)

	snap := &Snapshot{
		ExportDate: time.Now(),
		Version:    SnapshotVersion,
		Data: map[string]json.RawMessage{
			"locations":      json.RawMessage(`[{"id":"l1","name":"Annex"}]`),
			"malware":        json.RawMessage(`[{"id":"x"}]`),
			"something_else": json.RawMessage(`{}`),
		},
	}
	written, err := ImportSnapshot(s, snap)
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	if written != 1 {
		t.Errorf("Expected 1 key written, got %d", written)
	}
	if _, ok := GetLocation(s, "l1"); !ok {
		t.Error("Expected imported location to be readable")
	}
}

func TestImportSkipsInvalidJSON(t *testing.T) {
	s := setupTestStore(t)

	snap := &Snapshot{
		Data: map[string]json.RawMessage{
			"locations": json.RawMessage(`{not json`),
		},
	}
	written, err := ImportSnapshot(s, snap)
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	if written != 0 {
		t.Errorf("Expected nothing written, got %d", written)
	}
}
