// ABOUTME: Tests for the key-value store and the collection adapter
// ABOUTME: Covers id/timestamp stamping, partial updates, and failure swallowing
package store

import (
	"testing"
	"time"

	"github.com/harperreed/refit/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Get("never_written"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCollectionAllOnEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	c := NewCollection[*models.Location](s, KeyLocations)

	items := c.All()
	if items == nil {
		t.Fatal("All must return an empty slice, not nil")
	}
	if len(items) != 0 {
		t.Errorf("Expected empty collection, got %d items", len(items))
	}
}

func TestCollectionAppendAssignsIDAndTimestamps(t *testing.T) {
	s := setupTestStore(t)
	c := NewCollection[*models.Location](s, KeyLocations)

	loc := &models.Location{Name: "Store 14", Status: models.LocationUnderRenovation}
	if !c.Append(loc) {
		t.Fatal("Append failed")
	}

	if loc.ID == "" {
		t.Error("Append did not assign an id")
	}
	if loc.CreatedAt.IsZero() || loc.UpdatedAt.IsZero() {
		t.Error("Append did not stamp timestamps")
	}

	found, ok := c.Find(loc.ID)
	if !ok {
		t.Fatal("Appended record not found")
	}
	if found.Name != "Store 14" {
		t.Errorf("Expected name round trip, got %q", found.Name)
	}
}

func TestCollectionUpdateStampsUpdatedAt(t *testing.T) {
	s := setupTestStore(t)
	c := NewCollection[*models.Location](s, KeyLocations)

	loc := &models.Location{Name: "Depot", Status: models.LocationActive}
	if !c.Append(loc) {
		t.Fatal("Append failed")
	}
	before := loc.UpdatedAt
	time.Sleep(2 * time.Millisecond)

	ok := c.Update(loc.ID, func(l *models.Location) {
		l.Status = models.LocationClosed
	})
	if !ok {
		t.Fatal("Update failed")
	}

	found, _ := c.Find(loc.ID)
	if found.Status != models.LocationClosed {
		t.Errorf("Expected closed, got %s", found.Status)
	}
	if !found.UpdatedAt.After(before) {
		t.Error("Update did not advance UpdatedAt")
	}
	if !found.CreatedAt.Equal(loc.CreatedAt) {
		t.Error("Update must not change CreatedAt")
	}
}

func TestCollectionUpdateMissingRecord(t *testing.T) {
	s := setupTestStore(t)
	c := NewCollection[*models.Location](s, KeyLocations)

	if c.Update("no-such-id", func(l *models.Location) { l.Name = "x" }) {
		t.Error("Update of a missing record must return false")
	}
}

func TestCollectionDelete(t *testing.T) {
	s := setupTestStore(t)
	c := NewCollection[*models.Location](s, KeyLocations)

	a := &models.Location{Name: "A", Status: models.LocationActive}
	b := &models.Location{Name: "B", Status: models.LocationActive}
	c.Append(a)
	c.Append(b)

	if !c.Delete(a.ID) {
		t.Fatal("Delete failed")
	}
	if c.Delete(a.ID) {
		t.Error("Deleting twice must return false")
	}

	items := c.All()
	if len(items) != 1 || items[0].ID != b.ID {
		t.Errorf("Expected only B to remain, got %d items", len(items))
	}
}

func TestCollectionSurvivesCorruptPayload(t *testing.T) {
	s := setupTestStore(t)
	if err := s.Set(KeyLocations, []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	c := NewCollection[*models.Location](s, KeyLocations)
	items := c.All()
	if len(items) != 0 {
		t.Errorf("Corrupt payload must read as empty, got %d items", len(items))
	}
}

func TestObjectRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	me := &models.TeamMember{Name: "Sam", Role: "project lead", Available: true}
	me.EnsureID()
	if !SetObject(s, KeyCurrentUser, me) {
		t.Fatal("SetObject failed")
	}

	got, ok := GetObject[*models.TeamMember](s, KeyCurrentUser)
	if !ok {
		t.Fatal("GetObject failed")
	}
	if got.Name != "Sam" || got.ID != me.ID {
		t.Errorf("Object round trip mismatch: %+v", got)
	}

	if _, ok := GetObject[*models.TeamMember](s, "missing_object"); ok {
		t.Error("GetObject on a missing key must return false")
	}
}

func TestResetWipesEverything(t *testing.T) {
	s := setupTestStore(t)
	c := NewCollection[*models.Location](s, KeyLocations)
	c.Append(&models.Location{Name: "A", Status: models.LocationActive})

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if len(c.All()) != 0 {
		t.Error("Reset did not clear the collection")
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Expected no keys after reset, got %v", keys)
	}
}
