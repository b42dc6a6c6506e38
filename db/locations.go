// ABOUTME: Repository for location records
// ABOUTME: Filtered queries by status and type
package db

import (
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func locations(s *store.Store) *store.Collection[*models.Location] {
	return store.NewCollection[*models.Location](s, store.KeyLocations)
}

// CreateLocation persists a new location, assigning its id.
func CreateLocation(s *store.Store, loc *models.Location) bool {
	if loc.Status == "" {
		loc.Status = models.LocationPlanned
	}
	return locations(s).Append(loc)
}

// GetLocation returns the location with the given id.
func GetLocation(s *store.Store, id string) (*models.Location, bool) {
	return locations(s).Find(id)
}

// AllLocations returns every location.
func AllLocations(s *store.Store) []*models.Location {
	return locations(s).All()
}

// UpdateLocation applies a partial update to a location.
func UpdateLocation(s *store.Store, id string, mutate func(*models.Location)) bool {
	return locations(s).Update(id, mutate)
}

// DeleteLocation removes a location. Projects referencing it keep their
// dangling id; lookups treat the missing target as not-found.
func DeleteLocation(s *store.Store, id string) bool {
	return locations(s).Delete(id)
}

// LocationsByStatus filters locations by status.
func LocationsByStatus(s *store.Store, status string) []*models.Location {
	return locations(s).Filter(func(l *models.Location) bool {
		return l.Status == status
	})
}

// LocationsByType filters locations by type.
func LocationsByType(s *store.Store, typ string) []*models.Location {
	return locations(s).Filter(func(l *models.Location) bool {
		return l.Type == typ
	})
}
