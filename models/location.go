// ABOUTME: Location entity for sites under renovation or refit
// ABOUTME: Defines status enum and per-day operating hours
package models

// LocationStatus values.
const (
	LocationActive          = "active"
	LocationInactive        = "inactive"
	LocationUnderRenovation = "under_renovation"
	LocationPlanned         = "planned"
	LocationClosed          = "closed"
)

// DayHours describes opening hours for a single weekday.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

type Location struct {
	Meta
	Name           string              `json:"name"`
	Address        string              `json:"address,omitempty"`
	City           string              `json:"city,omitempty"`
	Type           string              `json:"type,omitempty"`
	Subtype        string              `json:"subtype,omitempty"`
	Status         string              `json:"status"`
	OperatingHours map[string]DayHours `json:"operatingHours,omitempty"`
	Notes          string              `json:"notes,omitempty"`
}

// ValidLocationStatus reports whether s is a known location status.
func ValidLocationStatus(s string) bool {
	switch s {
	case LocationActive, LocationInactive, LocationUnderRenovation, LocationPlanned, LocationClosed:
		return true
	}
	return false
}
