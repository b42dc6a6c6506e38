// ABOUTME: Shared record metadata embedded by every stored entity
// ABOUTME: Carries the string id and created/updated timestamps
package models

import (
	"time"

	"github.com/google/uuid"
)

// Meta is embedded by every persisted entity. IDs are strings so the
// collection layer can treat all record types uniformly.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordID returns the entity id.
func (m *Meta) RecordID() string {
	return m.ID
}

// EnsureID assigns a fresh UUID when the record has none yet.
func (m *Meta) EnsureID() {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
}

// Touch stamps UpdatedAt, and CreatedAt on first write.
func (m *Meta) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
