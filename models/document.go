// ABOUTME: Document and photo attachment entities
// ABOUTME: Stored as metadata records; file contents live on disk
package models

import "time"

type Document struct {
	Meta
	ProjectID  string `json:"projectId,omitempty"`
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	SizeBytes  int64  `json:"sizeBytes,omitempty"`
	UploadedBy string `json:"uploadedBy,omitempty"`
}

type Photo struct {
	Meta
	ProjectID string     `json:"projectId,omitempty"`
	PhaseID   string     `json:"phaseId,omitempty"`
	Caption   string     `json:"caption,omitempty"`
	Path      string     `json:"path,omitempty"`
	TakenAt   *time.Time `json:"takenAt,omitempty"`
}
