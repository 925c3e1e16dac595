// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileAddress is the address snapshot embedded in a profile.
type ProfileAddress struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Province      string `json:"province"`
	Detail        string `json:"detail"`
}

// Profile holds a user's saved fabrication configuration together with an
// attached PDF document. At most one profile exists per user.
//
// The document is persisted redundantly: the decoded bytes are written to
// the filesystem under PDFPath, and the base64 payload is kept in the row
// as the durable fallback. Retrieval prefers the file and falls back to
// decoding PDFBase64 when the file is missing.
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProfileName string
	ProfileData map[string]any // Free-form configuration snapshot.
	Address     ProfileAddress
	PDFPath     string // Filesystem path of the stored document; empty when the write failed.
	PDFFilename string
	PDFBase64   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
