// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address in a user's address book.
// At most one address per user carries the default flag at any time.
type Address struct {
	ID            uuid.UUID // The unique identifier for the address.
	UserID        uuid.UUID // The owning user.
	RecipientName string    // Name of the person receiving the shipment.
	Phone         string    // Contact phone for the courier.
	Province      string    // Province or region.
	Detail        string    // Street-level address text.
	IsDefault     bool      // Whether this is the user's default shipping address.
	CreatedAt     time.Time // Timestamp of when this address was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
