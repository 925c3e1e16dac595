// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a use case. It is built by
// the auth middleware from validated token claims, so use cases never
// touch the token themselves.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the caller holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(entity.RoleAdmin)
}

// CanAccess reports whether the caller may act on a resource owned by
// ownerID: owners always may, admins may act on anything.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.IsAdmin()
}
