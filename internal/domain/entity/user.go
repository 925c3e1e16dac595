// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the root aggregate of the system. Addresses, the cart, orders and
// the profile are all owned by exactly one User and are removed with it.
type User struct {
	ID               uuid.UUID       // The unique identifier for the user.
	Username         string          // Display name, globally unique.
	Phone            string          // Login identifier, globally unique.
	Email            string          // Optional contact email; unique when set.
	PasswordHash     string          // Bcrypt hash; the plaintext password is never stored.
	FullName         string          // Optional real name.
	MembershipLevel  MembershipLevel // Membership tier (standard, vip, vip_plus).
	MembershipPoints int             // Accumulated membership points.
	IsActive         bool            // Soft-disable flag; inactive users cannot log in.
	IsAdmin          bool            // Grants access to the admin surface.
	CreatedAt        time.Time       // Timestamp of account creation.
	UpdatedAt        time.Time       // Timestamp of the last modification.
	LastLogin        *time.Time      // Timestamp of the most recent successful login, nil before the first.
}

// Roles returns the JWT role set for this user.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
