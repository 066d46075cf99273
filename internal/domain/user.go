// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRole is assigned when registration does not name a role.
const DefaultRole = "User"

// AppUser represents an account that can sign in to the API.
type AppUser struct {
	IdUser       uuid.UUID `db:"id_user" json:"id_user"`         // Assigned by the store on creation
	Username     string    `db:"username" json:"username"`       // Unique username
	PasswordHash string    `db:"password_hash" json:"-"`         // bcrypt hash, never serialized
	FullName     string    `db:"full_name" json:"full_name"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
}

// NewAppUser creates a new active user. An empty role falls back to DefaultRole.
func NewAppUser(username, passwordHash, fullName, role string) *AppUser {
	if role == "" {
		role = DefaultRole
	}
	return &AppUser{
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}
