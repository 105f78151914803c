package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")

	// ErrRoleInUse is returned when deleting a role that still has users.
	ErrRoleInUse = errors.New("role still assigned to users")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Role is a named set of permissions. Permission contents are managed
// elsewhere; here a role is just an assignable label with a deletion guard.
type Role struct {
	ID   uuid.UUID
	Name string
}

// User is a back-office operator account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	RoleID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
