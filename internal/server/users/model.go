package users

import "time"

// Status is the account state managed by admins.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusBanned    Status = "banned"
)

// Roles stored on accounts. Admin accounts never appear in the user list.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusBanned:
		return true
	}
	return false
}

type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash []byte
	Role         string
	Status       Status
	CreatedAt    time.Time
}
