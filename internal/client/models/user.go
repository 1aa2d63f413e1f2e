// Package models defines client-side data models used by the gophadmin console.
package models

import (
	"fmt"

	"github.com/dmitrijs2005/gophadmin/internal/common"
)

// UserStatus is the account state an admin can assign.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusBanned    UserStatus = "banned"
)

// AllStatuses lists the valid statuses in display order.
var AllStatuses = []UserStatus{StatusActive, StatusSuspended, StatusBanned}

// ParseUserStatus validates s against the known statuses.
func ParseUserStatus(s string) (UserStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrorInvalidStatus, s)
}

// User is a backend-owned account as returned by GET /users.
// CreatedAt is kept verbatim; parsing happens only when a date filter needs it.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Status    UserStatus `json:"status"`
	CreatedAt string     `json:"created_at"`
}
