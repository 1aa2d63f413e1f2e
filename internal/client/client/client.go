package client

import (
	"context"

	"github.com/dmitrijs2005/gophadmin/internal/client/models"
)

// Client is the admin API contract. Authorized calls take the bearer token
// explicitly; the client itself holds no session state.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Signup(ctx context.Context, data models.SignupData) error
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, token, userID string, status models.UserStatus) error
	DeleteUser(ctx context.Context, token, userID string) error
}
