package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophadmin/internal/client/client"
	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/store"
	"github.com/dmitrijs2005/gophadmin/internal/logging"
)

const (
	MsgFetchFailed        = "Failed to fetch users"
	MsgUpdateStatusFailed = "Failed to update user status"
	MsgDeleteFailed       = "Failed to delete user"
)

// RosterService owns the fetched user list.
//
// Every operation that needs the API reads the token from the store first
// and silently does nothing when there is none. Mutations never patch the
// local copy; a successful one is followed by Refresh.
type RosterService interface {
	Refresh(ctx context.Context)
	SetStatus(ctx context.Context, userID string, status models.UserStatus)
	Remove(ctx context.Context, userID string)
	Users() []models.User
	Filtered(f models.Filter) []models.User
	Stats() map[models.UserStatus]int
	Pending() bool
	Err() string
}

type rosterService struct {
	client client.Client
	store  store.TokenStore
	log    logging.Logger

	mu      sync.Mutex
	users   []models.User
	pending bool
	lastErr string
}

func NewRosterService(c client.Client, s store.TokenStore, l logging.Logger) RosterService {
	return &rosterService{client: c, store: s, log: l.With("component", "roster")}
}

func (r *rosterService) setErr(msg string) {
	r.mu.Lock()
	r.lastErr = msg
	r.mu.Unlock()
}

// Refresh replaces the roster with the backend's current list, in backend order.
func (r *rosterService) Refresh(ctx context.Context) {
	token := currentToken(ctx, r.store, r.log)
	if token == "" {
		return
	}

	r.mu.Lock()
	r.pending = true
	r.lastErr = ""
	r.mu.Unlock()

	users, err := r.client.ListUsers(ctx, token)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = false
	if err != nil {
		r.log.Warn(ctx, "fetch users", "error", err)
		r.lastErr = MsgFetchFailed
		return
	}
	r.users = users
	r.log.Debug(ctx, "users fetched", "count", len(users))
}

func (r *rosterService) SetStatus(ctx context.Context, userID string, status models.UserStatus) {
	token := currentToken(ctx, r.store, r.log)
	if token == "" {
		return
	}
	r.setErr("")

	if err := r.client.UpdateUserStatus(ctx, token, userID, status); err != nil {
		r.log.Warn(ctx, "update status", "user_id", userID, "status", string(status), "error", err)
		r.setErr(MsgUpdateStatusFailed)
		return
	}
	r.log.Info(ctx, "status updated", "user_id", userID, "status", string(status))
	r.Refresh(ctx)
}

func (r *rosterService) Remove(ctx context.Context, userID string) {
	token := currentToken(ctx, r.store, r.log)
	if token == "" {
		return
	}
	r.setErr("")

	if err := r.client.DeleteUser(ctx, token, userID); err != nil {
		r.log.Warn(ctx, "delete user", "user_id", userID, "error", err)
		r.setErr(MsgDeleteFailed)
		return
	}
	r.log.Info(ctx, "user deleted", "user_id", userID)
	r.Refresh(ctx)
}

// Users returns a copy of the current roster.
func (r *rosterService) Users() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.users)
}

func (r *rosterService) Filtered(f models.Filter) []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return FilterUsers(r.users, f)
}

func (r *rosterService) Stats() map[models.UserStatus]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return CountByStatus(r.users)
}

func (r *rosterService) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

func (r *rosterService) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
