// Package services contains the application controllers of the gophadmin
// console. This file holds the session controller: login, signup, logout
// and the authentication state derived from the token store.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophadmin/internal/client/client"
	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/store"
	"github.com/dmitrijs2005/gophadmin/internal/logging"
)

const (
	MsgLoginFailed  = "Login failed. Please check your credentials."
	MsgSignupFailed = "Signup failed. Please check your information."
)

// ErrNotAuthenticated is returned by queries that need a stored token.
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionService owns the authentication flows.
//
// Login and Signup report success as a bool and expose the failure through
// Err; Pending is true while either is in flight. Concurrent calls are not
// deduplicated.
type SessionService interface {
	Login(ctx context.Context, creds models.Credentials) bool
	Signup(ctx context.Context, data models.SignupData) bool
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	TokenInfo(ctx context.Context) (TokenInfo, error)
	Pending() bool
	Err() string
}

type sessionService struct {
	client client.Client
	store  store.TokenStore
	log    logging.Logger

	mu      sync.Mutex
	pending bool
	lastErr string
}

// NewSessionService constructs a SessionService bound to the API client and token store.
func NewSessionService(c client.Client, s store.TokenStore, l logging.Logger) SessionService {
	return &sessionService{client: c, store: s, log: l.With("component", "session")}
}

func (s *sessionService) begin() {
	s.mu.Lock()
	s.pending = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *sessionService) end(errMsg string) {
	s.mu.Lock()
	s.pending = false
	s.lastErr = errMsg
	s.mu.Unlock()
}

// Login authenticates and, on success, persists the access token,
// replacing any previous one.
func (s *sessionService) Login(ctx context.Context, creds models.Credentials) bool {
	s.begin()
	errMsg := ""
	defer func() { s.end(errMsg) }()

	resp, err := s.client.Login(ctx, creds)
	if err != nil {
		s.log.Warn(ctx, "login rejected", "email", creds.Email, "error", err)
		errMsg = MsgLoginFailed
		return false
	}
	if err := s.store.Set(ctx, resp.AccessToken); err != nil {
		s.log.Error(ctx, "persist token", "error", err)
		errMsg = MsgLoginFailed
		return false
	}

	s.log.Info(ctx, "logged in", "email", creds.Email, "token_type", resp.TokenType)
	return true
}

// Signup creates an admin account. It does not log the new account in.
func (s *sessionService) Signup(ctx context.Context, data models.SignupData) bool {
	s.begin()
	errMsg := ""
	defer func() { s.end(errMsg) }()

	if err := s.client.Signup(ctx, data); err != nil {
		s.log.Warn(ctx, "signup rejected", "email", data.Email, "error", err)
		errMsg = MsgSignupFailed
		return false
	}

	s.log.Info(ctx, "signed up", "email", data.Email, "username", data.Username)
	return true
}

// Logout forgets the token locally. No server call is made.
func (s *sessionService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "clear token", "error", err)
		return
	}
	s.log.Info(ctx, "logged out")
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	return currentToken(ctx, s.store, s.log) != ""
}

// TokenInfo decodes the stored token for display.
func (s *sessionService) TokenInfo(ctx context.Context) (TokenInfo, error) {
	token := currentToken(ctx, s.store, s.log)
	if token == "" {
		return TokenInfo{}, ErrNotAuthenticated
	}
	return DecodeToken(token)
}

func (s *sessionService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *sessionService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// currentToken reads the store; a read failure counts as "no token".
func currentToken(ctx context.Context, s store.TokenStore, log logging.Logger) string {
	token, err := s.Get(ctx)
	if err != nil {
		log.Error(ctx, "read token", "error", err)
		return ""
	}
	return token
}
