package users

import (
	"context"
	"fmt"
	"time"
)

var demoUsers = []struct {
	username string
	email    string
	status   Status
	age      time.Duration
}{
	{"alice", "alice@example.com", StatusActive, 90 * 24 * time.Hour},
	{"bob", "bob@example.com", StatusBanned, 60 * 24 * time.Hour},
	{"carol", "carol@example.org", StatusSuspended, 30 * 24 * time.Hour},
	{"dave", "dave@example.org", StatusActive, 7 * 24 * time.Hour},
	{"erin", "erin@example.net", StatusActive, 24 * time.Hour},
}

// Seed adds a fixed set of regular accounts with creation dates spread
// over the last three months.
func (s *Service) Seed(ctx context.Context) error {
	now := s.now()
	for _, d := range demoUsers {
		if _, err := s.AddUser(ctx, d.username, d.email, d.status, now.Add(-d.age)); err != nil {
			return fmt.Errorf("seed %s: %w", d.username, err)
		}
	}
	return nil
}
