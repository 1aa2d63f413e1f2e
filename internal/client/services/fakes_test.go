package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophadmin/internal/client/client"
	"github.com/dmitrijs2005/gophadmin/internal/client/models"
)

// fakeClient implements client.Client for controller tests. ListUsers serves
// successive snapshots from lists, repeating the last one.
type fakeClient struct {
	mu sync.Mutex

	LoginResp *models.AuthResponse
	LoginErr  error
	SignupErr error
	ListErr   error
	UpdateErr error
	DeleteErr error

	lists     [][]models.User
	listCalls int

	LastCreds     models.Credentials
	LastSignup    models.SignupData
	LastListToken string
	LastUpdate    []string
	LastDeleteID  string
	LastMutToken  string
	calls         []string
	backend       []models.User
}

func (f *fakeClient) record(c string) {
	f.calls = append(f.calls, c)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("login")
	f.LastCreds = creds
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginResp, nil
}

func (f *fakeClient) Signup(_ context.Context, data models.SignupData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("signup")
	f.LastSignup = data
	return f.SignupErr
}

func (f *fakeClient) ListUsers(_ context.Context, token string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	f.LastListToken = token
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if f.backend != nil {
		return append([]models.User(nil), f.backend...), nil
	}
	if len(f.lists) == 0 {
		return []models.User{}, nil
	}
	i := f.listCalls
	if i >= len(f.lists) {
		i = len(f.lists) - 1
	}
	f.listCalls++
	return append([]models.User(nil), f.lists[i]...), nil
}

func (f *fakeClient) UpdateUserStatus(_ context.Context, token, userID string, status models.UserStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update")
	f.LastMutToken = token
	f.LastUpdate = []string{userID, string(status)}
	if f.UpdateErr == nil {
		for i := range f.backend {
			if f.backend[i].ID == userID {
				f.backend[i].Status = status
			}
		}
	}
	return f.UpdateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, token, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")
	f.LastMutToken = token
	f.LastDeleteID = userID
	if f.DeleteErr == nil {
		kept := f.backend[:0]
		for _, u := range f.backend {
			if u.ID != userID {
				kept = append(kept, u)
			}
		}
		f.backend = kept
	}
	return f.DeleteErr
}

var errBackend = &client.RequestFailedError{Op: client.OpListUsers}

// failingStore returns err from every call.
type failingStore struct{ err error }

func (s failingStore) Get(context.Context) (string, error) { return "", s.err }
func (s failingStore) Set(context.Context, string) error   { return s.err }
func (s failingStore) Clear(context.Context) error         { return s.err }

var errDisk = errors.New("disk gone")
