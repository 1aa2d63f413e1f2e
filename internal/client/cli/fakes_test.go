package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophadmin/internal/client/config"
	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/services"
	"github.com/dmitrijs2005/gophadmin/internal/logging"
)

type fakeSession struct {
	loggedIn bool
	loginOK  bool
	signupOK bool
	errMsg   string
	info     services.TokenInfo
	infoErr  error

	creds      models.Credentials
	signup     models.SignupData
	logoutHits int
	loginHits  int
}

func (f *fakeSession) Login(_ context.Context, c models.Credentials) bool {
	f.loginHits++
	f.creds = c
	if !f.loginOK {
		f.errMsg = services.MsgLoginFailed
		return false
	}
	f.errMsg = ""
	f.loggedIn = true
	return true
}

func (f *fakeSession) Signup(_ context.Context, d models.SignupData) bool {
	f.signup = d
	if !f.signupOK {
		f.errMsg = services.MsgSignupFailed
		return false
	}
	f.errMsg = ""
	return true
}

func (f *fakeSession) Logout(context.Context) {
	f.logoutHits++
	f.loggedIn = false
}

func (f *fakeSession) IsAuthenticated(context.Context) bool { return f.loggedIn }
func (f *fakeSession) TokenInfo(context.Context) (services.TokenInfo, error) {
	if !f.loggedIn {
		return services.TokenInfo{}, services.ErrNotAuthenticated
	}
	return f.info, f.infoErr
}
func (f *fakeSession) Pending() bool { return false }
func (f *fakeSession) Err() string   { return f.errMsg }

type fakeRoster struct {
	users   []models.User
	failMsg string
	errMsg  string

	refreshes int
	statusIDs []string
	statuses  []models.UserStatus
	removed   []string
}

func (f *fakeRoster) Refresh(context.Context) {
	f.refreshes++
	f.errMsg = f.failMsg
}

func (f *fakeRoster) SetStatus(_ context.Context, id string, st models.UserStatus) {
	f.statusIDs = append(f.statusIDs, id)
	f.statuses = append(f.statuses, st)
	f.errMsg = f.failMsg
}

func (f *fakeRoster) Remove(_ context.Context, id string) {
	f.removed = append(f.removed, id)
	f.errMsg = f.failMsg
}

func (f *fakeRoster) Users() []models.User { return append([]models.User(nil), f.users...) }
func (f *fakeRoster) Filtered(flt models.Filter) []models.User {
	return services.FilterUsers(f.users, flt)
}
func (f *fakeRoster) Stats() map[models.UserStatus]int { return services.CountByStatus(f.users) }
func (f *fakeRoster) Pending() bool                    { return false }
func (f *fakeRoster) Err() string                      { return f.errMsg }

var sampleUsers = []models.User{
	{ID: "1", Username: "alice", Email: "alice@x.com", Status: models.StatusActive, CreatedAt: "2024-01-10 08:00:00"},
	{ID: "2", Username: "bob", Email: "bob@x.com", Status: models.StatusBanned, CreatedAt: "2024-02-20 09:30:00"},
	{ID: "3", Username: "carol", Email: "carol@y.org", Status: models.StatusSuspended, CreatedAt: "2024-03-05 12:00:00"},
}

// newTestApp builds an App over the fakes that reads input from in and
// writes to the returned buffer. Password prompts read plain lines.
func newTestApp(t *testing.T, s *fakeSession, r *fakeRoster, in string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	a := newApp(&config.Config{}, s, r, logging.NewNop())
	a.reader = bufio.NewReader(strings.NewReader(in))
	out := &bytes.Buffer{}
	a.out = out
	return a, out
}
