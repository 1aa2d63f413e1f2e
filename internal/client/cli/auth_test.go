package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SuccessSwitchesToUsersAndRefreshes(t *testing.T) {
	s := &fakeSession{loginOK: true}
	r := &fakeRoster{users: sampleUsers}
	a, out := newTestApp(t, s, r, "admin@x.com\ns3cret\n")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, models.Credentials{Email: "admin@x.com", Password: "s3cret"}, s.creds)
	assert.Equal(t, ViewUsers, a.view)
	assert.Equal(t, 1, r.refreshes)
	assert.Contains(t, out.String(), "Logged in as admin@x.com")
	assert.Contains(t, out.String(), "Showing 3 of 3 users.")
}

func TestLogin_FailurePrintsNotice(t *testing.T) {
	s := &fakeSession{loginOK: false}
	r := &fakeRoster{}
	a, out := newTestApp(t, s, r, "admin@x.com\nwrong\n")

	require.Error(t, a.Login(context.Background()))

	assert.Equal(t, ViewLogin, a.view)
	assert.Zero(t, r.refreshes)
	assert.Contains(t, out.String(), "error: "+services.MsgLoginFailed)
}

func TestLogin_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "empty email", in: "\n", wantErr: errRequired},
		{name: "empty password", in: "admin@x.com\n\n", wantErr: errMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSession{loginOK: true}
			a, _ := newTestApp(t, s, &fakeRoster{}, tt.in)

			err := a.Login(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, s.loginHits, "session must not be called")
		})
	}
}

func TestLogin_PasswordFromTerminalIsWiped(t *testing.T) {
	s := &fakeSession{loginOK: true}
	a, _ := newTestApp(t, s, &fakeRoster{}, "admin@x.com\n")

	pw := []byte("s3cret")
	stubTerminal(t, true, pw, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "s3cret", s.creds.Password)
	assert.Equal(t, make([]byte, len(pw)), pw)
}

func TestSignup_SuccessReturnsToLogin(t *testing.T) {
	s := &fakeSession{signupOK: true}
	a, out := newTestApp(t, s, &fakeRoster{}, "root\nroot@x.com\npw\nkey-123\n")
	a.setView(ViewUsers)

	require.NoError(t, a.Signup(context.Background()))

	assert.Equal(t, models.SignupData{
		Username:      "root",
		Email:         "root@x.com",
		Password:      "pw",
		SuperAdminKey: "key-123",
	}, s.signup)
	assert.Equal(t, ViewLogin, a.view)
	assert.Contains(t, out.String(), "Signup successful. Please log in.")
	assert.False(t, s.loggedIn)
}

func TestSignup_Failure(t *testing.T) {
	s := &fakeSession{signupOK: false}
	a, out := newTestApp(t, s, &fakeRoster{}, "root\nroot@x.com\npw\nbad\n")

	require.Error(t, a.Signup(context.Background()))
	assert.Contains(t, out.String(), "error: "+services.MsgSignupFailed)
}

func TestSignup_MissingKey(t *testing.T) {
	s := &fakeSession{signupOK: true}
	a, _ := newTestApp(t, s, &fakeRoster{}, "root\nroot@x.com\npw\n\n")

	require.ErrorIs(t, a.Signup(context.Background()), errRequired)
	assert.Empty(t, s.signup.Email)
}

func TestLogout(t *testing.T) {
	s := &fakeSession{loggedIn: true}
	a, out := newTestApp(t, s, &fakeRoster{}, "")
	a.setView(ViewUsers)
	a.filter.Search = "al"

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, s.logoutHits)
	assert.Equal(t, ViewLogin, a.view)
	assert.True(t, a.filter.IsZero())
	assert.Contains(t, out.String(), "Logged out.")
}

func TestWhoAmI(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	s := &fakeSession{loggedIn: true, info: services.TokenInfo{Subject: "admin@x.com", Role: "admin", ExpiresAt: exp}}
	a, out := newTestApp(t, s, &fakeRoster{}, "")

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "subject: admin@x.com")
	assert.Contains(t, out.String(), "role:    admin")
	assert.NotContains(t, out.String(), "expired")
}

func TestWhoAmI_Expired(t *testing.T) {
	s := &fakeSession{loggedIn: true, info: services.TokenInfo{Subject: "a", ExpiresAt: time.Now().Add(-time.Minute)}}
	a, out := newTestApp(t, s, &fakeRoster{}, "")

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "expired, log in again")
}

func TestWhoAmI_NotLoggedIn(t *testing.T) {
	a, out := newTestApp(t, &fakeSession{}, &fakeRoster{}, "")

	err := a.WhoAmI(context.Background())
	require.ErrorIs(t, err, services.ErrNotAuthenticated)
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestWhoAmI_Undecodable(t *testing.T) {
	s := &fakeSession{loggedIn: true, infoErr: errors.New("decode token: malformed")}
	a, out := newTestApp(t, s, &fakeRoster{}, "")

	require.Error(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Stored token is unreadable")
}
