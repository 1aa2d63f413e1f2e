package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/client/client"
	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/store"
	"github.com/dmitrijs2005/gophadmin/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(fc *fakeClient, ts store.TokenStore) SessionService {
	return NewSessionService(fc, ts, logging.NewNop())
}

func storedToken(t *testing.T, ts store.TokenStore) string {
	t.Helper()
	tok, err := ts.Get(context.Background())
	require.NoError(t, err)
	return tok
}

func TestLogin_Success_PersistsToken(t *testing.T) {
	fc := &fakeClient{LoginResp: &models.AuthResponse{AccessToken: "tok-1", TokenType: "bearer"}}
	ts := store.NewMemoryStore()
	svc := newSession(fc, ts)

	ok := svc.Login(context.Background(), models.Credentials{Email: "admin@x.com", Password: "pw"})

	require.True(t, ok)
	assert.Equal(t, "tok-1", storedToken(t, ts))
	assert.Equal(t, "admin@x.com", fc.LastCreds.Email)
	assert.Empty(t, svc.Err())
	assert.False(t, svc.Pending())
	assert.True(t, svc.IsAuthenticated(context.Background()))
}

func TestLogin_Failure_SetsFixedMessage_NoTokenWritten(t *testing.T) {
	fc := &fakeClient{LoginErr: &client.RequestFailedError{Op: client.OpLogin}}
	ts := store.NewMemoryStore()
	svc := newSession(fc, ts)

	ok := svc.Login(context.Background(), models.Credentials{Email: "admin@x.com", Password: "bad"})

	require.False(t, ok)
	assert.Equal(t, "Login failed. Please check your credentials.", svc.Err())
	assert.Empty(t, storedToken(t, ts))
	assert.False(t, svc.Pending())
	assert.False(t, svc.IsAuthenticated(context.Background()))
}

func TestLogin_NewLoginOverwritesToken(t *testing.T) {
	fc := &fakeClient{LoginResp: &models.AuthResponse{AccessToken: "first"}}
	ts := store.NewMemoryStore()
	svc := newSession(fc, ts)

	require.True(t, svc.Login(context.Background(), models.Credentials{}))
	fc.LoginResp = &models.AuthResponse{AccessToken: "second"}
	require.True(t, svc.Login(context.Background(), models.Credentials{}))

	assert.Equal(t, "second", storedToken(t, ts))
}

func TestLogin_ClearsPreviousError(t *testing.T) {
	fc := &fakeClient{LoginErr: errors.New("boom")}
	svc := newSession(fc, store.NewMemoryStore())

	require.False(t, svc.Login(context.Background(), models.Credentials{}))
	require.NotEmpty(t, svc.Err())

	fc.LoginErr = nil
	fc.LoginResp = &models.AuthResponse{AccessToken: "tok"}
	require.True(t, svc.Login(context.Background(), models.Credentials{}))
	assert.Empty(t, svc.Err())
}

func TestLogin_StoreWriteFailure(t *testing.T) {
	fc := &fakeClient{LoginResp: &models.AuthResponse{AccessToken: "tok"}}
	svc := newSession(fc, failingStore{err: errDisk})

	require.False(t, svc.Login(context.Background(), models.Credentials{}))
	assert.Equal(t, MsgLoginFailed, svc.Err())
	assert.False(t, svc.Pending())
}

// blockingClient holds Login until release is closed so Pending can be observed.
type blockingClient struct {
	fakeClient
	entered chan struct{}
	release chan struct{}
}

func (b *blockingClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	close(b.entered)
	<-b.release
	return &models.AuthResponse{AccessToken: "tok"}, nil
}

func TestLogin_PendingWhileInFlight(t *testing.T) {
	bc := &blockingClient{entered: make(chan struct{}), release: make(chan struct{})}
	svc := NewSessionService(bc, store.NewMemoryStore(), logging.NewNop())

	done := make(chan bool)
	go func() { done <- svc.Login(context.Background(), models.Credentials{}) }()

	<-bc.entered
	assert.True(t, svc.Pending())

	close(bc.release)
	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("login did not return")
	}
	assert.False(t, svc.Pending())
}

func TestSignup_Success_DoesNotPersistToken(t *testing.T) {
	fc := &fakeClient{}
	ts := store.NewMemoryStore()
	svc := newSession(fc, ts)

	data := models.SignupData{Username: "root", Email: "r@x.com", Password: "pw", SuperAdminKey: "key"}
	require.True(t, svc.Signup(context.Background(), data))

	assert.Equal(t, data, fc.LastSignup)
	assert.Empty(t, storedToken(t, ts))
	assert.Empty(t, svc.Err())
	assert.False(t, svc.Pending())
}

func TestSignup_Failure(t *testing.T) {
	fc := &fakeClient{SignupErr: &client.RequestFailedError{Op: client.OpSignup}}
	svc := newSession(fc, store.NewMemoryStore())

	require.False(t, svc.Signup(context.Background(), models.SignupData{}))
	assert.Equal(t, "Signup failed. Please check your information.", svc.Err())
	assert.False(t, svc.Pending())
}

func TestLogout_ClearsTokenWithoutServerCall(t *testing.T) {
	fc := &fakeClient{}
	ts := store.NewMemoryStore()
	require.NoError(t, ts.Set(context.Background(), "tok"))
	svc := newSession(fc, ts)

	svc.Logout(context.Background())

	assert.Empty(t, storedToken(t, ts))
	assert.Empty(t, fc.Calls())
	assert.False(t, svc.IsAuthenticated(context.Background()))
}

func TestLogout_StoreFailureDoesNotPanic(t *testing.T) {
	svc := newSession(&fakeClient{}, failingStore{err: errDisk})
	svc.Logout(context.Background())
	assert.False(t, svc.IsAuthenticated(context.Background()))
}

func TestTokenInfo(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin-1",
		"role": "admin",
		"exp":  exp.Unix(),
	}).SignedString([]byte("whatever"))
	require.NoError(t, err)

	ts := store.NewMemoryStore()
	svc := newSession(&fakeClient{}, ts)

	_, err = svc.TokenInfo(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, ts.Set(context.Background(), signed))
	info, err := svc.TokenInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin-1", info.Subject)
	assert.Equal(t, "admin", info.Role)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Minute)))
}

func TestDecodeToken_Opaque(t *testing.T) {
	_, err := DecodeToken("not-a-jwt")
	require.Error(t, err)

	assert.False(t, TokenInfo{}.Expired(time.Now()), "no exp claim never expires")
}
