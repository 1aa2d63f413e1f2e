package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/services"
	"github.com/dmitrijs2005/gophadmin/internal/common"
)

// Interactive input indirections, swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getRequiredText = GetRequiredText
	getPassword     = GetPassword
	confirm         = Confirm
)

// errMissingPassword is reported when the password prompt is left empty.
var errMissingPassword = errors.New("password is required")

// Login prompts for email and password. On success the console switches to
// the users view and loads the roster.
func (a *App) Login(ctx context.Context) error {
	email, err := getRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printf("%s\n", err)
		return err
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.session.Login(ctx, models.Credentials{Email: email, Password: string(password)}) {
		a.notice(a.session.Err())
		return errors.New(a.session.Err())
	}

	a.printf("Logged in as %s\n", email)
	a.setView(ViewUsers)
	return a.Users(ctx, nil)
}

// Signup collects the new admin's details and the super admin key. A
// successful signup does not log in; the console returns to the login view.
func (a *App) Signup(ctx context.Context) error {
	username, err := getRequiredText(a.reader, "Enter username", a.out)
	if err != nil {
		a.printf("%s\n", err)
		return err
	}
	email, err := getRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printf("%s\n", err)
		return err
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	key, err := getRequiredText(a.reader, "Enter super admin key", a.out)
	if err != nil {
		a.printf("%s\n", err)
		return err
	}

	data := models.SignupData{
		Username:      username,
		Email:         email,
		Password:      string(password),
		SuperAdminKey: key,
	}
	if !a.session.Signup(ctx, data) {
		a.notice(a.session.Err())
		return errors.New(a.session.Err())
	}

	a.printf("Signup successful. Please log in.\n")
	a.setView(ViewLogin)
	return nil
}

// Logout forgets the stored token and drops the active filter.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.filter.Reset()
	a.setView(ViewLogin)
	a.printf("Logged out.\n")
	return nil
}

// WhoAmI prints the claims of the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	info, err := a.session.TokenInfo(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			a.printf("Not logged in.\n")
		} else {
			a.printf("Stored token is unreadable: %s\n", err)
		}
		return err
	}

	a.printf("subject: %s\nrole:    %s\n", info.Subject, info.Role)
	switch {
	case info.ExpiresAt.IsZero():
		a.printf("expires: never\n")
	case info.Expired(time.Now()):
		a.printf("expires: %s (expired, log in again)\n", info.ExpiresAt.Local().Format(time.RFC1123))
	default:
		a.printf("expires: %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func (a *App) readPassword() ([]byte, error) {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		a.printf("%s\n", err)
		return nil, err
	}
	if len(password) == 0 {
		a.printf("%s\n", errMissingPassword)
		return nil, errMissingPassword
	}
	return password, nil
}
