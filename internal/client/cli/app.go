package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophadmin/internal/client/client"
	"github.com/dmitrijs2005/gophadmin/internal/client/config"
	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/services"
	"github.com/dmitrijs2005/gophadmin/internal/client/store"
	"github.com/dmitrijs2005/gophadmin/internal/logging"
)

// View is the screen the console is currently showing.
type View string

const (
	ViewLogin View = "login"
	ViewUsers View = "users"
)

type App struct {
	config  *config.Config
	session services.SessionService
	roster  services.RosterService
	log     logging.Logger

	filter models.Filter
	view   View

	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// NewApp opens the token store, builds the HTTP client and wires both
// controllers over them.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	tokens, db, err := store.Open(ctx, c.StorePath)
	if err != nil {
		l.Error(ctx, "open token store", "path", c.StorePath, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, client.WithLogger(l))

	a := newApp(c, services.NewSessionService(api, tokens, l), services.NewRosterService(api, tokens, l), l)
	a.closers = append(a.closers, api.Close, db.Close)
	return a, nil
}

func newApp(c *config.Config, s services.SessionService, r services.RosterService, l logging.Logger) *App {
	return &App{
		config:  c,
		session: s,
		roster:  r,
		log:     l,
		view:    ViewLogin,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run shows the roster right away when a token survived from the previous
// session, then blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to GophAdmin console (type 'help' for commands)")

	if a.isLoggedIn(ctx) {
		a.setView(ViewUsers)
		_ = a.Users(ctx, nil)
	} else {
		fmt.Fprintln(a.out, "Please log in or sign up.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the HTTP client and the store handle.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *App) setView(v View) {
	a.view = v
}

func (a *App) getStatus() string {
	s := string(a.view)
	if !a.filter.IsZero() {
		s += " filtered"
	}
	return s
}

// printf writes to the console output; write errors on a terminal are not actionable.
func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// notice prints a controller's user-facing error, if any.
func (a *App) notice(msg string) bool {
	if msg == "" {
		return false
	}
	a.printf("error: %s\n", msg)
	return true
}
