package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/logging"
	"github.com/dmitrijs2005/gophadmin/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// BasePath is where the admin API is mounted.
const BasePath = "/admin"

// UserService is the subset of users.Service the handlers need.
type UserService interface {
	Signup(ctx context.Context, in users.SignupInput) (*users.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	List(ctx context.Context) ([]*users.User, error)
	Get(ctx context.Context, id string) (*users.User, error)
	UpdateStatus(ctx context.Context, id string, status users.Status) error
	Delete(ctx context.Context, id string) error
	Authorize(token string) (string, error)
}

type handler struct {
	users  UserService
	logger logging.Logger
}

// NewRouter wires the admin endpoints under BasePath.
func NewRouter(us UserService, logger logging.Logger) http.Handler {
	h := &handler{users: us, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route(BasePath, func(r chi.Router) {
		r.Post("/signup", h.handleSignup)
		r.Post("/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/users", h.handleListUsers)
			r.Get("/users/{id}", h.handleGetUser)
			r.Put("/users/{id}/status", h.handleUpdateStatus)
			r.Delete("/users/{id}", h.handleDeleteUser)
		})
	})

	return r
}
