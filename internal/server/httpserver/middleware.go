package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/common"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const adminIDKey ctxKey = "adminID"

// requireAdmin rejects requests without a valid admin bearer token.
func (h *handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, found := strings.Cut(r.Header.Get(common.AuthorizationHeaderName), " ")
		if !found || !strings.EqualFold(scheme, common.BearerScheme) || token == "" {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		adminID, err := h.users.Authorize(token)
		if err != nil {
			h.logger.Warn(r.Context(), "rejected token", "error", err)
			writeError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminID returns the id of the authenticated admin, if any.
func adminID(ctx context.Context) string {
	id, _ := ctx.Value(adminIDKey).(string)
	return id
}

func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", r.Header.Get(common.RequestIDHeaderName),
		)
	})
}
