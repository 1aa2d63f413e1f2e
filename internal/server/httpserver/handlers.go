package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophadmin/internal/common"
	"github.com/dmitrijs2005/gophadmin/internal/server/users"
	"github.com/go-chi/chi/v5"
)

// createdAtLayout is the wire format of user creation times.
const createdAtLayout = "2006-01-02 15:04:05"

type signupRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	SuperAdminKey string `json:"super_admin_key"`
}

type adminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.UserName,
		Email:     u.Email,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func (h *handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Malformed request body")
		return
	}

	admin, err := h.users.Signup(r.Context(), users.SignupInput(req))
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "Invalid super admin key")
		return
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, "Admin already exists")
		return
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	default:
		h.logger.Error(r.Context(), "signup", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	h.logger.Info(r.Context(), "Registered admin", "email", admin.Email)
	writeJSON(w, http.StatusOK, adminResponse{
		ID:       admin.ID,
		Username: admin.UserName,
		Email:    admin.Email,
		Role:     admin.Role,
	})
}

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Malformed request body")
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "login", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "list users", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	resp := make([]userResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Malformed request body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.users.UpdateStatus(r.Context(), id, users.Status(req.Status)); err != nil {
		h.writeUserError(w, r, err)
		return
	}
	h.logger.Info(r.Context(), "Updated user status", "user_id", id, "status", req.Status, "admin_id", adminID(r.Context()))
	writeJSON(w, http.StatusOK, messageResponse{Message: "User status updated to " + req.Status})
}

func (h *handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.users.Delete(r.Context(), id); err != nil {
		h.writeUserError(w, r, err)
		return
	}
	h.logger.Info(r.Context(), "Deleted user", "user_id", id, "admin_id", adminID(r.Context()))
	writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

func (h *handler) writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, common.ErrorInvalidStatus):
		writeError(w, http.StatusBadRequest, "Invalid status. Must be one of: active, suspended, banned")
	default:
		h.logger.Error(r.Context(), "user operation", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
