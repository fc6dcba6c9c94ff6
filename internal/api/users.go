package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/store"
)

// usersHandler provides admin-only user management handlers.
type usersHandler struct {
	users *store.UserStore
}

func registerUserRoutes(r chi.Router, deps Deps) {
	h := &usersHandler{users: deps.Users}
	r.Route("/users", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/", h.List)
		r.Put("/{id}/role", h.UpdateRole)
	})
}

// requireAdmin rejects requests from non-admin users with 403.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
			return
		}
		if !user.IsAdmin() {
			writeError(w, http.StatusForbidden, "admin role required", "ADMIN_REQUIRED")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userResponse(u *store.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

// List returns all registered users.
// GET /api/v1/users
//
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200  {object}  UserListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /users [get]
func (h *usersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &UserListResponse{Users: make([]*UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userResponse(u))
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateRole changes a user's role.
// PUT /api/v1/users/{id}/role
//
// @Summary      Update a user's role
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User ID"
// @Param        body  body      UpdateUserRoleRequest  true  "New role"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /users/{id}/role [put]
func (h *usersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Role != "user" && req.Role != "admin" {
		writeError(w, http.StatusBadRequest, "role must be user or admin", "BAD_REQUEST")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := h.users.GetByID(r.Context(), id); errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	updated, err := h.users.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, userResponse(updated))
}
