package handlers

import (
	"net/http"

	"github.com/xero1ghost/arcania-backend/internal/repositories"
	"github.com/xero1ghost/arcania-backend/internal/utils"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	users *repositories.UserRepository
}

func New(users *repositories.UserRepository) *Handler {
	return &Handler{users: users}
}

// NotFound is the JSON fallback for unknown routes, keeping the
// everything-is-JSON error contract even off the known paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.JSONError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter) {
	utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
