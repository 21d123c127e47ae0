package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xero1ghost/arcania-backend/internal/repositories"
	"github.com/xero1ghost/arcania-backend/internal/utils"
)

// DeleteAccount godoc
// @Summary Permanently delete an account and its vault
// @Description Hard delete; there is no confirmation step and no undo
// @Tags Account
// @Accept json
// @Produce json
// @Param body body DeleteAccountRequest true "Account email"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /delete-account [post]
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input DeleteAccountRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || input.Email == "" {
		utils.JSONError(w, http.StatusBadRequest, "Email is required")
		return
	}

	switch err := h.users.Delete(r.Context(), input.Email); {
	case errors.Is(err, repositories.ErrUserNotFound):
		utils.JSONError(w, http.StatusNotFound, "User not found.")
		return
	case err != nil:
		log.Printf("Delete account failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONMessage(w, http.StatusOK, "Account successfully deleted")
}

type DeleteAccountRequest struct {
	Email string `json:"email"`
}
