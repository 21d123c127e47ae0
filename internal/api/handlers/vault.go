package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/xero1ghost/arcania-backend/internal/repositories"
	"github.com/xero1ghost/arcania-backend/internal/utils"
)

// Vault blobs are small ciphertext arrays; anything near this limit is a
// misbehaving client.
const maxVaultSize = 16 << 20 // 16 MB

// GetVault godoc
// @Summary Read the encrypted vault blob
// @Description Returns the stored ciphertext array verbatim; the server never decrypts it
// @Tags Vault
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {array} any
// @Failure 404 {object} utils.ErrorBody
// @Router /get-vault/{email} [get]
func (h *Handler) GetVault(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	user, err := h.users.FindByEmail(r.Context(), r.PathValue("email"))
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		utils.JSONError(w, http.StatusNotFound, "User not found.")
		return
	case err != nil:
		log.Printf("Vault lookup failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	raw := user.EncryptedVaultData
	if raw == "" {
		raw = "[]"
	}

	var blob json.RawMessage
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		// The column is only ever written with validated JSON, so this
		// means the stored blob was corrupted out of band.
		log.Printf("Stored vault for %q is not valid JSON: %v", user.Email, err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, blob)
}

// SaveVault godoc
// @Summary Replace the encrypted vault blob
// @Description Full overwrite, not a merge; the client owns merging
// @Tags Vault
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Param body body any true "Ciphertext array"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /save-vault/{email} [post]
func (h *Handler) SaveVault(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxVaultSize))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !json.Valid(body) {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch err := h.users.SaveVault(r.Context(), r.PathValue("email"), string(body)); {
	case errors.Is(err, repositories.ErrUserNotFound):
		utils.JSONError(w, http.StatusNotFound, "User not found.")
		return
	case err != nil:
		log.Printf("Vault save failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONMessage(w, http.StatusOK, "Vault saved successfully")
}
