package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xero1ghost/arcania-backend/internal/models"
	"github.com/xero1ghost/arcania-backend/internal/repositories"
	"github.com/xero1ghost/arcania-backend/internal/utils"
)

// Signup godoc
// @Summary Create a vault account
// @Description Stores the client-derived salts and hashes verbatim and initializes an empty vault
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Client-derived credential material"
// @Success 201 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input SignupRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if input.Email == "" || input.AuthSalt == "" || input.EncryptionSalt == "" ||
		input.AuthHash == "" || input.MasterPasswordCheckHash == "" {
		utils.JSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user := models.User{
		Email:                   input.Email,
		AuthSalt:                input.AuthSalt,
		EncryptionSalt:          input.EncryptionSalt,
		AuthHash:                input.AuthHash,
		MasterPasswordCheckHash: input.MasterPasswordCheckHash,
	}

	switch err := h.users.Create(r.Context(), &user); {
	case errors.Is(err, repositories.ErrEmailTaken):
		utils.JSONError(w, http.StatusConflict, "An account with this email already exists.")
		return
	case err != nil:
		log.Printf("Signup failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONMessage(w, http.StatusCreated, "Signup successful!")
}

// SignupRequest is the client-derived credential material for a new account.
type SignupRequest struct {
	Email                   string `json:"email"`
	AuthSalt                string `json:"authSalt"`
	EncryptionSalt          string `json:"encryptionSalt"`
	AuthHash                string `json:"authHash"`
	MasterPasswordCheckHash string `json:"masterPasswordCheckHash"`
}

// GetSalts godoc
// @Summary Fetch the authentication salt for an email
// @Description Available before login so the client can re-derive its auth hash
// @Tags Auth
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} SaltsResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /get-salts/{email} [get]
func (h *Handler) GetSalts(w http.ResponseWriter, r *http.Request) {
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
		log.Printf("Salt lookup failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Only the auth salt. The encryption salt is unlock data and stays
	// out of the pre-login surface.
	utils.JSONResponse(w, http.StatusOK, SaltsResponse{AuthSalt: user.AuthSalt})
}

type SaltsResponse struct {
	AuthSalt string `json:"authSalt"`
}

// Login godoc
// @Summary Verify a client-derived authentication hash
// @Description Compares the provided hash against the stored one in constant time
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Email and re-derived auth hash"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input LoginRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Missing email or hash")
		return
	}

	if input.Email == "" || input.ProvidedAuthHash == "" {
		utils.JSONError(w, http.StatusBadRequest, "Missing email or hash")
		return
	}

	// Unknown email and wrong hash produce the identical response so the
	// endpoint cannot be used to enumerate accounts.
	user, err := h.users.FindByEmail(r.Context(), input.Email)
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		utils.JSONError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	case err != nil:
		log.Printf("Login lookup failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Constant-time comparison. Never substitute ordinary string equality.
	if subtle.ConstantTimeCompare([]byte(input.ProvidedAuthHash), []byte(user.AuthHash)) != 1 {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	utils.JSONMessage(w, http.StatusOK, "Login successful")
}

type LoginRequest struct {
	Email            string `json:"email"`
	ProvidedAuthHash string `json:"providedAuthHash"`
}

// GetUnlockData godoc
// @Summary Fetch the data needed to unlock a vault locally
// @Description Returns the encryption salt and master-password check hash; the client verifies the master password and derives its key locally. Unauthenticated by design: the client workflow always logs in first.
// @Tags Auth
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} UnlockDataResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /get-unlock-data/{email} [get]
func (h *Handler) GetUnlockData(w http.ResponseWriter, r *http.Request) {
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
		log.Printf("Unlock data lookup failed: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, UnlockDataResponse{
		EncryptionSalt:          user.EncryptionSalt,
		MasterPasswordCheckHash: user.MasterPasswordCheckHash,
	})
}

type UnlockDataResponse struct {
	EncryptionSalt          string `json:"encryptionSalt"`
	MasterPasswordCheckHash string `json:"masterPasswordCheckHash"`
}
