package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform shape of every error response. No endpoint ever
// returns a non-JSON error body.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageBody is the shape of plain acknowledgment responses.
type MessageBody struct {
	Message string `json:"message"`
}

// JSONResponse sends v as a JSON response with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError sends the uniform {"error": ...} body with the given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSONResponse(w, status, ErrorBody{Error: msg})
}

// JSONMessage sends a {"message": ...} acknowledgment with the given status.
func JSONMessage(w http.ResponseWriter, status int, msg string) {
	JSONResponse(w, status, MessageBody{Message: msg})
}
