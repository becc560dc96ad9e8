package httputil

import (
	"encoding/json"
	"net/http"
)

// APIError is the wire shape of every error response.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondJSON writes a JSON response with the given status code.
// It handles encoding errors safely by marshaling first, preventing
// partial responses if encoding fails after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "internal_error", "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes an error response with a stable kind string and a
// human-readable message.
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	payload, err := json.Marshal(APIError{Error: kind, Message: message})
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
