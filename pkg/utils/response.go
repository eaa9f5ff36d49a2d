package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON writes a JSON response envelope.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError writes the stable {"error": ...} failure envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondInternalError writes the catch-all 500 envelope with the captured
// failure detail. Callers never leak a raw stack trace through this path.
func RespondInternalError(w http.ResponseWriter, details string) {
	RespondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "Internal server error",
		"details": details,
	})
}
