package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CodedSedorf/mern-auth/internal/domain"
)

// Envelope is the uniform response wrapper. Every operation outcome,
// success or failure, is reported through it with HTTP 200; clients branch
// on the success flag.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ProfileEnvelope wraps profile responses.
type ProfileEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	User    *domain.Profile `json:"userData,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

func fail(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusOK, Envelope{Success: false, Message: err.Error()})
}
