package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/persona"
)

// ProfileHandler serves the structured knowledge base the persona renders
// from, so the frontend and the assistant share one source of truth.
type ProfileHandler struct {
	profile *persona.Profile
}

func NewProfileHandler(profile *persona.Profile) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profile)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
