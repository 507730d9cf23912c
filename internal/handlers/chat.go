package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
)

// assistantService is what the chat handler needs from the assistant.
type assistantService interface {
	Ask(ctx context.Context, message string, history []models.ChatMessage) string
}

type ChatHandler struct {
	assistant assistantService
}

func NewChatHandler(assistant assistantService) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Ask handles POST /api/v1/chat. A missing or empty message is the only
// failure surfaced with an error status; everything past validation comes
// back as HTTP 200 with a reply body, apologies included.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}

	reply := h.assistant.Ask(r.Context(), req.Message, req.History)
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
