package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
)

// contactSender relays an enquiry to the site owner.
type contactSender interface {
	SendContactMessage(name, replyTo, message string) error
}

// enquiryStore records enquiries when persistence is configured.
type enquiryStore interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
}

type ContactHandler struct {
	email     contactSender
	enquiries enquiryStore // nil when no database is configured
}

func NewContactHandler(email contactSender, enquiries enquiryStore) *ContactHandler {
	return &ContactHandler{email: email, enquiries: enquiries}
}

// Submit handles POST /api/v1/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "All fields are required and email must be valid."})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" || !strings.Contains(req.Email, "@") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "All fields are required and email must be valid."})
		return
	}

	// Record first: a relay failure should not lose the enquiry.
	if h.enquiries != nil {
		enquiry := &models.Enquiry{Name: req.Name, Email: req.Email, Message: req.Message}
		if err := h.enquiries.Create(r.Context(), enquiry); err != nil {
			log.Printf("contact: failed to persist enquiry: %v", err)
		}
	}

	if err := h.email.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		log.Printf("contact: relay failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to send message. Please try again."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
