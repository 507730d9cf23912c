package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

// enquiryLister reads back persisted enquiries for the admin surface.
type enquiryLister interface {
	List(ctx context.Context, limit int) ([]models.Enquiry, error)
}

type AdminHandler struct {
	jwt          *middleware.JWTAuth
	enquiries    enquiryLister // nil when no database is configured
	passwordHash string
}

func NewAdminHandler(jwt *middleware.JWTAuth, enquiries enquiryLister, passwordHash string) *AdminHandler {
	return &AdminHandler{jwt: jwt, enquiries: enquiries, passwordHash: passwordHash}
}

// Login handles POST /api/v1/admin/login: bcrypt-compare the password
// against the configured hash and issue a token.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Password is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid password"})
		return
	}

	token, err := h.jwt.GenerateToken()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to issue token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ListEnquiries handles GET /api/v1/admin/enquiries.
func (h *AdminHandler) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	if h.enquiries == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"enquiries": []models.Enquiry{}})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	enquiries, err := h.enquiries.List(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load enquiries"})
		return
	}
	if enquiries == nil {
		enquiries = []models.Enquiry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"enquiries": enquiries})
}
