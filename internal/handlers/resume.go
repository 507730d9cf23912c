package handlers

import (
	"net/http"

	"portfolio-backend/internal/services"
)

type ResumeHandler struct {
	resume *services.ResumeService
}

func NewResumeHandler(resume *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resume: resume}
}

// Download serves the resume PDF.
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	available, _ := h.resume.Status()
	if !available {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Resume is not available."})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="resume.pdf"`)
	http.ServeFile(w, r, h.resume.Path())
}

// Status answers the frontend's availability probe.
func (h *ResumeHandler) Status(w http.ResponseWriter, r *http.Request) {
	available, pages := h.resume.Status()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": available,
		"pages":     pages,
	})
}
