package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
	"github.com/careerconnect/careerconnect-be/internal/pdfgen"
)

// ResumeHandler renders resume PDFs to disk and serves them back.
type ResumeHandler struct {
	renderer *pdfgen.Renderer
}

// NewResumeHandler constructs the handler.
func NewResumeHandler(renderer *pdfgen.Renderer) *ResumeHandler {
	return &ResumeHandler{renderer: renderer}
}

// Create renders the posted resume fields into the PDF on disk.
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var resume pdfgen.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Something is missing"))
		return
	}

	if err := h.renderer.Render(resume); err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Resume PDF created successfully.", nil)
}

// Fetch serves the last rendered PDF.
func (h *ResumeHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	path := h.renderer.OutputPath()
	if _, err := os.Stat(path); err != nil {
		respond.Err(w, apperr.New(apperr.NotFound, "Resume not found."))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
