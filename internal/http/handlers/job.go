package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/models/dto"
	"github.com/careerconnect/careerconnect-be/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobHandler owns the job posting endpoints.
type JobHandler struct {
	store storage.Store
}

// NewJobHandler constructs the handler.
func NewJobHandler(store storage.Store) *JobHandler {
	return &JobHandler{store: store}
}

// Post creates a job posting attributed to the authenticated recruiter.
func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	var req dto.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Something is missing."))
		return
	}

	if req.Title == "" || req.Description == "" || req.Requirements == "" || req.Salary == 0 ||
		req.Location == "" || req.JobType == "" || req.ExperienceLevel == 0 || req.Position == 0 || req.CompanyID == "" {
		respond.Err(w, apperr.New(apperr.MissingFields, "Something is missing."))
		return
	}

	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Something is missing."))
		return
	}

	job := models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    splitRequirements(req.Requirements),
		Salary:          req.Salary,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
		JobType:         req.JobType,
		Position:        req.Position,
		CompanyID:       companyID,
		CreatedBy:       userID,
	}
	created, err := h.store.CreateJob(r.Context(), job)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "New job created successfully.", respond.Fields{"job": created})
}

// Get lists postings, filtered by the ?keyword= query when present.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))

	jobs, err := h.store.ListJobs(r.Context(), keyword)
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(jobs) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "Jobs not found."))
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"jobs": jobs})
}

// GetByID fetches one posting.
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respond.Err(w, apperr.New(apperr.NotFound, "Job not found."))
		return
	}

	job, err := h.store.FindJobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "Job not found."))
			return
		}
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"job": job})
}

// GetAdminJobs lists the postings created by the authenticated user.
func (h *JobHandler) GetAdminJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	jobs, err := h.store.ListJobsByCreator(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(jobs) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "Jobs not found."))
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"jobs": jobs})
}

func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
