package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/models/dto"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// ApplicationHandler owns the job application endpoints.
type ApplicationHandler struct {
	store storage.Store
}

// NewApplicationHandler constructs the handler.
func NewApplicationHandler(store storage.Store) *ApplicationHandler {
	return &ApplicationHandler{store: store}
}

// appliedJob pairs an application with the posting it targets.
type appliedJob struct {
	models.Application
	Job models.Job `json:"jobDetails"`
}

// applicant pairs an application with the sanitized applicant account.
type applicant struct {
	models.Application
	Applicant models.User `json:"applicantDetails"`
}

// Apply files an application by the authenticated user for the job in the path.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	jobID, err := pathObjectID(r, "id")
	if err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Job id is required."))
		return
	}

	if _, err := h.store.FindJobByID(r.Context(), jobID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "Job not found."))
			return
		}
		respond.Err(w, err)
		return
	}

	app, err := h.store.CreateApplication(r.Context(), models.Application{
		JobID:       jobID,
		ApplicantID: userID,
		Status:      models.ApplicationPending,
		Progress:    models.ProgressApplied,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Err(w, apperr.New(apperr.DuplicateResource, "You have already applied for this job."))
			return
		}
		respond.Err(w, err)
		return
	}

	if err := h.store.AddJobApplication(r.Context(), jobID, app.ID); err != nil {
		log.Printf("record application %s on job %s: %v", app.ID.Hex(), jobID.Hex(), err)
	}
	respond.JSON(w, http.StatusCreated, "Job applied successfully.", respond.Fields{"application": app})
}

// GetAppliedJobs lists the authenticated user's applications with the
// postings they target.
func (h *ApplicationHandler) GetAppliedJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	apps, err := h.store.ListApplicationsByApplicant(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(apps) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "No Applications"))
		return
	}

	applied := make([]appliedJob, 0, len(apps))
	for _, app := range apps {
		entry := appliedJob{Application: app}
		if job, jerr := h.store.FindJobByID(r.Context(), app.JobID); jerr == nil {
			entry.Job = job
		}
		applied = append(applied, entry)
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"applications": applied})
}

// GetApplicants lists the applications a posting received with the
// sanitized applicant accounts.
func (h *ApplicationHandler) GetApplicants(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathObjectID(r, "id")
	if err != nil {
		respond.Err(w, apperr.New(apperr.NotFound, "Job not found."))
		return
	}

	job, err := h.store.FindJobByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "Job not found."))
			return
		}
		respond.Err(w, err)
		return
	}

	apps, err := h.store.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	applicants := make([]applicant, 0, len(apps))
	for _, app := range apps {
		entry := applicant{Application: app}
		if user, uerr := h.store.FindUserByID(r.Context(), app.ApplicantID); uerr == nil {
			entry.Applicant = user.Sanitized()
		}
		applicants = append(applicants, entry)
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"job": job, "applications": applicants})
}

// UpdateStatus records the recruiter decision on an application.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Status is required."))
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !models.ValidApplicationStatus(status) {
		respond.Err(w, apperr.New(apperr.MissingFields, "Status is required."))
		return
	}

	h.updateApplication(w, r, func(r *http.Request) (models.Application, error) {
		id, err := pathObjectID(r, "id")
		if err != nil {
			return models.Application{}, apperr.New(apperr.NotFound, "Application not found.")
		}
		return h.store.UpdateApplicationStatus(r.Context(), id, status)
	}, "Status updated successfully.")
}

// UpdateProgress advances the hiring stage of an application.
func (h *ApplicationHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req dto.ProgressUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Progress is required."))
		return
	}
	progress := strings.ToLower(strings.TrimSpace(req.Progress))
	if !models.ValidApplicationProgress(progress) {
		respond.Err(w, apperr.New(apperr.MissingFields, "Progress is required."))
		return
	}

	h.updateApplication(w, r, func(r *http.Request) (models.Application, error) {
		id, err := pathObjectID(r, "id")
		if err != nil {
			return models.Application{}, apperr.New(apperr.NotFound, "Application not found.")
		}
		return h.store.UpdateApplicationProgress(r.Context(), id, progress)
	}, "Progress updated successfully.")
}

// GetAll lists every application on the board.
func (h *ApplicationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.ListApplications(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(apps) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "No applications found"))
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"applications": apps})
}

func (h *ApplicationHandler) updateApplication(w http.ResponseWriter, r *http.Request, update func(*http.Request) (models.Application, error), message string) {
	app, err := update(r)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "Application not found."))
			return
		}
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, message, respond.Fields{"application": app})
}
