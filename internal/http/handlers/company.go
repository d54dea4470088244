package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
	"github.com/careerconnect/careerconnect-be/internal/http/respond"
	"github.com/careerconnect/careerconnect-be/internal/media"
	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/models/dto"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// CompanyHandler owns the company CRUD endpoints.
type CompanyHandler struct {
	store    storage.Store
	uploader media.Uploader
}

// NewCompanyHandler constructs the handler.
func NewCompanyHandler(store storage.Store, uploader media.Uploader) *CompanyHandler {
	return &CompanyHandler{store: store, uploader: uploader}
}

// Register creates a company owned by the authenticated user. Company names
// are globally unique.
func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	var req dto.CompanyRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.New(apperr.MissingFields, "Company name is required."))
		return
	}
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		respond.Err(w, apperr.New(apperr.MissingFields, "Company name is required."))
		return
	}

	company, err := h.store.CreateCompany(r.Context(), models.Company{Name: name, UserID: userID})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Err(w, apperr.New(apperr.DuplicateResource, "You can't register the same company again."))
			return
		}
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, "Company registered successfully.", respond.Fields{"company": company})
}

// Get lists the companies registered by the authenticated user.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		respond.Err(w, err)
		return
	}

	companies, err := h.store.ListCompaniesByUser(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(companies) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "No companies found for this user."))
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"companies": companies})
}

// GetByID fetches one company.
func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respond.Err(w, apperr.New(apperr.NotFound, "Company not found."))
		return
	}

	company, err := h.store.FindCompanyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "Company not found."))
			return
		}
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"company": company})
}

// GetAll lists every registered company.
func (h *CompanyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	companies, err := h.store.ListCompanies(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}
	if len(companies) == 0 {
		respond.Err(w, apperr.New(apperr.NotFound, "No companies found"))
		return
	}
	respond.JSON(w, http.StatusOK, "", respond.Fields{"companies": companies})
}

// Update applies partial company changes, uploading a new logo when a file
// is attached.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respond.Err(w, apperr.New(apperr.NotFound, "Company not found."))
		return
	}

	_ = r.ParseMultipartForm(maxUploadMemory)

	update := storage.CompanyUpdate{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Website:     strings.TrimSpace(r.FormValue("website")),
		Location:    strings.TrimSpace(r.FormValue("location")),
	}

	if file, header, ferr := r.FormFile("file"); ferr == nil {
		defer file.Close()
		logo, uerr := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if uerr != nil {
			respond.Err(w, uerr)
			return
		}
		update.Logo = logo
	}

	company, err := h.store.UpdateCompany(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.New(apperr.NotFound, "Company not found."))
			return
		}
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Company information updated successfully.", respond.Fields{"company": company})
}

// pathObjectID parses a chi path parameter into an object id.
func pathObjectID(r *http.Request, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, name))
}
