// Package memory implements the storage interfaces with mutex-guarded maps.
// It backs handler tests and local development without a running MongoDB.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps all entities in process memory.
type Store struct {
	mu           sync.RWMutex
	users        map[primitive.ObjectID]models.User
	companies    map[primitive.ObjectID]models.Company
	jobs         map[primitive.ObjectID]models.Job
	applications map[primitive.ObjectID]models.Application
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:        make(map[primitive.ObjectID]models.User),
		companies:    make(map[primitive.ObjectID]models.Company),
		jobs:         make(map[primitive.ObjectID]models.Job),
		applications: make(map[primitive.ObjectID]models.Application),
	}
}

// CreateUser inserts a user, enforcing email uniqueness.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

// FindUserByEmail fetches a user by email.
func (s *Store) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindUserByID fetches a user by id.
func (s *Store) FindUserByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// UpdateUser replaces the stored user.
func (s *Store) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return models.User{}, storage.ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = user
	return user, nil
}

// ListUsers returns users, filtered by role when role is non-empty.
func (s *Store) ListUsers(_ context.Context, role string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, user := range s.users {
		if role == "" || user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

// CountUsersByRole counts users holding the given role.
func (s *Store) CountUsersByRole(_ context.Context, role string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, user := range s.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

// CreateCompany inserts a company, enforcing name uniqueness.
func (s *Store) CreateCompany(_ context.Context, company models.Company) (models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.companies {
		if existing.Name == company.Name {
			return models.Company{}, storage.ErrAlreadyExists
		}
	}

	now := time.Now().UTC()
	company.ID = primitive.NewObjectID()
	company.CreatedAt = now
	company.UpdatedAt = now
	s.companies[company.ID] = company
	return company, nil
}

// FindCompanyByID fetches a company by id.
func (s *Store) FindCompanyByID(_ context.Context, id primitive.ObjectID) (models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, ok := s.companies[id]
	if !ok {
		return models.Company{}, storage.ErrNotFound
	}
	return company, nil
}

// ListCompaniesByUser returns companies owned by the given user.
func (s *Store) ListCompaniesByUser(_ context.Context, userID primitive.ObjectID) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var companies []models.Company
	for _, company := range s.companies {
		if company.UserID == userID {
			companies = append(companies, company)
		}
	}
	return companies, nil
}

// ListCompanies returns every company.
func (s *Store) ListCompanies(_ context.Context) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var companies []models.Company
	for _, company := range s.companies {
		companies = append(companies, company)
	}
	return companies, nil
}

// UpdateCompany applies non-empty update fields.
func (s *Store) UpdateCompany(_ context.Context, id primitive.ObjectID, update storage.CompanyUpdate) (models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	company, ok := s.companies[id]
	if !ok {
		return models.Company{}, storage.ErrNotFound
	}
	if update.Name != "" {
		company.Name = update.Name
	}
	if update.Description != "" {
		company.Description = update.Description
	}
	if update.Website != "" {
		company.Website = update.Website
	}
	if update.Location != "" {
		company.Location = update.Location
	}
	if update.Logo != "" {
		company.Logo = update.Logo
	}
	company.UpdatedAt = time.Now().UTC()
	s.companies[id] = company
	return company, nil
}

// CreateJob inserts a job posting.
func (s *Store) CreateJob(_ context.Context, job models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now
	s.jobs[job.ID] = job
	return job, nil
}

// ListJobs returns postings matching the keyword, or all when empty.
func (s *Store) ListJobs(_ context.Context, keyword string) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keyword = strings.ToLower(keyword)
	var jobs []models.Job
	for _, job := range s.jobs {
		if keyword == "" ||
			strings.Contains(strings.ToLower(job.Title), keyword) ||
			strings.Contains(strings.ToLower(job.Description), keyword) {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

// FindJobByID fetches a posting by id.
func (s *Store) FindJobByID(_ context.Context, id primitive.ObjectID) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, storage.ErrNotFound
	}
	return job, nil
}

// ListJobsByCreator returns postings created by the given user.
func (s *Store) ListJobsByCreator(_ context.Context, userID primitive.ObjectID) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []models.Job
	for _, job := range s.jobs {
		if job.CreatedBy == userID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// AddJobApplication records an application reference on the posting.
func (s *Store) AddJobApplication(_ context.Context, jobID, applicationID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return storage.ErrNotFound
	}
	job.Applications = append(job.Applications, applicationID)
	job.UpdatedAt = time.Now().UTC()
	s.jobs[jobID] = job
	return nil
}

// CreateApplication inserts an application, rejecting duplicates per job.
func (s *Store) CreateApplication(_ context.Context, app models.Application) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return models.Application{}, storage.ErrAlreadyExists
		}
	}

	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	app.CreatedAt = now
	app.UpdatedAt = now
	s.applications[app.ID] = app
	return app, nil
}

// ListApplicationsByApplicant returns applications filed by the given user.
func (s *Store) ListApplicationsByApplicant(_ context.Context, applicantID primitive.ObjectID) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, app := range s.applications {
		if app.ApplicantID == applicantID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

// ListApplicationsByJob returns applications received by the given posting.
func (s *Store) ListApplicationsByJob(_ context.Context, jobID primitive.ObjectID) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, app := range s.applications {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

// ListApplications returns every application.
func (s *Store) ListApplications(_ context.Context) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, app := range s.applications {
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateApplicationStatus sets the recruiter decision.
func (s *Store) UpdateApplicationStatus(_ context.Context, id primitive.ObjectID, status string) (models.Application, error) {
	return s.updateApplication(id, func(app *models.Application) { app.Status = status })
}

// UpdateApplicationProgress advances the hiring stage.
func (s *Store) UpdateApplicationProgress(_ context.Context, id primitive.ObjectID, progress string) (models.Application, error) {
	return s.updateApplication(id, func(app *models.Application) { app.Progress = progress })
}

func (s *Store) updateApplication(id primitive.ObjectID, mutate func(*models.Application)) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return models.Application{}, storage.ErrNotFound
	}
	mutate(&app)
	app.UpdatedAt = time.Now().UTC()
	s.applications[id] = app
	return app, nil
}
