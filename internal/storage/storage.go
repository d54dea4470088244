// Package storage declares the persistence operations handlers depend on,
// keeping the document-store driver behind an interface.
package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careerconnect/careerconnect-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// CompanyUpdate carries the mutable company fields; empty strings are skipped.
type CompanyUpdate struct {
	Name        string
	Description string
	Website     string
	Location    string
	Logo        string
}

// UserStore captures persistence operations on user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// ListUsers returns all users, or only those with the given role when
	// role is non-empty.
	ListUsers(ctx context.Context, role string) ([]models.User, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
}

// CompanyStore captures persistence operations on companies.
type CompanyStore interface {
	// CreateCompany fails with ErrAlreadyExists when the name is taken.
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	FindCompanyByID(ctx context.Context, id primitive.ObjectID) (models.Company, error)
	ListCompaniesByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, id primitive.ObjectID, update CompanyUpdate) (models.Company, error)
}

// JobStore captures persistence operations on job postings.
type JobStore interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	// ListJobs filters by a case-insensitive keyword over title and
	// description when keyword is non-empty.
	ListJobs(ctx context.Context, keyword string) ([]models.Job, error)
	FindJobByID(ctx context.Context, id primitive.ObjectID) (models.Job, error)
	ListJobsByCreator(ctx context.Context, userID primitive.ObjectID) ([]models.Job, error)
	AddJobApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error
}

// ApplicationStore captures persistence operations on job applications.
type ApplicationStore interface {
	// CreateApplication fails with ErrAlreadyExists when the applicant has
	// already applied to the job.
	CreateApplication(ctx context.Context, app models.Application) (models.Application, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Application, error)
	UpdateApplicationProgress(ctx context.Context, id primitive.ObjectID, progress string) (models.Application, error)
	ListApplications(ctx context.Context) ([]models.Application, error)
}

// Store aggregates every entity store behind one dependency.
type Store interface {
	UserStore
	CompanyStore
	JobStore
	ApplicationStore
}
