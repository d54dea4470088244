package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerconnect/careerconnect-be/internal/models"
	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// companyUpdateTimeout caps the update lookup so a degraded primary cannot
// hold a request open indefinitely.
const companyUpdateTimeout = 5 * time.Second

// CreateCompany inserts a company; the unique name index rejects duplicates.
func (s *Store) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	now := time.Now().UTC()
	company.ID = primitive.NewObjectID()
	company.CreatedAt = now
	company.UpdatedAt = now

	if _, err := s.companies.InsertOne(ctx, company); err != nil {
		return models.Company{}, translate(err)
	}
	return company, nil
}

// FindCompanyByID fetches a company by object id.
func (s *Store) FindCompanyByID(ctx context.Context, id primitive.ObjectID) (models.Company, error) {
	var company models.Company
	err := s.companies.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		return models.Company{}, translate(err)
	}
	return company, nil
}

// ListCompaniesByUser returns the companies registered by the given user.
func (s *Store) ListCompaniesByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Company, error) {
	return s.listCompanies(ctx, bson.M{"userId": userID})
}

// ListCompanies returns every registered company.
func (s *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.listCompanies(ctx, bson.M{})
}

func (s *Store) listCompanies(ctx context.Context, filter bson.M) ([]models.Company, error) {
	cursor, err := s.companies.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// UpdateCompany applies the non-empty fields of update and returns the new
// document. The operation is time-boxed at five seconds.
func (s *Store) UpdateCompany(ctx context.Context, id primitive.ObjectID, update storage.CompanyUpdate) (models.Company, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Description != "" {
		set["description"] = update.Description
	}
	if update.Website != "" {
		set["website"] = update.Website
	}
	if update.Location != "" {
		set["location"] = update.Location
	}
	if update.Logo != "" {
		set["logo"] = update.Logo
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetMaxTime(companyUpdateTimeout)

	var company models.Company
	err := s.companies.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&company)
	if err != nil {
		return models.Company{}, translate(err)
	}
	return company, nil
}
