package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerconnect/careerconnect-be/internal/models"
)

// CreateApplication inserts an application; the unique (job, applicant)
// index rejects a second application to the same posting.
func (s *Store) CreateApplication(ctx context.Context, app models.Application) (models.Application, error) {
	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := s.applications.InsertOne(ctx, app); err != nil {
		return models.Application{}, translate(err)
	}
	return app, nil
}

// ListApplicationsByApplicant returns the applications filed by a user.
func (s *Store) ListApplicationsByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.Application, error) {
	return s.listApplications(ctx, bson.M{"applicant": applicantID})
}

// ListApplicationsByJob returns the applications received by a posting.
func (s *Store) ListApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]models.Application, error) {
	return s.listApplications(ctx, bson.M{"job": jobID})
}

// ListApplications returns every application.
func (s *Store) ListApplications(ctx context.Context) ([]models.Application, error) {
	return s.listApplications(ctx, bson.M{})
}

func (s *Store) listApplications(ctx context.Context, filter bson.M) ([]models.Application, error) {
	cursor, err := s.applications.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus sets the recruiter decision on an application.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Application, error) {
	return s.updateApplication(ctx, id, bson.M{"status": status})
}

// UpdateApplicationProgress advances the hiring stage of an application.
func (s *Store) UpdateApplicationProgress(ctx context.Context, id primitive.ObjectID, progress string) (models.Application, error) {
	return s.updateApplication(ctx, id, bson.M{"progress": progress})
}

func (s *Store) updateApplication(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Application, error) {
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var app models.Application
	err := s.applications.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&app)
	if err != nil {
		return models.Application{}, translate(err)
	}
	return app, nil
}
