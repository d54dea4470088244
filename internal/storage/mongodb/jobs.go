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

// CreateJob inserts a job posting.
func (s *Store) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	now := time.Now().UTC()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := s.jobs.InsertOne(ctx, job); err != nil {
		return models.Job{}, translate(err)
	}
	return job, nil
}

// ListJobs returns postings, optionally filtered by a case-insensitive
// keyword over title and description.
func (s *Store) ListJobs(ctx context.Context, keyword string) ([]models.Job, error) {
	filter := bson.M{}
	if keyword != "" {
		regex := bson.M{"$regex": keyword, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"description": regex},
		}
	}
	return s.listJobs(ctx, filter)
}

// FindJobByID fetches a posting by object id.
func (s *Store) FindJobByID(ctx context.Context, id primitive.ObjectID) (models.Job, error) {
	var job models.Job
	err := s.jobs.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		return models.Job{}, translate(err)
	}
	return job, nil
}

// ListJobsByCreator returns postings created by the given user.
func (s *Store) ListJobsByCreator(ctx context.Context, userID primitive.ObjectID) ([]models.Job, error) {
	return s.listJobs(ctx, bson.M{"created_by": userID})
}

func (s *Store) listJobs(ctx context.Context, filter bson.M) ([]models.Job, error) {
	cursor, err := s.jobs.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AddJobApplication records an application reference on the posting.
func (s *Store) AddJobApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error {
	res, err := s.jobs.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{
			"$push": bson.M{"applications": applicationID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
