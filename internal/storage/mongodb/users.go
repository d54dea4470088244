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

// CreateUser inserts a new user document.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// FindUserByID fetches a user by object id.
func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// UpdateUser replaces the stored document with the given user. Concurrent
// writers follow the store's last-write-wins semantics.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	user.UpdatedAt = time.Now().UTC()

	res, err := s.users.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return models.User{}, translate(err)
	}
	if res.MatchedCount == 0 {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// ListUsers returns users, filtered by role when role is non-empty.
func (s *Store) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	cursor, err := s.users.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountUsersByRole counts accounts holding the given role.
func (s *Store) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{"role": role})
}
