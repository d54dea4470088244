// Package mongodb implements the storage interfaces on top of the official
// MongoDB driver. The driver's pool handles connection management; the store
// itself holds no mutable state beyond collection handles.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerconnect/careerconnect-be/internal/storage"
)

// Ensure Store satisfies the aggregate interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides MongoDB-backed persistence for all entities.
type Store struct {
	client       *mongo.Client
	users        *mongo.Collection
	companies    *mongo.Collection
	jobs         *mongo.Collection
	applications *mongo.Collection
}

// New connects to MongoDB, verifies the connection, and ensures indexes.
func New(ctx context.Context, uri, database string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client:       client,
		users:        db.Collection("users"),
		companies:    db.Collection("companies"),
		jobs:         db.Collection("jobs"),
		applications: db.Collection("applications"),
	}
	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

// Close disconnects from the database.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Drop removes the backing database. Intended for integration tests that
// run against a throwaway database name.
func (s *Store) Drop(ctx context.Context) error {
	return s.users.Database().Drop(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("ensure users.email index: %w", err)
	}

	if _, err := s.companies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("ensure companies.name index: %w", err)
	}

	// One application per (job, applicant) pair.
	if _, err := s.applications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "job", Value: 1}, {Key: "applicant", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("ensure applications index: %w", err)
	}
	return nil
}

// translate maps driver errors onto the storage sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return storage.ErrAlreadyExists
	default:
		return err
	}
}
