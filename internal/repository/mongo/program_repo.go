package mongo

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const programCollectionName = "userPrograms"

// mongoProgramStore implements repository.ProgramStore. Each document's _id is the user id.
type mongoProgramStore struct {
	collection *mongo.Collection
	retry      RetryPolicy
}

// NewMongoProgramStore creates the userPrograms store.
func NewMongoProgramStore(db *mongo.Database, retry RetryPolicy) repository.ProgramStore {
	return &mongoProgramStore{
		collection: db.Collection(programCollectionName),
		retry:      retry.orDefault(),
	}
}

// GetByUserID reads the user's program document.
func (r *mongoProgramStore) GetByUserID(ctx context.Context, userID string) (*domain.GeneratedProgram, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", repository.ErrInvalidInput)
	}

	var program domain.GeneratedProgram
	err := r.retry.Do(ctx, "userPrograms.get", func(ctx context.Context) error {
		return r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&program)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// Save overwrites the whole program document for program.UserID (upsert).
// Concurrent saves for the same user are last-write-wins.
func (r *mongoProgramStore) Save(ctx context.Context, program *domain.GeneratedProgram) error {
	if program == nil || program.UserID == "" {
		return fmt.Errorf("%w: program with user ID is required", repository.ErrInvalidInput)
	}
	if program.ID == "" {
		program.ID = program.UserID
	}
	if program.ID != program.UserID {
		return fmt.Errorf("%w: program ID %q must equal user ID %q", repository.ErrInvalidInput, program.ID, program.UserID)
	}

	opts := options.Replace().SetUpsert(true)
	return r.retry.Do(ctx, "userPrograms.save", func(ctx context.Context) error {
		_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": program.ID}, program, opts)
		return err
	})
}
