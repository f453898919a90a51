package mongo

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository and the exercise half
// of repository.CatalogRepository.
type mongoExerciseRepository struct {
	collection *mongo.Collection
	retry      RetryPolicy
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database, retry RetryPolicy) repository.ExerciseRepository {
	return newExerciseRepository(db, retry)
}

func newExerciseRepository(db *mongo.Database, retry RetryPolicy) *mongoExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
		retry:      retry.orDefault(),
	}
}

// Create inserts a new exercise into the catalog.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if err := exercise.Validate(); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.retry.Do(ctx, "exercises.getByID", func(ctx context.Context) error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// QueryByLevel returns every exercise tagged with the given level.
func (r *mongoExerciseRepository) QueryByLevel(ctx context.Context, level domain.Level) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, "exercises.byLevel", bson.M{"level": level}, findOptions)
}

// Any returns up to limit exercises with no filter.
func (r *mongoExerciseRepository) Any(ctx context.Context, limit int64) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(limit)
	return r.find(ctx, "exercises.any", bson.M{}, findOptions)
}

func (r *mongoExerciseRepository) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := r.retry.Do(ctx, op, func(ctx context.Context) error {
		cursor, err := r.collection.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		exercises = nil
		if err := cursor.All(ctx, &exercises); err != nil {
			return err
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}
	return validExercises(exercises), nil
}

// validExercises drops documents carrying unknown enum values.
func validExercises(in []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(in))
	for i := range in {
		if err := in[i].Validate(); err != nil {
			logger.Warn("skipping invalid exercise document", "id", in[i].ID.Hex(), "error", err)
			continue
		}
		out = append(out, in[i])
	}
	return out
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "level", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("failed to create indexes", "collection", collection.Name(), "error", err)
	}
}
