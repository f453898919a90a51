package repository

import (
	"alcyxob/fitness-coach/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrInvalidInput = RepositoryError("invalid input")
	ErrDuplicate    = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// CatalogRepository is the read side of the exercise and recipe catalog used by the generator.
// Filtered queries may return an empty slice; Any* are bounded unfiltered fetches.
type CatalogRepository interface {
	QueryExercisesByLevel(ctx context.Context, level domain.Level) ([]domain.Exercise, error)
	QueryRecipesByDiet(ctx context.Context, diet domain.Diet) ([]domain.Recipe, error)
	AnyExercises(ctx context.Context, limit int64) ([]domain.Exercise, error)
	AnyRecipes(ctx context.Context, limit int64) ([]domain.Recipe, error)
}

// ExerciseRepository is the admin write side of the exercises collection.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
}

// RecipeRepository is the admin write side of the recipes collection.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error)
}

// ProgramStore holds one generated program document per user.
type ProgramStore interface {
	// GetByUserID returns ErrNotFound when the user has no program.
	GetByUserID(ctx context.Context, userID string) (*domain.GeneratedProgram, error)
	// Save replaces the whole document keyed by program.UserID, creating it if needed.
	Save(ctx context.Context, program *domain.GeneratedProgram) error
}
