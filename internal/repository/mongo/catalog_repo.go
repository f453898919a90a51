package mongo

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoCatalogRepository implements repository.CatalogRepository over the
// exercises and recipes collections.
type mongoCatalogRepository struct {
	exercises *mongoExerciseRepository
	recipes   *mongoRecipeRepository
}

// NewMongoCatalogRepository creates the read-side catalog used by the program generator.
func NewMongoCatalogRepository(db *mongo.Database, retry RetryPolicy) repository.CatalogRepository {
	return &mongoCatalogRepository{
		exercises: newExerciseRepository(db, retry),
		recipes:   newRecipeRepository(db, retry),
	}
}

func (r *mongoCatalogRepository) QueryExercisesByLevel(ctx context.Context, level domain.Level) ([]domain.Exercise, error) {
	return r.exercises.QueryByLevel(ctx, level)
}

func (r *mongoCatalogRepository) QueryRecipesByDiet(ctx context.Context, diet domain.Diet) ([]domain.Recipe, error) {
	return r.recipes.QueryByDiet(ctx, diet)
}

func (r *mongoCatalogRepository) AnyExercises(ctx context.Context, limit int64) ([]domain.Exercise, error) {
	return r.exercises.Any(ctx, limit)
}

func (r *mongoCatalogRepository) AnyRecipes(ctx context.Context, limit int64) ([]domain.Recipe, error) {
	return r.recipes.Any(ctx, limit)
}
