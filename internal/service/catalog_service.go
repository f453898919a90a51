package service

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrValidationFailed = errors.New("catalog validation failed")
)

// CatalogInvalidator drops cached catalog queries after a write. *cache.CatalogCache implements it.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context, kind string) error
}

// CatalogService is the admin surface for curating exercises and recipes.
type CatalogService interface {
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, level domain.Level) ([]domain.Exercise, error)
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	GetRecipeByID(ctx context.Context, recipeID primitive.ObjectID) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, diet domain.Diet) ([]domain.Recipe, error)
}

type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	recipeRepo   repository.RecipeRepository
	catalog      repository.CatalogRepository
	invalidator  CatalogInvalidator // nil when the catalog is not cached
	listLimit    int64
}

// NewCatalogService creates a new instance of catalogService. listLimit bounds
// unfiltered listings.
func NewCatalogService(
	exerciseRepo repository.ExerciseRepository,
	recipeRepo repository.RecipeRepository,
	catalog repository.CatalogRepository,
	invalidator CatalogInvalidator,
	listLimit int64,
) CatalogService {
	if listLimit <= 0 {
		listLimit = 100
	}
	return &catalogService{
		exerciseRepo: exerciseRepo,
		recipeRepo:   recipeRepo,
		catalog:      catalog,
		invalidator:  invalidator,
		listLimit:    listLimit,
	}
}

func (s *catalogService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise == nil {
		return nil, ErrValidationFailed
	}
	if err := exercise.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if exercise.Sets == 0 {
		exercise.Sets = domain.DefaultSets
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, err
	}
	s.invalidate(ctx, "exercises")
	return s.GetExerciseByID(ctx, exerciseID)
}

func (s *catalogService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListExercises filters by level, or returns up to listLimit exercises when level is empty.
func (s *catalogService) ListExercises(ctx context.Context, level domain.Level) ([]domain.Exercise, error) {
	if level == "" {
		return s.catalog.AnyExercises(ctx, s.listLimit)
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %q", ErrValidationFailed, level)
	}
	return s.catalog.QueryExercisesByLevel(ctx, level)
}

func (s *catalogService) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if recipe == nil {
		return nil, ErrValidationFailed
	}
	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	recipeID, err := s.recipeRepo.Create(ctx, recipe)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, err
	}
	s.invalidate(ctx, "recipes")
	return s.GetRecipeByID(ctx, recipeID)
}

func (s *catalogService) GetRecipeByID(ctx context.Context, recipeID primitive.ObjectID) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// ListRecipes filters by diet, or returns up to listLimit recipes when diet is empty.
func (s *catalogService) ListRecipes(ctx context.Context, diet domain.Diet) ([]domain.Recipe, error) {
	if diet == "" {
		return s.catalog.AnyRecipes(ctx, s.listLimit)
	}
	if !diet.Valid() {
		return nil, fmt.Errorf("%w: unknown diet %q", ErrValidationFailed, diet)
	}
	return s.catalog.QueryRecipesByDiet(ctx, diet)
}

func (s *catalogService) invalidate(ctx context.Context, kind string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, kind); err != nil {
		logger.Warn("catalog cache invalidation failed", "kind", kind, "error", err)
	}
}
