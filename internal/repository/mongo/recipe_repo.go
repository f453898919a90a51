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

const recipeCollectionName = "recipes"

type mongoRecipeRepository struct {
	collection *mongo.Collection
	retry      RetryPolicy
}

// NewMongoRecipeRepository creates a new Recipe repository backed by MongoDB.
func NewMongoRecipeRepository(db *mongo.Database, retry RetryPolicy) repository.RecipeRepository {
	return newRecipeRepository(db, retry)
}

func newRecipeRepository(db *mongo.Database, retry RetryPolicy) *mongoRecipeRepository {
	return &mongoRecipeRepository{
		collection: db.Collection(recipeCollectionName),
		retry:      retry.orDefault(),
	}
}

// Create inserts a new recipe into the catalog.
func (r *mongoRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (primitive.ObjectID, error) {
	if err := recipe.Validate(); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", repository.ErrInvalidInput, err)
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}

	recipe.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, recipe)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted recipe ID")
	}
	return insertedID, nil
}

// GetByID retrieves a recipe by its ID.
func (r *mongoRecipeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.retry.Do(ctx, "recipes.getByID", func(ctx context.Context) error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// QueryByDiet returns every recipe tagged with the given diet.
func (r *mongoRecipeRepository) QueryByDiet(ctx context.Context, diet domain.Diet) ([]domain.Recipe, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, "recipes.byDiet", bson.M{"diet": diet}, findOptions)
}

// Any returns up to limit recipes with no filter.
func (r *mongoRecipeRepository) Any(ctx context.Context, limit int64) ([]domain.Recipe, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(limit)
	return r.find(ctx, "recipes.any", bson.M{}, findOptions)
}

func (r *mongoRecipeRepository) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	err := r.retry.Do(ctx, op, func(ctx context.Context) error {
		cursor, err := r.collection.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		recipes = nil
		if err := cursor.All(ctx, &recipes); err != nil {
			return err
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		if err := recipes[i].Validate(); err != nil {
			logger.Warn("skipping invalid recipe document", "id", recipes[i].ID.Hex(), "error", err)
			continue
		}
		out = append(out, recipes[i])
	}
	return out, nil
}

// EnsureRecipeIndexes creates necessary indexes for the recipes collection.
func EnsureRecipeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "diet", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "mealType", Value: 1}, {Key: "goal", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("failed to create indexes", "collection", collection.Name(), "error", err)
	}
}
