// internal/domain/recipe.go
package domain

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is a catalog entry used to fill meal slots. Macros are grams, cook time minutes.
type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	CookTime    int                `bson:"cookTime" json:"cookTime"`
	Calories    int                `bson:"calories" json:"calories"`
	Protein     int                `bson:"protein" json:"protein"`
	Carbs       int                `bson:"carbs" json:"carbs"`
	Fat         int                `bson:"fat" json:"fat"`
	Diet        Diet               `bson:"diet" json:"diet"`
	Goal        Goal               `bson:"goal" json:"goal"`
	MealType    MealType           `bson:"mealType" json:"mealType"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the enum-typed fields and macro ranges of a catalog document.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return errors.New("recipe name is required")
	}
	if !r.Diet.Valid() {
		return fmt.Errorf("recipe %q: unknown diet %q", r.Name, r.Diet)
	}
	if !r.Goal.Valid() {
		return fmt.Errorf("recipe %q: unknown goal %q", r.Name, r.Goal)
	}
	if !r.MealType.Valid() {
		return fmt.Errorf("recipe %q: unknown meal type %q", r.Name, r.MealType)
	}
	if r.CookTime < 0 || r.Calories < 0 || r.Protein < 0 || r.Carbs < 0 || r.Fat < 0 {
		return fmt.Errorf("recipe %q: cook time and macros cannot be negative", r.Name)
	}
	return nil
}
