// internal/domain/program.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramExercise is a snapshot of a catalog exercise taken at generation time.
// Later catalog edits do not change an issued plan.
type ProgramExercise struct {
	ExerciseID  primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    Category           `bson:"category" json:"category"`
	Equipment   string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Sets        int                `bson:"sets" json:"sets"`
	Reps        string             `bson:"reps" json:"reps"`
	RestTime    int                `bson:"restTime" json:"restTime"` // seconds
}

// WorkoutSession is one training day of the weekly plan.
type WorkoutSession struct {
	DayKey            Weekday           `bson:"dayKey" json:"dayKey"`
	Day               string            `bson:"day" json:"day"`
	Name              string            `bson:"name" json:"name"`
	Type              Category          `bson:"type" json:"type"`
	Exercises         []ProgramExercise `bson:"exercises" json:"exercises"`
	EstimatedDuration int               `bson:"estimatedDuration" json:"estimatedDuration"` // minutes
}

// DailyMeal fills one meal slot. RecipeID is nil for placeholder meals.
type DailyMeal struct {
	MealType    MealType            `bson:"mealType" json:"mealType"`
	RecipeID    *primitive.ObjectID `bson:"recipeId,omitempty" json:"recipeId,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Ingredients []string            `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	CookTime    int                 `bson:"cookTime" json:"cookTime"`
	Calories    int                 `bson:"calories" json:"calories"`
	Protein     int                 `bson:"protein" json:"protein"`
	Carbs       int                 `bson:"carbs" json:"carbs"`
	Fat         int                 `bson:"fat" json:"fat"`
	Placeholder bool                `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// MealPlanDay is one calendar day of the nutrition plan.
// The totals always equal the sum over Meals; mutate Meals through AddMeal or call RecomputeTotals.
type MealPlanDay struct {
	DayKey        Weekday     `bson:"dayKey" json:"dayKey"`
	Day           string      `bson:"day" json:"day"`
	Meals         []DailyMeal `bson:"meals" json:"meals"`
	TotalCalories int         `bson:"totalCalories" json:"totalCalories"`
	TotalProtein  int         `bson:"totalProtein" json:"totalProtein"`
	TotalCarbs    int         `bson:"totalCarbs" json:"totalCarbs"`
	TotalFat      int         `bson:"totalFat" json:"totalFat"`
}

// AddMeal appends a meal and refreshes the totals.
func (d *MealPlanDay) AddMeal(m DailyMeal) {
	d.Meals = append(d.Meals, m)
	d.RecomputeTotals()
}

// RecomputeTotals sets the day totals to the sum of its meals.
func (d *MealPlanDay) RecomputeTotals() {
	d.TotalCalories, d.TotalProtein, d.TotalCarbs, d.TotalFat = 0, 0, 0, 0
	for _, m := range d.Meals {
		d.TotalCalories += m.Calories
		d.TotalProtein += m.Protein
		d.TotalCarbs += m.Carbs
		d.TotalFat += m.Fat
	}
}

// GeneratedProgram is the per-user program document. ID equals UserID, so a user has at most one.
type GeneratedProgram struct {
	ID            string           `bson:"_id" json:"id"`
	UserID        string           `bson:"userId" json:"userId"`
	Name          string           `bson:"name" json:"name"`
	Description   string           `bson:"description" json:"description"`
	Preferences   UserPreferences  `bson:"preferences" json:"preferences"`
	WorkoutPlan   []WorkoutSession `bson:"workoutPlan" json:"workoutPlan"`
	NutritionPlan []MealPlanDay    `bson:"nutritionPlan" json:"nutritionPlan"`
	CreatedAt     time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time        `bson:"updatedAt" json:"updatedAt"`
	IsActive      *bool            `bson:"isActive,omitempty" json:"isActive,omitempty"` // absent means active
}

// Active reports whether the program is live. A missing flag counts as active.
func (p *GeneratedProgram) Active() bool {
	return p.IsActive == nil || *p.IsActive
}
