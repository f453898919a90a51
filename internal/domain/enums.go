// internal/domain/enums.go
package domain

import "strings"

// Level is the training experience a user declares during onboarding.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func (l Level) Label() string { return label(string(l)) }

// Goal is the training/nutrition objective. GoalUniversal is only valid on recipes.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalPerformance Goal = "performance"
	GoalUniversal   Goal = "universal"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalMuscleGain, GoalPerformance, GoalUniversal:
		return true
	}
	return false
}

// ValidForUser reports whether a user may pick this goal (universal is a recipe tag only).
func (g Goal) ValidForUser() bool {
	return g.Valid() && g != GoalUniversal
}

func (g Goal) Label() string { return label(string(g)) }

// Diet is the dietary restriction a recipe satisfies or a user follows.
type Diet string

const (
	DietStandard   Diet = "standard"
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietGlutenFree Diet = "gluten_free"
)

func (d Diet) Valid() bool {
	switch d {
	case DietStandard, DietVegetarian, DietVegan, DietGlutenFree:
		return true
	}
	return false
}

func (d Diet) Label() string { return label(string(d)) }

// Category groups exercises by movement pattern. It doubles as the session type.
type Category string

const (
	CategoryPush   Category = "push"
	CategoryPull   Category = "pull"
	CategoryLegs   Category = "legs"
	CategoryCardio Category = "cardio"
	CategoryCore   Category = "core"
)

// Categories lists every category in catalog order.
var Categories = []Category{CategoryPush, CategoryPull, CategoryLegs, CategoryCardio, CategoryCore}

func (c Category) Valid() bool {
	switch c {
	case CategoryPush, CategoryPull, CategoryLegs, CategoryCardio, CategoryCore:
		return true
	}
	return false
}

func (c Category) Label() string { return label(string(c)) }

// MealType is a slot in a day of the nutrition plan.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the daily meal slots in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

func (m MealType) Label() string { return label(string(m)) }

// Weekday is a lowercase day key ("monday" ... "sunday").
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Week is the calendar week in order, Monday first.
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) Valid() bool {
	for _, d := range Week {
		if d == w {
			return true
		}
	}
	return false
}

func (w Weekday) Label() string { return label(string(w)) }

// label turns "weight_loss" into "Weight Loss".
func label(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
