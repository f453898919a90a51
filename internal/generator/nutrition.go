package generator

import "alcyxob/fitness-coach/internal/domain"

// Macros of the meal used when the catalog has no recipe for a slot.
const (
	placeholderCalories = 300
	placeholderProtein  = 20
	placeholderCarbs    = 30
	placeholderFat      = 10
)

// filterRecipesByGoal keeps recipes for the user's goal plus universal ones.
func filterRecipesByGoal(recipes []domain.Recipe, goal domain.Goal) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.Goal == goal || r.Goal == domain.GoalUniversal {
			out = append(out, r)
		}
	}
	return out
}

// buildNutritionPlan fills every meal slot of all seven weekdays, independent of training days.
func buildNutritionPlan(rng Rand, recipes []domain.Recipe) []domain.MealPlanDay {
	byMeal := make(map[domain.MealType][]domain.Recipe)
	for _, r := range recipes {
		byMeal[r.MealType] = append(byMeal[r.MealType], r)
	}

	plan := make([]domain.MealPlanDay, 0, len(domain.Week))
	for _, day := range domain.Week {
		mealDay := domain.MealPlanDay{
			DayKey: day,
			Day:    day.Label(),
			Meals:  make([]domain.DailyMeal, 0, len(domain.MealTypes)),
		}
		for _, mealType := range domain.MealTypes {
			candidates := byMeal[mealType]
			if len(candidates) == 0 {
				mealDay.AddMeal(placeholderMeal(mealType))
				continue
			}
			mealDay.AddMeal(mealFromRecipe(mealType, &candidates[rng.IntN(len(candidates))]))
		}
		plan = append(plan, mealDay)
	}
	return plan
}

func mealFromRecipe(mealType domain.MealType, r *domain.Recipe) domain.DailyMeal {
	id := r.ID
	return domain.DailyMeal{
		MealType:    mealType,
		RecipeID:    &id,
		Name:        r.Name,
		Ingredients: append([]string(nil), r.Ingredients...),
		CookTime:    r.CookTime,
		Calories:    r.Calories,
		Protein:     r.Protein,
		Carbs:       r.Carbs,
		Fat:         r.Fat,
	}
}

func placeholderMeal(mealType domain.MealType) domain.DailyMeal {
	return domain.DailyMeal{
		MealType:    mealType,
		Name:        "Balanced " + mealType.Label(),
		Calories:    placeholderCalories,
		Protein:     placeholderProtein,
		Carbs:       placeholderCarbs,
		Fat:         placeholderFat,
		Placeholder: true,
	}
}
