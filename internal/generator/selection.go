package generator

import (
	"alcyxob/fitness-coach/internal/domain"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout constants.
const (
	avgRepsPerSet = 10
	secondsPerRep = 3
	bodyweight    = "bodyweight"
)

var exercisesPerLevel = map[domain.Level]int{
	domain.LevelBeginner:     4,
	domain.LevelIntermediate: 5,
	domain.LevelAdvanced:     6,
}

// baseRestSeconds is the rest between sets before the level multiplier.
var baseRestSeconds = map[domain.Category]float64{
	domain.CategoryPush:   90,
	domain.CategoryPull:   90,
	domain.CategoryLegs:   120,
	domain.CategoryCardio: 30,
	domain.CategoryCore:   60,
}

var restMultiplier = map[domain.Level]float64{
	domain.LevelBeginner:     1.2,
	domain.LevelIntermediate: 1.0,
	domain.LevelAdvanced:     0.8,
}

// sessionCategories maps a session type to the categories it draws exercises from, in draw order.
var sessionCategories = map[domain.Category][]domain.Category{
	domain.CategoryPush:   {domain.CategoryPush},
	domain.CategoryPull:   {domain.CategoryPull},
	domain.CategoryLegs:   {domain.CategoryLegs},
	domain.CategoryCardio: {domain.CategoryCardio, domain.CategoryCore},
	domain.CategoryCore:   {domain.CategoryCore, domain.CategoryCardio},
}

// RestTime is the rest in seconds between sets for a category at a level.
func RestTime(category domain.Category, level domain.Level) int {
	mult, ok := restMultiplier[level]
	if !ok {
		mult = 1.0
	}
	return int(math.Round(baseRestSeconds[category] * mult))
}

// EstimateDuration returns the session length in minutes: per exercise,
// sets*avgReps*secondsPerRep of work plus sets*restTime of rest.
func EstimateDuration(exercises []domain.ProgramExercise) int {
	total := 0
	for _, ex := range exercises {
		total += ex.Sets*avgRepsPerSet*secondsPerRep + ex.Sets*ex.RestTime
	}
	return int(math.Round(float64(total) / 60))
}

// filterByGoal narrows the fetched exercises for the user's goal. When the goal filter
// would leave nothing, the unfiltered list is kept so the fallback content still reaches the plan.
func filterByGoal(exercises []domain.Exercise, goal domain.Goal) []domain.Exercise {
	var keep func(e *domain.Exercise) bool
	switch goal {
	case domain.GoalWeightLoss:
		keep = func(e *domain.Exercise) bool {
			return e.Category == domain.CategoryCardio ||
				e.Category == domain.CategoryCore ||
				strings.EqualFold(strings.TrimSpace(e.Equipment), bodyweight)
		}
	case domain.GoalMuscleGain:
		keep = func(e *domain.Exercise) bool {
			return e.Category == domain.CategoryPush ||
				e.Category == domain.CategoryPull ||
				e.Category == domain.CategoryLegs
		}
	default:
		return exercises
	}

	out := make([]domain.Exercise, 0, len(exercises))
	for i := range exercises {
		if keep(&exercises[i]) {
			out = append(out, exercises[i])
		}
	}
	if len(out) == 0 {
		return exercises
	}
	return out
}

func groupByCategory(exercises []domain.Exercise) map[domain.Category][]domain.Exercise {
	grouped := make(map[domain.Category][]domain.Exercise)
	for _, ex := range exercises {
		grouped[ex.Category] = append(grouped[ex.Category], ex)
	}
	return grouped
}

// selectExercises picks the exercises of one session. pool is the goal-filtered catalog in
// catalog order and grouped is the same pool keyed by category.
func selectExercises(rng Rand, pool []domain.Exercise, grouped map[domain.Category][]domain.Exercise, sessionType domain.Category, level domain.Level) []domain.ProgramExercise {
	target := exercisesPerLevel[level]
	categories := sessionCategories[sessionType]
	if len(categories) == 0 {
		categories = []domain.Category{sessionType}
	}
	perCategory := int(math.Ceil(float64(target) / float64(len(categories))))

	selected := make([]domain.Exercise, 0, target+perCategory)
	seen := make(map[primitive.ObjectID]bool)

	for _, cat := range categories {
		candidates := grouped[cat]
		taken := 0
		for _, idx := range rng.Perm(len(candidates)) {
			if taken == perCategory {
				break
			}
			ex := candidates[idx]
			if seen[ex.ID] {
				continue
			}
			seen[ex.ID] = true
			selected = append(selected, ex)
			taken++
		}
	}

	// Sparse catalog: top up from any category.
	for i := 0; i < len(pool) && len(selected) < target; i++ {
		if seen[pool[i].ID] {
			continue
		}
		seen[pool[i].ID] = true
		selected = append(selected, pool[i])
	}

	if len(selected) > target {
		selected = selected[:target]
	}

	out := make([]domain.ProgramExercise, 0, len(selected))
	for i := range selected {
		out = append(out, snapshotExercise(&selected[i], level))
	}
	return out
}

func snapshotExercise(ex *domain.Exercise, level domain.Level) domain.ProgramExercise {
	return domain.ProgramExercise{
		ExerciseID:  ex.ID,
		Name:        ex.Name,
		Description: ex.Description,
		Category:    ex.Category,
		Equipment:   ex.Equipment,
		Sets:        ex.EffectiveSets(),
		Reps:        ex.Reps,
		RestTime:    RestTime(ex.Category, level),
	}
}

// buildWorkoutPlan creates one session per selected day, in the order the days were selected.
func buildWorkoutPlan(rng Rand, prefs domain.UserPreferences, exercises []domain.Exercise) []domain.WorkoutSession {
	grouped := groupByCategory(exercises)
	sequence := SessionSequence(len(prefs.SelectedDays))

	plan := make([]domain.WorkoutSession, 0, len(prefs.SelectedDays))
	for i, day := range prefs.SelectedDays {
		sessionType := sequence[i%len(sequence)]
		selected := selectExercises(rng, exercises, grouped, sessionType, prefs.Level)
		plan = append(plan, domain.WorkoutSession{
			DayKey:            day,
			Day:               day.Label(),
			Name:              sessionType.Label() + " Workout",
			Type:              sessionType,
			Exercises:         selected,
			EstimatedDuration: EstimateDuration(selected),
		})
	}
	return plan
}
