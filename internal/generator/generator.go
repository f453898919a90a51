// Package generator builds a weekly workout plan and a seven-day nutrition plan from a
// user's preferences and the exercise/recipe catalog, and stores the result per user.
package generator

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultFallbackLimit bounds the unfiltered catalog fetch.
const DefaultFallbackLimit int64 = 20

// Options tune a Generator. Zero values select the defaults.
type Options struct {
	FallbackLimit int64
	// Rand may be a non-thread-safe source such as a seeded *rand.Rand; the
	// Generator guards it with a mutex.
	Rand Rand
	Now  func() time.Time
}

// Generator turns preferences into a GeneratedProgram. It holds no per-user state,
// so one instance serves concurrent requests.
type Generator struct {
	catalog       repository.CatalogRepository
	store         repository.ProgramStore
	fallbackLimit int64
	rand          Rand
	now           func() time.Time
}

// New constructs a Generator over the given catalog and program store.
func New(catalog repository.CatalogRepository, store repository.ProgramStore, opts Options) *Generator {
	g := &Generator{
		catalog:       catalog,
		store:         store,
		fallbackLimit: opts.FallbackLimit,
		rand:          opts.Rand,
		now:           opts.Now,
	}
	if g.fallbackLimit <= 0 {
		g.fallbackLimit = DefaultFallbackLimit
	}
	if g.rand == nil {
		g.rand = globalRand{}
	} else {
		g.rand = &lockedRand{src: g.rand}
	}
	if g.now == nil {
		g.now = func() time.Time { return time.Now().UTC() }
	}
	return g
}

// Generate builds a fresh program for userID and overwrites any stored one.
// Selection is random, so repeated calls with the same preferences differ in content.
// Nothing is written unless both plans were assembled.
func (g *Generator) Generate(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	prefs = prefs.Clone()
	prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	log := logger.With("userId", userID, "level", prefs.Level, "goal", prefs.Goal, "diet", prefs.Diet)

	var (
		exercises []domain.Exercise
		recipes   []domain.Recipe
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		exercises, err = g.loadExercises(gctx, prefs)
		return err
	})
	grp.Go(func() error {
		var err error
		recipes, err = g.loadRecipes(gctx, prefs)
		return err
	})
	if err := grp.Wait(); err != nil {
		log.Warn("program generation aborted", "error", err)
		return nil, err
	}

	program := g.assemble(userID, prefs, exercises, recipes)

	if err := g.store.Save(ctx, program); err != nil {
		log.Error("failed to save generated program", "error", err)
		return nil, &PersistenceError{UserID: userID, Err: err}
	}

	log.Info("program generated", "sessions", len(program.WorkoutPlan), "exercisePool", len(exercises), "recipePool", len(recipes))
	return program, nil
}

// loadExercises fetches by level, falls back to any exercises, then applies the goal filter.
func (g *Generator) loadExercises(ctx context.Context, prefs domain.UserPreferences) ([]domain.Exercise, error) {
	exercises, filterErr := g.catalog.QueryExercisesByLevel(ctx, prefs.Level)
	if filterErr != nil || len(exercises) == 0 {
		logger.Info("no exercises for level, using fallback", "level", prefs.Level, "error", filterErr)

		var fallbackErr error
		exercises, fallbackErr = g.catalog.AnyExercises(ctx, g.fallbackLimit)
		if fallbackErr != nil || len(exercises) == 0 {
			return nil, &NoContentError{Kind: ContentExercises, Err: errors.Join(filterErr, fallbackErr)}
		}
	}
	return filterByGoal(exercises, prefs.Goal), nil
}

// loadRecipes fetches by diet, falls back to any recipes, then keeps the user's goal and universal ones.
func (g *Generator) loadRecipes(ctx context.Context, prefs domain.UserPreferences) ([]domain.Recipe, error) {
	recipes, filterErr := g.catalog.QueryRecipesByDiet(ctx, prefs.Diet)
	if filterErr != nil || len(recipes) == 0 {
		logger.Info("no recipes for diet, using fallback", "diet", prefs.Diet, "error", filterErr)

		var fallbackErr error
		recipes, fallbackErr = g.catalog.AnyRecipes(ctx, g.fallbackLimit)
		if fallbackErr != nil {
			return nil, &NoContentError{Kind: ContentRecipes, Err: errors.Join(filterErr, fallbackErr)}
		}
	}

	matching := filterRecipesByGoal(recipes, prefs.Goal)
	if len(matching) == 0 {
		return nil, &NoContentError{Kind: ContentRecipes, Err: filterErr}
	}
	return matching, nil
}

func (g *Generator) assemble(userID string, prefs domain.UserPreferences, exercises []domain.Exercise, recipes []domain.Recipe) *domain.GeneratedProgram {
	now := g.now()
	active := true
	return &domain.GeneratedProgram{
		ID:            userID,
		UserID:        userID,
		Name:          ProgramName(prefs),
		Description:   ProgramDescription(prefs),
		Preferences:   prefs,
		WorkoutPlan:   buildWorkoutPlan(g.rand, prefs, exercises),
		NutritionPlan: buildNutritionPlan(g.rand, recipes),
		CreatedAt:     now,
		UpdatedAt:     now,
		IsActive:      &active,
	}
}

// ProgramName is e.g. "Beginner Weight Loss Program".
func ProgramName(prefs domain.UserPreferences) string {
	return fmt.Sprintf("%s %s Program", prefs.Level.Label(), prefs.Goal.Label())
}

// ProgramDescription summarises level, goal, training days and diet in one sentence.
func ProgramDescription(prefs domain.UserPreferences) string {
	days := make([]string, len(prefs.SelectedDays))
	for i, d := range prefs.SelectedDays {
		days[i] = d.Label()
	}
	return fmt.Sprintf("A %s program focused on %s, training %d days a week on %s, with a %s meal plan.",
		strings.ToLower(prefs.Level.Label()),
		strings.ToLower(prefs.Goal.Label()),
		len(days),
		joinLabels(days),
		strings.ToLower(prefs.Diet.Label()),
	)
}

// joinLabels renders "A", "A and B", "A, B and C".
func joinLabels(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
