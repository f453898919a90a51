package generator

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fixedRand always picks the first candidate and keeps pools in catalog order.
type fixedRand struct{}

func (fixedRand) IntN(int) int { return 0 }

func (fixedRand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

type fakeCatalog struct {
	mu sync.Mutex

	byLevel   map[domain.Level][]domain.Exercise
	byDiet    map[domain.Diet][]domain.Recipe
	exercises []domain.Exercise
	recipes   []domain.Recipe

	levelErr, dietErr, anyExercisesErr, anyRecipesErr error

	anyExercisesCalls, anyRecipesCalls int
	lastLimit                          int64
}

func (f *fakeCatalog) QueryExercisesByLevel(_ context.Context, level domain.Level) ([]domain.Exercise, error) {
	if f.levelErr != nil {
		return nil, f.levelErr
	}
	return f.byLevel[level], nil
}

func (f *fakeCatalog) QueryRecipesByDiet(_ context.Context, diet domain.Diet) ([]domain.Recipe, error) {
	if f.dietErr != nil {
		return nil, f.dietErr
	}
	return f.byDiet[diet], nil
}

func (f *fakeCatalog) AnyExercises(_ context.Context, limit int64) ([]domain.Exercise, error) {
	f.mu.Lock()
	f.anyExercisesCalls++
	f.lastLimit = limit
	f.mu.Unlock()
	return f.exercises, f.anyExercisesErr
}

func (f *fakeCatalog) AnyRecipes(_ context.Context, limit int64) ([]domain.Recipe, error) {
	f.mu.Lock()
	f.anyRecipesCalls++
	f.lastLimit = limit
	f.mu.Unlock()
	return f.recipes, f.anyRecipesErr
}

type fakeStore struct {
	mu    sync.Mutex
	docs  map[string]*domain.GeneratedProgram
	saves int
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]*domain.GeneratedProgram{}}
}

func (s *fakeStore) GetByUserID(_ context.Context, userID string) (*domain.GeneratedProgram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.docs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *fakeStore) Save(_ context.Context, p *domain.GeneratedProgram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saves++
	s.docs[p.ID] = p
	return nil
}

func exercise(name string, cat domain.Category, level domain.Level, equipment string) domain.Exercise {
	return domain.Exercise{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Category:  cat,
		Level:     level,
		Equipment: equipment,
		Reps:      "8-12",
	}
}

func exercisesOf(prefix string, n int, cat domain.Category, level domain.Level, equipment string) []domain.Exercise {
	out := make([]domain.Exercise, n)
	for i := range out {
		out[i] = exercise(prefix+string(rune('1'+i)), cat, level, equipment)
	}
	return out
}

func recipe(name string, diet domain.Diet, goal domain.Goal, meal domain.MealType, cal, protein, carbs, fat int) domain.Recipe {
	return domain.Recipe{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Ingredients: []string{"ingredient"},
		CookTime:    15,
		Calories:    cal,
		Protein:     protein,
		Carbs:       carbs,
		Fat:         fat,
		Diet:        diet,
		Goal:        goal,
		MealType:    meal,
	}
}

// fullRecipeSet returns one recipe per meal type with distinct macros.
func fullRecipeSet(diet domain.Diet, goal domain.Goal) []domain.Recipe {
	return []domain.Recipe{
		recipe("Oat Bowl", diet, goal, domain.MealBreakfast, 350, 15, 55, 8),
		recipe("Grain Salad", diet, goal, domain.MealLunch, 520, 25, 60, 18),
		recipe("Stir Fry", diet, goal, domain.MealDinner, 610, 35, 65, 20),
		recipe("Nut Mix", diet, goal, domain.MealSnack, 200, 6, 10, 15),
	}
}

func concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
