package service

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubStore struct {
	programs map[string]*domain.GeneratedProgram
	err      error
}

func (s *stubStore) GetByUserID(_ context.Context, userID string) (*domain.GeneratedProgram, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.programs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *stubStore) Save(_ context.Context, p *domain.GeneratedProgram) error {
	if s.programs == nil {
		s.programs = map[string]*domain.GeneratedProgram{}
	}
	s.programs[p.UserID] = p
	return nil
}

type stubGenerator struct {
	store *stubStore
	calls int
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	p := &domain.GeneratedProgram{ID: userID, UserID: userID, Name: "Program", Preferences: prefs}
	return p, g.store.Save(ctx, p)
}

type stubFiles struct {
	objects     map[string][]byte
	contentType string
	putErr      error
	expires     time.Duration
}

func (f *stubFiles) PutObject(_ context.Context, key, contentType string, body io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	f.contentType = contentType
	return nil
}

func (f *stubFiles) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	f.expires = expires
	return "https://files.example.com/" + key + "?signed", nil
}

type stubUsers struct {
	byEmail   map[string]*domain.User
	createErr error
}

func (u *stubUsers) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if u.createErr != nil {
		return primitive.NilObjectID, u.createErr
	}
	if u.byEmail == nil {
		u.byEmail = map[string]*domain.User{}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	u.byEmail[user.Email] = &stored
	return user.ID, nil
}

func (u *stubUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := u.byEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (u *stubUsers) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, user := range u.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubExercises struct {
	items map[primitive.ObjectID]domain.Exercise
}

func (r *stubExercises) Create(_ context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
	if r.items == nil {
		r.items = map[primitive.ObjectID]domain.Exercise{}
	}
	e.ID = primitive.NewObjectID()
	r.items[e.ID] = *e
	return e.ID, nil
}

func (r *stubExercises) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

type stubRecipes struct {
	items map[primitive.ObjectID]domain.Recipe
}

func (r *stubRecipes) Create(_ context.Context, rec *domain.Recipe) (primitive.ObjectID, error) {
	if r.items == nil {
		r.items = map[primitive.ObjectID]domain.Recipe{}
	}
	rec.ID = primitive.NewObjectID()
	r.items[rec.ID] = *rec
	return rec.ID, nil
}

func (r *stubRecipes) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Recipe, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

type stubCatalog struct {
	lastLevel domain.Level
	lastDiet  domain.Diet
	anyLimit  int64
}

func (c *stubCatalog) QueryExercisesByLevel(_ context.Context, level domain.Level) ([]domain.Exercise, error) {
	c.lastLevel = level
	return nil, nil
}

func (c *stubCatalog) QueryRecipesByDiet(_ context.Context, diet domain.Diet) ([]domain.Recipe, error) {
	c.lastDiet = diet
	return nil, nil
}

func (c *stubCatalog) AnyExercises(_ context.Context, limit int64) ([]domain.Exercise, error) {
	c.anyLimit = limit
	return nil, nil
}

func (c *stubCatalog) AnyRecipes(_ context.Context, limit int64) ([]domain.Recipe, error) {
	c.anyLimit = limit
	return nil, nil
}

type stubInvalidator struct {
	kinds []string
}

func (i *stubInvalidator) Invalidate(_ context.Context, kind string) error {
	i.kinds = append(i.kinds, kind)
	return nil
}
