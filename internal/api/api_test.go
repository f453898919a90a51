package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/generator"
	"alcyxob/fitness-coach/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "api-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, userID string, role domain.Role, ttl time.Duration) string {
	t.Helper()
	claims := &service.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

type stubAuth struct{}

func (stubAuth) Register(_ context.Context, name, email, _ string) (*domain.User, error) {
	if email == "taken@example.com" {
		return nil, service.ErrUserAlreadyExists
	}
	return &domain.User{ID: primitive.NewObjectID(), Name: name, Email: email, Role: domain.RoleUser}, nil
}

func (stubAuth) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, service.ErrAuthenticationFailed
}

func (stubAuth) GetJWTSecret() string { return testSecret }

type stubPrograms struct {
	program     *domain.GeneratedProgram
	generateErr error
	lastPrefs   domain.UserPreferences
	lastUserID  string
}

func (s *stubPrograms) HasExistingProgram(context.Context, string) (bool, error) {
	return s.program != nil, nil
}

func (s *stubPrograms) GetExistingProgram(_ context.Context, userID string) (*domain.GeneratedProgram, error) {
	s.lastUserID = userID
	return s.program, nil
}

func (s *stubPrograms) GenerateProgram(_ context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error) {
	s.lastUserID = userID
	s.lastPrefs = prefs
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	s.program = &domain.GeneratedProgram{ID: userID, UserID: userID, Name: "Beginner Weight Loss Program", Preferences: prefs}
	return s.program, nil
}

func (s *stubPrograms) UpdateProgram(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error) {
	return s.GenerateProgram(ctx, userID, prefs)
}

func (s *stubPrograms) ExportProgram(_ context.Context, userID string) (*service.ProgramExport, error) {
	if s.program == nil {
		return nil, service.ErrProgramNotFound
	}
	key := "program-exports/" + userID + "/x.json"
	return &service.ProgramExport{URL: "https://files.example.com/" + key, ObjectKey: key}, nil
}

type stubCatalogService struct {
	created []domain.Exercise
}

func (s *stubCatalogService) CreateExercise(_ context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if !e.Category.Valid() {
		return nil, fmt.Errorf("%w: bad category", service.ErrValidationFailed)
	}
	e.ID = primitive.NewObjectID()
	s.created = append(s.created, *e)
	return e, nil
}

func (s *stubCatalogService) GetExerciseByID(context.Context, primitive.ObjectID) (*domain.Exercise, error) {
	return nil, service.ErrExerciseNotFound
}

func (s *stubCatalogService) ListExercises(context.Context, domain.Level) ([]domain.Exercise, error) {
	return s.created, nil
}

func (s *stubCatalogService) CreateRecipe(_ context.Context, r *domain.Recipe) (*domain.Recipe, error) {
	r.ID = primitive.NewObjectID()
	return r, nil
}

func (s *stubCatalogService) GetRecipeByID(context.Context, primitive.ObjectID) (*domain.Recipe, error) {
	return nil, service.ErrRecipeNotFound
}

func (s *stubCatalogService) ListRecipes(context.Context, domain.Diet) ([]domain.Recipe, error) {
	return nil, nil
}

func newTestRouter(programs *stubPrograms, catalog *stubCatalogService) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())
	SetupRoutes(router, stubAuth{}, programs, catalog)
	return router
}

func do(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body["code"]
}

var weightLossBody = map[string]any{
	"level":        "beginner",
	"goal":         "weight_loss",
	"diet":         "standard",
	"selectedDays": []string{"monday", "wednesday", "friday"},
}

func TestAuthMiddleware(t *testing.T) {
	router := newTestRouter(&stubPrograms{}, &stubCatalogService{})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, "u1", domain.RoleUser, -time.Minute), http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, "u1", domain.RoleUser, time.Hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("got %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
			if w.Header().Get(RequestIDHeader) == "" {
				t.Error("response should carry a request ID")
			}
		})
	}
}

func TestProgramLifecycle(t *testing.T) {
	programs := &stubPrograms{}
	router := newTestRouter(programs, &stubCatalogService{})
	token := signToken(t, "user-42", domain.RoleUser, time.Hour)

	if w := do(router, http.MethodGet, "/api/v1/programs/me", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before generation, got %d", w.Code)
	}

	w := do(router, http.MethodPost, "/api/v1/programs/me", token, weightLossBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if programs.lastUserID != "user-42" {
		t.Errorf("program should be keyed by the token's user, got %q", programs.lastUserID)
	}
	if len(programs.lastPrefs.SelectedDays) != 3 || programs.lastPrefs.Goal != domain.GoalWeightLoss {
		t.Errorf("preferences not bound: %+v", programs.lastPrefs)
	}

	w = do(router, http.MethodGet, "/api/v1/programs/me/exists", token, nil)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"exists":true`)) {
		t.Errorf("exists: %d %s", w.Code, w.Body.String())
	}

	if w := do(router, http.MethodPut, "/api/v1/programs/me", token, weightLossBody); w.Code != http.StatusOK {
		t.Errorf("expected 200 on update, got %d", w.Code)
	}

	w = do(router, http.MethodPost, "/api/v1/programs/me/export", token, nil)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("program-exports/user-42/")) {
		t.Errorf("export: %d %s", w.Code, w.Body.String())
	}
}

func TestProgramErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantTag  string
	}{
		{"invalid preferences", fmt.Errorf("%w: bad level", domain.ErrInvalidPreferences), http.StatusBadRequest, "invalid_preferences"},
		{"no exercises", &generator.NoContentError{Kind: generator.ContentExercises}, http.StatusConflict, "catalog_not_seeded"},
		{"no recipes", &generator.NoContentError{Kind: generator.ContentRecipes, Err: errors.New("timeout")}, http.StatusConflict, "catalog_not_seeded"},
		{"save failed", &generator.PersistenceError{UserID: "u1", Err: errors.New("write conflict")}, http.StatusServiceUnavailable, "persistence_failed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubPrograms{generateErr: tt.err}, &stubCatalogService{})
			token := signToken(t, "u1", domain.RoleUser, time.Hour)
			w := do(router, http.MethodPost, "/api/v1/programs/me", token, weightLossBody)
			if w.Code != tt.wantCode {
				t.Fatalf("got %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
			if got := errorCode(t, w); got != tt.wantTag {
				t.Errorf("code = %q, want %q", got, tt.wantTag)
			}
		})
	}
}

func TestProgramRequestBinding(t *testing.T) {
	router := newTestRouter(&stubPrograms{}, &stubCatalogService{})
	token := signToken(t, "u1", domain.RoleUser, time.Hour)

	w := do(router, http.MethodPost, "/api/v1/programs/me", token, map[string]any{"level": "beginner"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an incomplete body, got %d", w.Code)
	}
}

func TestExportWithoutProgram(t *testing.T) {
	router := newTestRouter(&stubPrograms{}, &stubCatalogService{})
	token := signToken(t, "u1", domain.RoleUser, time.Hour)
	if w := do(router, http.MethodPost, "/api/v1/programs/me/export", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAdminRoutes(t *testing.T) {
	catalog := &stubCatalogService{}
	router := newTestRouter(&stubPrograms{}, catalog)
	userToken := signToken(t, "u1", domain.RoleUser, time.Hour)
	adminToken := signToken(t, "a1", domain.RoleAdmin, time.Hour)

	pushUp := map[string]any{"name": "Push-up", "category": "push", "level": "beginner"}

	if w := do(router, http.MethodPost, "/api/v1/admin/exercises", userToken, pushUp); w.Code != http.StatusForbidden {
		t.Fatalf("regular users must be rejected, got %d", w.Code)
	}
	if w := do(router, http.MethodPost, "/api/v1/admin/exercises", adminToken, pushUp); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(catalog.created) != 1 || catalog.created[0].Name != "Push-up" {
		t.Errorf("exercise not forwarded: %+v", catalog.created)
	}

	bad := map[string]any{"name": "Stretch", "category": "stretch", "level": "beginner"}
	if w := do(router, http.MethodPost, "/api/v1/admin/exercises", adminToken, bad); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown category, got %d", w.Code)
	}

	w := do(router, http.MethodGet, "/api/v1/admin/recipes", adminToken, nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("empty recipe list should render as []: %d %q", w.Code, w.Body.String())
	}

	if w := do(router, http.MethodGet, "/api/v1/admin/exercises/not-an-id", adminToken, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed id, got %d", w.Code)
	}
	if w := do(router, http.MethodGet, "/api/v1/admin/recipes/"+primitive.NewObjectID().Hex(), adminToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRegisterHandler(t *testing.T) {
	router := newTestRouter(&stubPrograms{}, &stubCatalogService{})

	body := map[string]any{"name": "Ada", "email": "ada@example.com", "password": "password123"}
	if w := do(router, http.MethodPost, "/api/v1/auth/register", "", body); w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body["email"] = "taken@example.com"
	if w := do(router, http.MethodPost, "/api/v1/auth/register", "", body); w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	body["password"] = "short"
	if w := do(router, http.MethodPost, "/api/v1/auth/register", "", body); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a short password, got %d", w.Code)
	}

	login := map[string]any{"email": "ada@example.com", "password": "wrong"}
	if w := do(router, http.MethodPost, "/api/v1/auth/login", "", login); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
