package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler exposes exercise and recipe curation to admins.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs ---

type CreateExerciseRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category" binding:"required"`
	Level       domain.Level    `json:"level" binding:"required"`
	Equipment   string          `json:"equipment"`
	Sets        int             `json:"sets" binding:"omitempty,min=1,max=20"`
	Reps        string          `json:"reps"`
	VideoURL    string          `json:"videoUrl" binding:"omitempty,url"`
}

type CreateRecipeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Ingredients []string        `json:"ingredients"`
	CookTime    int             `json:"cookTime" binding:"min=0"`
	Calories    int             `json:"calories" binding:"min=0"`
	Protein     int             `json:"protein" binding:"min=0"`
	Carbs       int             `json:"carbs" binding:"min=0"`
	Fat         int             `json:"fat" binding:"min=0"`
	Diet        domain.Diet     `json:"diet" binding:"required"`
	Goal        domain.Goal     `json:"goal" binding:"required"`
	MealType    domain.MealType `json:"mealType" binding:"required"`
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Add an exercise to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} domain.Exercise
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 403 {object} gin.H "Forbidden (not an admin)"
// @Router /admin/exercises [post]
func (h *CatalogHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.CreateExercise(c.Request.Context(), &domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Equipment:   req.Equipment,
		Sets:        req.Sets,
		Reps:        req.Reps,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// ListExercises godoc
// @Summary List catalog exercises, optionally filtered by level
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param level query string false "beginner, intermediate or advanced"
// @Success 200 {array} domain.Exercise
// @Router /admin/exercises [get]
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context(), domain.Level(c.Query("level")))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary Get a catalog exercise
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Not found"
// @Router /admin/exercises/{id} [get]
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	exercise, err := h.catalogService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// CreateRecipe godoc
// @Summary Add a recipe to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body CreateRecipeRequest true "Recipe details"
// @Success 201 {object} domain.Recipe
// @Router /admin/recipes [post]
func (h *CatalogHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	recipe, err := h.catalogService.CreateRecipe(c.Request.Context(), &domain.Recipe{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		CookTime:    req.CookTime,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Diet:        req.Diet,
		Goal:        req.Goal,
		MealType:    req.MealType,
	})
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// ListRecipes godoc
// @Summary List catalog recipes, optionally filtered by diet
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param diet query string false "standard, vegetarian, vegan or gluten_free"
// @Success 200 {array} domain.Recipe
// @Router /admin/recipes [get]
func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalogService.ListRecipes(c.Request.Context(), domain.Diet(c.Query("diet")))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe godoc
// @Summary Get a catalog recipe
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} gin.H "Not found"
// @Router /admin/recipes/{id} [get]
func (h *CatalogHandler) GetRecipe(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}
	recipe, err := h.catalogService.GetRecipeByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func parseObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound), errors.Is(err, service.ErrRecipeNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		logger.Error("catalog request failed", "error", err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
