package api

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/generator"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProgramHandler serves the caller's own generated program.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

// ProgramRequest carries the questionnaire answers. daysPerWeek may be omitted.
type ProgramRequest struct {
	Level        domain.Level     `json:"level" binding:"required"`
	Goal         domain.Goal      `json:"goal" binding:"required"`
	Diet         domain.Diet      `json:"diet" binding:"required"`
	SelectedDays []domain.Weekday `json:"selectedDays" binding:"required"`
	DaysPerWeek  int              `json:"daysPerWeek"`
}

func (r ProgramRequest) toPreferences() domain.UserPreferences {
	return domain.UserPreferences{
		Level:        r.Level,
		Goal:         r.Goal,
		Diet:         r.Diet,
		SelectedDays: r.SelectedDays,
		DaysPerWeek:  r.DaysPerWeek,
	}
}

// --- Handler Methods ---

// GetMyProgram godoc
// @Summary Get the caller's program
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.GeneratedProgram
// @Failure 404 {object} gin.H "No program yet"
// @Router /programs/me [get]
func (h *ProgramHandler) GetMyProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	program, err := h.programService.GetExistingProgram(c.Request.Context(), userID)
	if err != nil {
		writeProgramError(c, err)
		return
	}
	if program == nil {
		abortWithError(c, http.StatusNotFound, service.ErrProgramNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, program)
}

// HasProgram godoc
// @Summary Check whether the caller has an active program
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "{\"exists\": true}"
// @Router /programs/me/exists [get]
func (h *ProgramHandler) HasProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	exists, err := h.programService.HasExistingProgram(c.Request.Context(), userID)
	if err != nil {
		writeProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// GenerateProgram godoc
// @Summary Generate a program from questionnaire answers
// @Tags Programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body ProgramRequest true "Preferences"
// @Success 201 {object} domain.GeneratedProgram
// @Failure 400 {object} gin.H "Invalid preferences"
// @Failure 409 {object} gin.H "Catalog not seeded"
// @Failure 503 {object} gin.H "Program could not be saved"
// @Router /programs/me [post]
func (h *ProgramHandler) GenerateProgram(c *gin.Context) {
	h.generate(c, http.StatusCreated, h.programService.GenerateProgram)
}

// UpdateProgram godoc
// @Summary Regenerate the caller's program with new answers
// @Tags Programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body ProgramRequest true "Preferences"
// @Success 200 {object} domain.GeneratedProgram
// @Router /programs/me [put]
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	h.generate(c, http.StatusOK, h.programService.UpdateProgram)
}

type generateFunc func(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error)

func (h *ProgramHandler) generate(c *gin.Context, status int, fn generateFunc) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithCode(c, http.StatusBadRequest, "invalid_preferences", fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := fn(c.Request.Context(), userID, req.toPreferences())
	if err != nil {
		writeProgramError(c, err)
		return
	}
	c.JSON(status, program)
}

// ExportProgram godoc
// @Summary Export the caller's program as a downloadable JSON file
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProgramExport
// @Failure 404 {object} gin.H "No program yet"
// @Router /programs/me/export [post]
func (h *ProgramHandler) ExportProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	export, err := h.programService.ExportProgram(c.Request.Context(), userID)
	if err != nil {
		writeProgramError(c, err)
		return
	}
	c.JSON(http.StatusOK, export)
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return "", false
	}
	return userID, true
}

// writeProgramError maps service and generator errors onto HTTP responses.
func writeProgramError(c *gin.Context, err error) {
	var noContent *generator.NoContentError
	var persistence *generator.PersistenceError

	switch {
	case errors.Is(err, domain.ErrInvalidPreferences):
		abortWithCode(c, http.StatusBadRequest, "invalid_preferences", err.Error())
	case errors.Is(err, service.ErrMissingPrincipalID), errors.Is(err, generator.ErrMissingUserID):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrProgramNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &noContent):
		logger.Warn("catalog has no usable content", "kind", noContent.Kind, "error", err)
		abortWithCode(c, http.StatusConflict, "catalog_not_seeded", fmt.Sprintf("No %s available to build a program", noContent.Kind))
	case errors.As(err, &persistence):
		logger.Error("program could not be saved", "userId", persistence.UserID, "error", err)
		abortWithCode(c, http.StatusServiceUnavailable, "persistence_failed", "Program could not be saved, please retry")
	case errors.Is(err, service.ErrExportUnavailable):
		abortWithCode(c, http.StatusServiceUnavailable, "export_unavailable", err.Error())
	case errors.Is(err, service.ErrExportFailed):
		logger.Error("program export failed", "error", err)
		abortWithCode(c, http.StatusBadGateway, "export_failed", service.ErrExportFailed.Error())
	case errors.Is(err, context.DeadlineExceeded):
		abortWithError(c, http.StatusGatewayTimeout, "Request timed out")
	default:
		logger.Error("unexpected program error", "error", err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
