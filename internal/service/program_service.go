package service

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/logger"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/storage"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrExportUnavailable  = errors.New("program export is not configured")
	ErrExportFailed       = errors.New("failed to export program")
	ErrMissingPrincipalID = errors.New("user ID is required")
)

// ProgramGenerator builds and stores a program. *generator.Generator implements it.
type ProgramGenerator interface {
	Generate(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error)
}

// ProgramExport points at a JSON snapshot of a user's program in object storage.
type ProgramExport struct {
	URL       string    `json:"url"`
	ObjectKey string    `json:"objectKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExportConfig controls where snapshots go and how long their links live.
type ExportConfig struct {
	Prefix    string
	URLExpiry time.Duration
}

// ProgramService is the call surface the app uses for generated programs.
type ProgramService interface {
	HasExistingProgram(ctx context.Context, userID string) (bool, error)
	// GetExistingProgram returns nil, nil when the user has no program.
	GetExistingProgram(ctx context.Context, userID string) (*domain.GeneratedProgram, error)
	GenerateProgram(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error)
	// UpdateProgram regenerates from scratch and overwrites; there is no incremental edit.
	UpdateProgram(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error)
	ExportProgram(ctx context.Context, userID string) (*ProgramExport, error)
}

type programService struct {
	generator ProgramGenerator
	store     repository.ProgramStore
	files     storage.FileStorage // nil disables export
	export    ExportConfig
}

// NewProgramService creates a new instance of programService.
func NewProgramService(generator ProgramGenerator, store repository.ProgramStore, files storage.FileStorage, export ExportConfig) ProgramService {
	if export.Prefix == "" {
		export.Prefix = "program-exports"
	}
	if export.URLExpiry <= 0 {
		export.URLExpiry = storage.DefaultPresignedURLExpiry
	}
	return &programService{
		generator: generator,
		store:     store,
		files:     files,
		export:    export,
	}
}

// HasExistingProgram is true when a program exists and is not marked inactive.
func (s *programService) HasExistingProgram(ctx context.Context, userID string) (bool, error) {
	program, err := s.GetExistingProgram(ctx, userID)
	if err != nil {
		return false, err
	}
	return program != nil && program.Active(), nil
}

func (s *programService) GetExistingProgram(ctx context.Context, userID string) (*domain.GeneratedProgram, error) {
	if userID == "" {
		return nil, ErrMissingPrincipalID
	}
	program, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) GenerateProgram(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error) {
	if userID == "" {
		return nil, ErrMissingPrincipalID
	}
	return s.generator.Generate(ctx, userID, prefs)
}

func (s *programService) UpdateProgram(ctx context.Context, userID string, prefs domain.UserPreferences) (*domain.GeneratedProgram, error) {
	return s.GenerateProgram(ctx, userID, prefs)
}

// ExportProgram uploads the stored program as JSON and returns a presigned download link.
func (s *programService) ExportProgram(ctx context.Context, userID string) (*ProgramExport, error) {
	if s.files == nil {
		return nil, ErrExportUnavailable
	}
	program, err := s.GetExistingProgram(ctx, userID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	payload, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	objectKey := path.Join(s.export.Prefix, userID, uuid.NewString()+".json")
	if err := s.files.PutObject(ctx, objectKey, "application/json", bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	url, err := s.files.GeneratePresignedDownloadURL(ctx, objectKey, s.export.URLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	logger.Info("program exported", "userId", userID, "objectKey", objectKey)
	return &ProgramExport{
		URL:       url,
		ObjectKey: objectKey,
		ExpiresAt: time.Now().UTC().Add(s.export.URLExpiry),
	}, nil
}
