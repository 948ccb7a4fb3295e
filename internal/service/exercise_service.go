package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/repository"
	"github.com/ayushjpeg/Gym/internal/storage"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise id already in use")
	ErrValidationFailed = errors.New("validation failed")
	ErrNoVideoAttached  = errors.New("exercise has no demo video")
)

// ExerciseService manages the exercise catalog and its demo video
// attachments.
type ExerciseService interface {
	CreateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error)
	GetAllExercises(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
	GenerateVideoUploadURL(ctx context.Context, id, contentType string) (uploadURL, objectKey string, err error)
	GenerateVideoDownloadURL(ctx context.Context, id string) (string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo   repository.ExerciseRepository
	assignmentRepo repository.AssignmentRepository
	fileStorage    storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService. fileStorage
// may be nil when no object store is configured; video endpoints then fail
// with ErrNoVideoAttached.
func NewExerciseService(
	exerciseRepo repository.ExerciseRepository,
	assignmentRepo repository.AssignmentRepository,
	fileStorage storage.FileStorage,
) ExerciseService {
	return &exerciseService{
		exerciseRepo:   exerciseRepo,
		assignmentRepo: assignmentRepo,
		fileStorage:    fileStorage,
	}
}

// CreateExercise adds a new exercise to the catalog.
func (s *exerciseService) CreateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || exercise.Name == "" {
		return nil, ErrValidationFailed
	}
	normalizeMuscles(&exercise)

	if _, err := s.exerciseRepo.GetByID(ctx, exercise.ID); err == nil {
		return nil, ErrExerciseExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.exerciseRepo.Create(ctx, &exercise); err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exercise.ID)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetAllExercises retrieves the whole catalog.
func (s *exerciseService) GetAllExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

// UpdateExercise modifies an existing catalog entry. Fields not carried in
// the request keep their stored values; the handler merges before calling.
func (s *exerciseService) UpdateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || exercise.Name == "" {
		return nil, ErrValidationFailed
	}
	normalizeMuscles(&exercise)

	if err := s.exerciseRepo.Update(ctx, &exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exercise.ID)
}

// DeleteExercise removes an exercise from the catalog, reverts any slot
// selection pointing at it, and drops its demo video object. History
// records are intentionally kept; readers skip exercises absent from the
// catalog.
func (s *exerciseService) DeleteExercise(ctx context.Context, id string) error {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	cleared, err := s.assignmentRepo.ClearSelections(ctx, id)
	if err != nil {
		// The exercise is already gone; a stale selection self-heals on the
		// next resolve, so log and continue.
		log.Printf("WARN: failed to clear slot selections for deleted exercise %s: %v", id, err)
	} else if cleared > 0 {
		log.Printf("Cleared %d slot selection(s) pointing at deleted exercise %s", cleared, id)
	}

	if exercise.VideoObjectKey != "" && s.fileStorage != nil {
		if err := s.fileStorage.DeleteObject(ctx, exercise.VideoObjectKey); err != nil {
			log.Printf("WARN: failed to delete video object %s: %v", exercise.VideoObjectKey, err)
		}
	}
	return nil
}

// GenerateVideoUploadURL issues a presigned PUT URL for an exercise's demo
// video and records the object key on the exercise.
func (s *exerciseService) GenerateVideoUploadURL(ctx context.Context, id, contentType string) (string, string, error) {
	if s.fileStorage == nil {
		return "", "", ErrNoVideoAttached
	}
	exercise, err := s.GetExerciseByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	objectKey := fmt.Sprintf("exercise-videos/%s/%d", exercise.ID, time.Now().UTC().UnixMilli())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}

	exercise.VideoObjectKey = objectKey
	if _, err := s.UpdateExercise(ctx, *exercise); err != nil {
		return "", "", err
	}
	return uploadURL, objectKey, nil
}

// GenerateVideoDownloadURL issues a presigned GET URL for the exercise's
// stored demo video.
func (s *exerciseService) GenerateVideoDownloadURL(ctx context.Context, id string) (string, error) {
	if s.fileStorage == nil {
		return "", ErrNoVideoAttached
	}
	exercise, err := s.GetExerciseByID(ctx, id)
	if err != nil {
		return "", err
	}
	if exercise.VideoObjectKey == "" {
		return "", ErrNoVideoAttached
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.VideoObjectKey, storage.DefaultPresignedURLExpiry)
}

// normalizeMuscles keeps MuscleGroups consistent with the primary and
// secondary muscle fields.
func normalizeMuscles(exercise *domain.Exercise) {
	groups := make([]string, 0, 2)
	for _, m := range []string{exercise.PrimaryMuscle, exercise.SecondaryMuscle} {
		if m != "" {
			groups = append(groups, m)
		}
	}
	exercise.MuscleGroups = groups
}
