package repository

import (
	"context"

	"github.com/ayushjpeg/Gym/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with the
// exercise catalog. Exercise ids are caller-assigned slugs, not generated.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SeedMany(ctx context.Context, exercises []domain.Exercise) error
}

// HistoryRepository defines the interface for persisted workout history
// records, both strength sessions and cardio runs.
type HistoryRepository interface {
	Create(ctx context.Context, record *domain.HistoryRecord) error
	GetByID(ctx context.Context, id string) (*domain.HistoryRecord, error)
	GetAll(ctx context.Context) ([]domain.HistoryRecord, error)
	GetByExerciseID(ctx context.Context, exerciseID string) ([]domain.HistoryRecord, error)
	// DeleteMatchingDay removes prior records sharing the new record's
	// identity and day, so logging twice on one date replaces rather than
	// duplicates. Cardio records match on dayKey+date, strength records on
	// exerciseId+date.
	DeleteMatchingDay(ctx context.Context, record *domain.HistoryRecord) error
	Delete(ctx context.Context, id string) error
	DeleteByExerciseID(ctx context.Context, exerciseID string) (int64, error)
}

// AssignmentRepository defines the interface for slot assignment documents,
// one per (dayKey, slotId) pair of the week template.
type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SlotAssignment, error)
	GetAll(ctx context.Context) ([]domain.SlotAssignment, error)
	UpdateSelected(ctx context.Context, id, selectedExerciseID string) (*domain.SlotAssignment, error)
	// ClearSelections drops any manual selection pointing at the given
	// exercise, used when the exercise leaves the catalog.
	ClearSelections(ctx context.Context, exerciseID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	SeedMany(ctx context.Context, assignments []domain.SlotAssignment) error
}

// TargetRepository defines the interface for per-muscle weekly set targets.
type TargetRepository interface {
	GetAll(ctx context.Context) ([]domain.MuscleTarget, error)
	Upsert(ctx context.Context, target *domain.MuscleTarget) error
	Count(ctx context.Context) (int64, error)
	SeedMany(ctx context.Context, targets []domain.MuscleTarget) error
}
