package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/repository"
	"github.com/ayushjpeg/Gym/internal/schedule"

	"github.com/google/uuid"
)

var (
	ErrHistoryNotFound = errors.New("history record not found")
)

// HistoryService persists workout log entries. Logging is replace-on-date:
// a second entry for the same exercise (or cardio day) on the same date
// supersedes the first.
type HistoryService interface {
	Log(ctx context.Context, record domain.HistoryRecord) (*domain.HistoryRecord, error)
	GetAll(ctx context.Context) ([]domain.HistoryRecord, error)
	GetForExercise(ctx context.Context, exerciseID string) ([]domain.HistoryRecord, error)
	Delete(ctx context.Context, id string) error
	ClearForExercise(ctx context.Context, exerciseID string) (int64, error)
}

// historyService implements the HistoryService interface.
type historyService struct {
	historyRepo  repository.HistoryRepository
	exerciseRepo repository.ExerciseRepository
}

// NewHistoryService creates a new instance of historyService.
func NewHistoryService(historyRepo repository.HistoryRepository, exerciseRepo repository.ExerciseRepository) HistoryService {
	return &historyService{
		historyRepo:  historyRepo,
		exerciseRepo: exerciseRepo,
	}
}

// Log normalizes and persists one history record, replacing any prior
// record for the same identity and date.
func (s *historyService) Log(ctx context.Context, record domain.HistoryRecord) (*domain.HistoryRecord, error) {
	now := time.Now().UTC()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = now
	}
	if record.Type == "" {
		record.Type = domain.EntryStrength
		if record.IsCardio() {
			record.Type = domain.EntryCardio
		}
	}

	// Normalize the date to plain YYYY-MM-DD; timestamps from older clients
	// carry a time suffix.
	if day, ok := schedule.ParseDay(record.Date); ok {
		record.Date = schedule.FormatDay(day)
	} else {
		record.Date = schedule.FormatDay(record.RecordedAt)
	}
	if record.DayKey == "" {
		if day, ok := schedule.ParseDay(record.Date); ok {
			record.DayKey = schedule.DayKeyFromDate(day)
		}
	}

	if record.IsCardio() {
		if record.DayKey == "" {
			return nil, ErrValidationFailed
		}
	} else if record.ExerciseID == "" {
		return nil, ErrValidationFailed
	}

	if err := s.historyRepo.DeleteMatchingDay(ctx, &record); err != nil {
		return nil, err
	}
	if err := s.historyRepo.Create(ctx, &record); err != nil {
		return nil, err
	}

	if !record.IsCardio() {
		s.refreshLastSession(ctx, record.ExerciseID)
	}
	return &record, nil
}

// GetAll returns every stored record, oldest first.
func (s *historyService) GetAll(ctx context.Context) ([]domain.HistoryRecord, error) {
	return s.historyRepo.GetAll(ctx)
}

// GetForExercise returns the stored records for one exercise, oldest first.
func (s *historyService) GetForExercise(ctx context.Context, exerciseID string) ([]domain.HistoryRecord, error) {
	return s.historyRepo.GetByExerciseID(ctx, exerciseID)
}

// Delete removes one record and refreshes the owning exercise's cached
// last session.
func (s *historyService) Delete(ctx context.Context, id string) error {
	record, err := s.historyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}
	if err := s.historyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHistoryNotFound
		}
		return err
	}
	if !record.IsCardio() {
		s.refreshLastSession(ctx, record.ExerciseID)
	}
	return nil
}

// ClearForExercise drops every record for one exercise and empties the
// exercise's cached last session.
func (s *historyService) ClearForExercise(ctx context.Context, exerciseID string) (int64, error) {
	deleted, err := s.historyRepo.DeleteByExerciseID(ctx, exerciseID)
	if err != nil {
		return 0, err
	}
	s.refreshLastSession(ctx, exerciseID)
	return deleted, nil
}

// refreshLastSession re-derives the exercise's cached last session from its
// remaining history. Best effort: the cache is display sugar, the history
// collection stays the source of truth.
func (s *historyService) refreshLastSession(ctx context.Context, exerciseID string) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return
	}

	records, err := s.historyRepo.GetByExerciseID(ctx, exerciseID)
	if err != nil {
		log.Printf("WARN: failed to load history for %s: %v", exerciseID, err)
		return
	}

	exercise.LastSession = []domain.Set{}
	exercise.LastPerformedOn = ""
	if len(records) > 0 {
		last := records[len(records)-1]
		exercise.LastSession = last.Sets
		exercise.LastPerformedOn = last.Date
	}
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		log.Printf("WARN: failed to refresh last session for %s: %v", exerciseID, err)
	}
}
