package service

import (
	"context"
	"errors"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/repository"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNoAlternatives     = errors.New("no alternative exercise available for this slot")
)

// AssignmentService manages manual slot substitutions. A selection is only
// a hint; unresolvable selections are ignored by the slot resolver, so
// writes here validate against the live catalog to keep hints honest.
type AssignmentService interface {
	GetAllAssignments(ctx context.Context) ([]domain.SlotAssignment, error)
	UpdateSelection(ctx context.Context, id, selectedExerciseID string) (*domain.SlotAssignment, error)
	Substitute(ctx context.Context, id string) (*domain.SlotAssignment, error)
}

// assignmentService implements the AssignmentService interface.
type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	exerciseRepo   repository.ExerciseRepository
}

// NewAssignmentService creates a new instance of assignmentService.
func NewAssignmentService(assignmentRepo repository.AssignmentRepository, exerciseRepo repository.ExerciseRepository) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		exerciseRepo:   exerciseRepo,
	}
}

// GetAllAssignments lists every slot assignment in template order.
func (s *assignmentService) GetAllAssignments(ctx context.Context) ([]domain.SlotAssignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// UpdateSelection records a manual pick for a slot. An empty id reverts the
// slot to its template default; a non-empty id must exist in the catalog.
func (s *assignmentService) UpdateSelection(ctx context.Context, id, selectedExerciseID string) (*domain.SlotAssignment, error) {
	if selectedExerciseID != "" {
		if _, err := s.exerciseRepo.GetByID(ctx, selectedExerciseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrExerciseNotFound
			}
			return nil, err
		}
	}

	assignment, err := s.assignmentRepo.UpdateSelected(ctx, id, selectedExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

// Substitute cycles the slot to the next option in its candidate list,
// skipping ids missing from the catalog. With no viable alternative the
// assignment is left untouched.
func (s *assignmentService) Substitute(ctx context.Context, id string) (*domain.SlotAssignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	candidates := assignment.Options
	if len(candidates) == 0 && assignment.DefaultExerciseID != "" {
		candidates = []string{assignment.DefaultExerciseID}
	}
	if len(candidates) == 0 {
		return nil, ErrNoAlternatives
	}

	current := assignment.SelectedExerciseID
	if current == "" {
		current = assignment.DefaultExerciseID
	}
	start := 0
	for i, candidate := range candidates {
		if candidate == current {
			start = i
			break
		}
	}

	// Walk the ring once looking for a live exercise other than the
	// current one.
	for step := 1; step <= len(candidates); step++ {
		next := candidates[(start+step)%len(candidates)]
		if next == current {
			continue
		}
		if _, err := s.exerciseRepo.GetByID(ctx, next); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		return s.assignmentRepo.UpdateSelected(ctx, id, next)
	}
	return nil, ErrNoAlternatives
}
