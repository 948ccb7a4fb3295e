package service

import (
	"context"
	"errors"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/planner"
	"github.com/ayushjpeg/Gym/internal/program"
	"github.com/ayushjpeg/Gym/internal/repository"
	"github.com/ayushjpeg/Gym/internal/schedule"
)

var (
	ErrUnknownDayKey  = errors.New("unknown day key")
	ErrBadWeekKey     = errors.New("malformed week key")
	ErrNotStrengthDay = errors.New("day has no strength slots")
)

// BootstrapPayload is everything the client needs in one load: the catalog,
// the slot assignments, the full history and the muscle targets.
type BootstrapPayload struct {
	Exercises   []domain.Exercise             `json:"exercises"`
	Assignments []domain.SlotAssignment       `json:"assignments"`
	History     []domain.HistoryRecord        `json:"history"`
	Targets     map[string]domain.TargetRange `json:"targets"`
}

// PlannerService computes the derived planning artifacts: resolved day
// plans, week overviews and weekly volume. Each call recomputes from a
// fresh snapshot; the derivations are pure, so recomputation is idempotent.
type PlannerService interface {
	Bootstrap(ctx context.Context) (*BootstrapPayload, error)
	DayPlan(ctx context.Context, dayKey string) ([]planner.ResolvedSlot, error)
	WeekOverview(ctx context.Context, weekKey string) (*domain.WeekOverview, error)
	WeeklyVolume(ctx context.Context, weekKey string) (map[string]int, error)
	MuscleTargets(ctx context.Context) (map[string]domain.TargetRange, error)
}

// plannerService implements the PlannerService interface.
type plannerService struct {
	exerciseRepo   repository.ExerciseRepository
	historyRepo    repository.HistoryRepository
	assignmentRepo repository.AssignmentRepository
	targetRepo     repository.TargetRepository
	template       domain.WeekTemplate
	fallback       map[string]domain.Exercise
}

// NewPlannerService creates a new instance of plannerService. The static
// seed library doubles as the slot resolver's placeholder fallback.
func NewPlannerService(
	exerciseRepo repository.ExerciseRepository,
	historyRepo repository.HistoryRepository,
	assignmentRepo repository.AssignmentRepository,
	targetRepo repository.TargetRepository,
) PlannerService {
	return &plannerService{
		exerciseRepo:   exerciseRepo,
		historyRepo:    historyRepo,
		assignmentRepo: assignmentRepo,
		targetRepo:     targetRepo,
		template:       program.WeekTemplate(),
		fallback:       program.DefaultExercises(),
	}
}

// Bootstrap loads the full client payload in one call.
func (s *plannerService) Bootstrap(ctx context.Context) (*BootstrapPayload, error) {
	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.MuscleTargets(ctx)
	if err != nil {
		return nil, err
	}

	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	if assignments == nil {
		assignments = []domain.SlotAssignment{}
	}
	if history == nil {
		history = []domain.HistoryRecord{}
	}

	return &BootstrapPayload{
		Exercises:   exercises,
		Assignments: assignments,
		History:     history,
		Targets:     targets,
	}, nil
}

// DayPlan resolves the slots of one strength day against the live catalog.
func (s *plannerService) DayPlan(ctx context.Context, dayKey string) ([]planner.ResolvedSlot, error) {
	if !schedule.IsDayKey(dayKey) {
		return nil, ErrUnknownDayKey
	}
	day, ok := s.template[dayKey]
	if !ok || !day.IsStrength() {
		return nil, ErrNotStrengthDay
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return planner.ResolveDay(dayKey, day, domain.Overrides(assignments), catalog, s.fallback), nil
}

// WeekOverview builds the per-day completion report for one ISO week.
func (s *plannerService) WeekOverview(ctx context.Context, weekKey string) (*domain.WeekOverview, error) {
	if !schedule.IsWeekKey(weekKey) {
		return nil, ErrBadWeekKey
	}
	catalog, logs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	overview := planner.BuildWeekOverview(weekKey, s.template, logs, catalog)
	return &overview, nil
}

// WeeklyVolume aggregates per-muscle set counts for one ISO week.
func (s *plannerService) WeeklyVolume(ctx context.Context, weekKey string) (map[string]int, error) {
	if !schedule.IsWeekKey(weekKey) {
		return nil, ErrBadWeekKey
	}
	catalog, logs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return planner.WeeklyVolume(weekKey, logs, catalog), nil
}

// MuscleTargets returns the weekly set-count target per muscle.
func (s *plannerService) MuscleTargets(ctx context.Context) (map[string]domain.TargetRange, error) {
	stored, err := s.targetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]domain.TargetRange, len(stored))
	for _, t := range stored {
		targets[t.Muscle] = t.Range
	}
	return targets, nil
}

// catalog loads the live exercise catalog as a lookup map.
func (s *plannerService) catalog(ctx context.Context) (map[string]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		catalog[ex.ID] = ex
	}
	return catalog, nil
}

// snapshot loads the catalog and reconciles the full history into logs.
func (s *plannerService) snapshot(ctx context.Context) (map[string]domain.Exercise, *planner.Logs, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.historyRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return catalog, planner.Reconcile(records, catalog), nil
}
