package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/repository"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// observable behavior closely enough for service tests: sentinel errors,
// sorted listings, replace-on-date deletes.

type fakeExerciseRepo struct {
	items map[string]domain.Exercise
}

func newFakeExerciseRepo(exercises ...domain.Exercise) *fakeExerciseRepo {
	r := &fakeExerciseRepo{items: make(map[string]domain.Exercise)}
	for _, ex := range exercises {
		r.items[ex.ID] = ex
	}
	return r
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) error {
	exercise.CreatedAt = time.Now().UTC()
	exercise.UpdatedAt = exercise.CreatedAt
	r.items[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	ex, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

func (r *fakeExerciseRepo) GetAll(_ context.Context) ([]domain.Exercise, error) {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domain.Exercise, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.items[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	exercise.UpdatedAt = time.Now().UTC()
	r.items[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeExerciseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeExerciseRepo) SeedMany(_ context.Context, exercises []domain.Exercise) error {
	for _, ex := range exercises {
		r.items[ex.ID] = ex
	}
	return nil
}

type fakeHistoryRepo struct {
	records []domain.HistoryRecord
}

func (r *fakeHistoryRepo) Create(_ context.Context, record *domain.HistoryRecord) error {
	r.records = append(r.records, *record)
	r.sort()
	return nil
}

func (r *fakeHistoryRepo) GetByID(_ context.Context, id string) (*domain.HistoryRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeHistoryRepo) GetAll(_ context.Context) ([]domain.HistoryRecord, error) {
	return append([]domain.HistoryRecord(nil), r.records...), nil
}

func (r *fakeHistoryRepo) GetByExerciseID(_ context.Context, exerciseID string) ([]domain.HistoryRecord, error) {
	var out []domain.HistoryRecord
	for _, rec := range r.records {
		if rec.ExerciseID == exerciseID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) DeleteMatchingDay(_ context.Context, record *domain.HistoryRecord) error {
	if record.Date == "" {
		return nil
	}
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.ID == record.ID || rec.Date != record.Date {
			kept = append(kept, rec)
			continue
		}
		match := false
		if record.IsCardio() {
			match = rec.IsCardio() && rec.DayKey == record.DayKey
		} else {
			match = rec.ExerciseID == record.ExerciseID
		}
		if !match {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func (r *fakeHistoryRepo) Delete(_ context.Context, id string) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeHistoryRepo) DeleteByExerciseID(_ context.Context, exerciseID string) (int64, error) {
	var deleted int64
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.ExerciseID == exerciseID {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return deleted, nil
}

func (r *fakeHistoryRepo) sort() {
	sort.SliceStable(r.records, func(i, j int) bool {
		return r.records[i].Date < r.records[j].Date
	})
}

type fakeAssignmentRepo struct {
	items map[string]domain.SlotAssignment
}

func newFakeAssignmentRepo(assignments ...domain.SlotAssignment) *fakeAssignmentRepo {
	r := &fakeAssignmentRepo{items: make(map[string]domain.SlotAssignment)}
	for _, a := range assignments {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id string) (*domain.SlotAssignment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAssignmentRepo) GetAll(_ context.Context) ([]domain.SlotAssignment, error) {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domain.SlotAssignment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *fakeAssignmentRepo) UpdateSelected(_ context.Context, id, selectedExerciseID string) (*domain.SlotAssignment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.SelectedExerciseID = selectedExerciseID
	a.UpdatedAt = time.Now().UTC()
	r.items[id] = a
	return &a, nil
}

func (r *fakeAssignmentRepo) ClearSelections(_ context.Context, exerciseID string) (int64, error) {
	var cleared int64
	for id, a := range r.items {
		if a.SelectedExerciseID == exerciseID {
			a.SelectedExerciseID = ""
			r.items[id] = a
			cleared++
		}
	}
	return cleared, nil
}

func (r *fakeAssignmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeAssignmentRepo) SeedMany(_ context.Context, assignments []domain.SlotAssignment) error {
	for _, a := range assignments {
		r.items[a.ID] = a
	}
	return nil
}

type fakeTargetRepo struct {
	items map[string]domain.TargetRange
}

func newFakeTargetRepo() *fakeTargetRepo {
	return &fakeTargetRepo{items: make(map[string]domain.TargetRange)}
}

func (r *fakeTargetRepo) GetAll(_ context.Context) ([]domain.MuscleTarget, error) {
	muscles := make([]string, 0, len(r.items))
	for m := range r.items {
		muscles = append(muscles, m)
	}
	sort.Strings(muscles)
	out := make([]domain.MuscleTarget, 0, len(muscles))
	for _, m := range muscles {
		out = append(out, domain.MuscleTarget{Muscle: m, Range: r.items[m]})
	}
	return out, nil
}

func (r *fakeTargetRepo) Upsert(_ context.Context, target *domain.MuscleTarget) error {
	r.items[target.Muscle] = target.Range
	return nil
}

func (r *fakeTargetRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeTargetRepo) SeedMany(_ context.Context, targets []domain.MuscleTarget) error {
	for _, t := range targets {
		r.items[t.Muscle] = t.Range
	}
	return nil
}
