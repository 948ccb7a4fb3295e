package service_test

import (
	"context"
	"testing"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchSets(reps ...int) []domain.Set {
	out := make([]domain.Set, len(reps))
	for i, r := range reps {
		out[i] = domain.Set{Index: i + 1, Weight: domain.Kilos(60), Reps: r}
	}
	return out
}

func TestHistoryService_LogNormalizesRecord(t *testing.T) {
	exerciseRepo := newFakeExerciseRepo(domain.Exercise{ID: "bench", Name: "Bench Press"})
	historyRepo := &fakeHistoryRepo{}
	svc := service.NewHistoryService(historyRepo, exerciseRepo)

	// 2025-11-16 is a Sunday; the timestamp suffix must be stripped.
	saved, err := svc.Log(context.Background(), domain.HistoryRecord{
		ExerciseID: "bench",
		Date:       "2025-11-16T08:30:00Z",
		Sets:       benchSets(8, 8, 8),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, domain.EntryStrength, saved.Type)
	assert.Equal(t, "2025-11-16", saved.Date)
	assert.Equal(t, "sunday", saved.DayKey)
	assert.False(t, saved.RecordedAt.IsZero())

	// The exercise's cached last session follows the log.
	bench, err := exerciseRepo.GetByID(context.Background(), "bench")
	require.NoError(t, err)
	assert.Equal(t, benchSets(8, 8, 8), bench.LastSession)
	assert.Equal(t, "2025-11-16", bench.LastPerformedOn)
}

func TestHistoryService_LogReplacesSameDay(t *testing.T) {
	exerciseRepo := newFakeExerciseRepo(domain.Exercise{ID: "bench", Name: "Bench Press"})
	historyRepo := &fakeHistoryRepo{}
	svc := service.NewHistoryService(historyRepo, exerciseRepo)

	_, err := svc.Log(context.Background(), domain.HistoryRecord{ExerciseID: "bench", Date: "2025-11-16", Sets: benchSets(8)})
	require.NoError(t, err)
	second, err := svc.Log(context.Background(), domain.HistoryRecord{ExerciseID: "bench", Date: "2025-11-16", Sets: benchSets(10, 10)})
	require.NoError(t, err)

	records, err := svc.GetForExercise(context.Background(), "bench")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, benchSets(10, 10), records[0].Sets)
}

func TestHistoryService_LogInfersCardioFromPrefix(t *testing.T) {
	historyRepo := &fakeHistoryRepo{}
	svc := service.NewHistoryService(historyRepo, newFakeExerciseRepo())

	saved, err := svc.Log(context.Background(), domain.HistoryRecord{
		ExerciseID: "cardio_monday",
		DayKey:     "monday",
		Date:       "2025-11-10",
		Distance:   5.0,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EntryCardio, saved.Type)
}

func TestHistoryService_LogRejectsStrengthWithoutExercise(t *testing.T) {
	svc := service.NewHistoryService(&fakeHistoryRepo{}, newFakeExerciseRepo())

	_, err := svc.Log(context.Background(), domain.HistoryRecord{Date: "2025-11-16", Sets: benchSets(8)})
	assert.ErrorIs(t, err, service.ErrValidationFailed)
}

func TestHistoryService_DeleteRecomputesLastSession(t *testing.T) {
	exerciseRepo := newFakeExerciseRepo(domain.Exercise{ID: "bench", Name: "Bench Press"})
	historyRepo := &fakeHistoryRepo{}
	svc := service.NewHistoryService(historyRepo, exerciseRepo)

	_, err := svc.Log(context.Background(), domain.HistoryRecord{ExerciseID: "bench", Date: "2025-11-09", Sets: benchSets(8)})
	require.NoError(t, err)
	latest, err := svc.Log(context.Background(), domain.HistoryRecord{ExerciseID: "bench", Date: "2025-11-16", Sets: benchSets(10)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), latest.ID))

	bench, err := exerciseRepo.GetByID(context.Background(), "bench")
	require.NoError(t, err)
	assert.Equal(t, benchSets(8), bench.LastSession)
	assert.Equal(t, "2025-11-09", bench.LastPerformedOn)
}

func TestHistoryService_ClearForExercise(t *testing.T) {
	exerciseRepo := newFakeExerciseRepo(domain.Exercise{ID: "bench", Name: "Bench Press"})
	historyRepo := &fakeHistoryRepo{}
	svc := service.NewHistoryService(historyRepo, exerciseRepo)

	_, err := svc.Log(context.Background(), domain.HistoryRecord{ExerciseID: "bench", Date: "2025-11-09", Sets: benchSets(8)})
	require.NoError(t, err)
	_, err = svc.Log(context.Background(), domain.HistoryRecord{ExerciseID: "bench", Date: "2025-11-16", Sets: benchSets(10)})
	require.NoError(t, err)

	deleted, err := svc.ClearForExercise(context.Background(), "bench")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	bench, err := exerciseRepo.GetByID(context.Background(), "bench")
	require.NoError(t, err)
	assert.Empty(t, bench.LastSession)
	assert.Empty(t, bench.LastPerformedOn)
}
