package planner_test

import (
	"testing"
	"time"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sets(reps ...int) []domain.Set {
	out := make([]domain.Set, len(reps))
	for i, r := range reps {
		out[i] = domain.Set{Index: i + 1, Weight: domain.Kilos(40), Reps: r}
	}
	return out
}

func strengthRecord(id, exerciseID, date string, s []domain.Set) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:         id,
		Type:       domain.EntryStrength,
		ExerciseID: exerciseID,
		Date:       date,
		Sets:       s,
	}
}

// checkLogInvariant asserts the joint history/last-session invariant that
// must hold after every mutation: ascending dates and LastSession mirroring
// the chronologically last entry.
func checkLogInvariant(t *testing.T, log domain.ExerciseLog) {
	t.Helper()
	for i := 1; i < len(log.History); i++ {
		require.LessOrEqual(t, log.History[i-1].Date, log.History[i].Date)
	}
	if len(log.History) == 0 {
		assert.Empty(t, log.LastSession)
		return
	}
	assert.Equal(t, log.History[len(log.History)-1].Sets, log.LastSession)
}

func TestReconcile_SortsAndDerivesLastSession(t *testing.T) {
	catalog := map[string]domain.Exercise{"bench_press_barbell": {ID: "bench_press_barbell"}}
	records := []domain.HistoryRecord{
		strengthRecord("b", "bench_press_barbell", "2025-11-16", sets(8, 8)),
		strengthRecord("a", "bench_press_barbell", "2025-11-09", sets(12, 10, 8)),
	}

	logs := planner.Reconcile(records, catalog)

	log := logs.Strength["bench_press_barbell"]
	require.Len(t, log.History, 2)
	assert.Equal(t, "2025-11-09", log.History[0].Date)
	assert.Equal(t, "2025-11-16", log.History[1].Date)
	checkLogInvariant(t, log)
}

func TestReconcile_SameIDTwiceYieldsOneEntry(t *testing.T) {
	catalog := map[string]domain.Exercise{"lat_pulldown": {ID: "lat_pulldown"}}
	rec := strengthRecord("dup", "lat_pulldown", "2025-11-11", sets(12))

	logs := planner.Reconcile([]domain.HistoryRecord{rec, rec}, catalog)

	require.Len(t, logs.Strength["lat_pulldown"].History, 1)
	checkLogInvariant(t, logs.Strength["lat_pulldown"])
}

func TestInsertStrength_MergesByDate(t *testing.T) {
	logs := planner.NewLogs()
	logs.InsertStrength(domain.StrengthEntry{ID: "first", ExerciseID: "ex", Date: "2025-11-11", Sets: sets(10)})
	logs.InsertStrength(domain.StrengthEntry{ID: "second", ExerciseID: "ex", Date: "2025-11-11", Sets: sets(12, 12)})

	log := logs.Strength["ex"]
	require.Len(t, log.History, 1)
	assert.Equal(t, "second", log.History[0].ID)
	assert.Equal(t, sets(12, 12), log.LastSession)
	checkLogInvariant(t, log)
}

func TestInsertStrength_KeepsInsertionOrderOnDateTies(t *testing.T) {
	logs := planner.NewLogs()
	logs.InsertStrength(domain.StrengthEntry{ID: "early", ExerciseID: "ex", Date: "2025-11-10", Sets: sets(8)})
	logs.InsertStrength(domain.StrengthEntry{ID: "late", ExerciseID: "ex", Date: "2025-11-12", Sets: sets(9)})
	logs.InsertStrength(domain.StrengthEntry{ID: "mid", ExerciseID: "ex", Date: "2025-11-11", Sets: sets(10)})

	log := logs.Strength["ex"]
	require.Len(t, log.History, 3)
	assert.Equal(t, []string{"early", "mid", "late"}, []string{log.History[0].ID, log.History[1].ID, log.History[2].ID})
	checkLogInvariant(t, log)
}

func TestDeleteStrength_RecomputesLastSession(t *testing.T) {
	logs := planner.NewLogs()
	logs.InsertStrength(domain.StrengthEntry{ID: "a", ExerciseID: "ex", Date: "2025-11-09", Sets: sets(10)})
	logs.InsertStrength(domain.StrengthEntry{ID: "b", ExerciseID: "ex", Date: "2025-11-16", Sets: sets(11)})

	logs.DeleteStrength("ex", "b")
	log := logs.Strength["ex"]
	require.Len(t, log.History, 1)
	assert.Equal(t, sets(10), log.LastSession)
	checkLogInvariant(t, log)

	logs.DeleteStrength("ex", "a")
	log = logs.Strength["ex"]
	assert.Empty(t, log.History)
	assert.Empty(t, log.LastSession)
	checkLogInvariant(t, log)
}

func TestClearStrength_AtomicallyEmptiesBoth(t *testing.T) {
	logs := planner.NewLogs()
	logs.InsertStrength(domain.StrengthEntry{ID: "a", ExerciseID: "ex", Date: "2025-11-09", Sets: sets(10)})
	logs.InsertStrength(domain.StrengthEntry{ID: "b", ExerciseID: "ex", Date: "2025-11-16", Sets: sets(11)})

	logs.ClearStrength("ex")

	log := logs.Strength["ex"]
	assert.Empty(t, log.History)
	assert.Empty(t, log.LastSession)
	checkLogInvariant(t, log)
}

func TestSyncCatalog_SeedsAndPrunes(t *testing.T) {
	seedSets := sets(12, 12, 12)
	catalog := map[string]domain.Exercise{
		"fresh": {ID: "fresh", LastSession: seedSets},
	}

	logs := planner.NewLogs()
	logs.InsertStrength(domain.StrengthEntry{ID: "x", ExerciseID: "deleted_exercise", Date: "2025-11-09", Sets: sets(10)})
	logs.SyncCatalog(catalog)

	// A catalog exercise with no history gets a log seeded from defaults.
	fresh, ok := logs.Strength["fresh"]
	require.True(t, ok)
	assert.Empty(t, fresh.History)
	assert.Equal(t, seedSets, fresh.LastSession)

	// Logs for exercises gone from the catalog are discarded.
	_, ok = logs.Strength["deleted_exercise"]
	assert.False(t, ok)
}

func TestReconcile_RoutesCardioByTypeAndPrefix(t *testing.T) {
	records := []domain.HistoryRecord{
		{
			ID:         "run-1",
			Type:       domain.EntryCardio,
			ExerciseID: "cardio_monday",
			DayKey:     "monday",
			Date:       "2025-11-10",
			Distance:   5.2,
			Duration:   31,
			Calories:   420,
		},
		{
			// Legacy record: no type field, recognized by the id prefix.
			ID:         "run-2",
			ExerciseID: "cardio_wednesday",
			DayKey:     "wednesday",
			Date:       "2025-11-12",
			Distance:   4.0,
		},
	}

	logs := planner.Reconcile(records, nil)

	require.Len(t, logs.Cardio["monday"], 1)
	require.Len(t, logs.Cardio["wednesday"], 1)
	assert.Equal(t, 5.2, logs.Cardio["monday"][0].Distance)
	assert.Empty(t, logs.Strength)
}

func TestInsertCardio_MergesByDayAndDate(t *testing.T) {
	logs := planner.NewLogs()
	logs.InsertCardio(domain.CardioEntry{ID: "r1", DayKey: "monday", Date: "2025-11-10", Distance: 5})
	logs.InsertCardio(domain.CardioEntry{ID: "r2", DayKey: "monday", Date: "2025-11-10", Distance: 6})

	require.Len(t, logs.Cardio["monday"], 1)
	assert.Equal(t, "r2", logs.Cardio["monday"][0].ID)
	assert.Equal(t, 6.0, logs.Cardio["monday"][0].Distance)
}

func TestReconcile_FallsBackToRecordedAtDay(t *testing.T) {
	catalog := map[string]domain.Exercise{"ex": {ID: "ex"}}
	records := []domain.HistoryRecord{
		{
			ID:         "a",
			Type:       domain.EntryStrength,
			ExerciseID: "ex",
			RecordedAt: time.Date(2025, time.November, 14, 12, 0, 0, 0, time.UTC),
			Sets:       sets(10),
		},
		{
			// No date at all: unplaceable, dropped.
			ID:         "b",
			Type:       domain.EntryStrength,
			ExerciseID: "ex",
			Sets:       sets(10),
		},
	}

	logs := planner.Reconcile(records, catalog)
	log := logs.Strength["ex"]
	require.Len(t, log.History, 1)
	assert.Equal(t, "2025-11-14", log.History[0].Date)
}
