package planner_test

import (
	"testing"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate() domain.WeekTemplate {
	return domain.WeekTemplate{
		"sunday": {
			Label: "Upper A",
			Slots: []domain.Slot{
				{SlotID: "s1", Name: "Press", DefaultExerciseID: "bench"},
				{SlotID: "s2", Name: "Pull", DefaultExerciseID: "pullup"},
				{SlotID: "s3", Name: "Curl", DefaultExerciseID: "curl"},
			},
		},
		"monday":   {Label: "Cardio", Cardio: &domain.CardioPlan{TargetRuns: 1}},
		"saturday": {Label: "Rest"},
	}
}

func testCatalog() map[string]domain.Exercise {
	return map[string]domain.Exercise{
		"bench":  {ID: "bench", Name: "Bench Press"},
		"pullup": {ID: "pullup", Name: "Pull-Up"},
		"curl":   {ID: "curl", Name: "Biceps Curl"},
	}
}

func TestBuildWeekOverview_EmptyWeekIsAllPending(t *testing.T) {
	overview := planner.BuildWeekOverview(testWeek, testTemplate(), planner.NewLogs(), testCatalog())

	assert.Equal(t, testWeek, overview.WeekKey)
	assert.Equal(t, 1, overview.StrengthDaysTotal)
	assert.Zero(t, overview.StrengthDaysDone)
	assert.Equal(t, 1, overview.CardioRunsTarget)
	assert.Zero(t, overview.CardioRunsLogged)

	for _, dayKey := range []string{"sunday", "monday", "saturday"} {
		assert.Equal(t, domain.StatusPending, overview.ByDay[dayKey].Status, dayKey)
	}
	sunday := overview.ByDay["sunday"]
	assert.Equal(t, 3, sunday.TotalSlots)
	assert.Zero(t, sunday.CompletedSlots)
	assert.Equal(t, []string{"Bench Press", "Pull-Up", "Biceps Curl"}, sunday.RemainingNames)
}

func TestBuildWeekOverview_PartialStrengthDay(t *testing.T) {
	logs := logsWith(
		domain.StrengthEntry{ID: "a", ExerciseID: "bench", Date: "2025-11-16", DayKey: "sunday", SlotID: "s1", Sets: sets(8)},
		domain.StrengthEntry{ID: "b", ExerciseID: "pullup", Date: "2025-11-16", DayKey: "sunday", SlotID: "s2", Sets: sets(6)},
	)

	overview := planner.BuildWeekOverview(testWeek, testTemplate(), logs, testCatalog())

	sunday := overview.ByDay["sunday"]
	assert.Equal(t, domain.StatusInProgress, sunday.Status)
	assert.Equal(t, 2, sunday.CompletedSlots)
	assert.Equal(t, 67, sunday.CompletionPct)
	assert.Equal(t, []string{"Bench Press", "Pull-Up"}, sunday.CompletedNames)
	assert.Equal(t, []string{"Biceps Curl"}, sunday.RemainingNames)
	assert.Equal(t, "2025-11-16", sunday.LastLoggedOn)
	assert.Zero(t, overview.StrengthDaysDone)
}

func TestBuildWeekOverview_CompleteStrengthDay(t *testing.T) {
	logs := logsWith(
		domain.StrengthEntry{ID: "a", ExerciseID: "bench", Date: "2025-11-16", DayKey: "sunday", SlotID: "s1", Sets: sets(8)},
		domain.StrengthEntry{ID: "b", ExerciseID: "pullup", Date: "2025-11-16", DayKey: "sunday", SlotID: "s2", Sets: sets(6)},
		domain.StrengthEntry{ID: "c", ExerciseID: "curl", Date: "2025-11-16", DayKey: "sunday", SlotID: "s3", Sets: sets(12)},
	)

	overview := planner.BuildWeekOverview(testWeek, testTemplate(), logs, testCatalog())

	sunday := overview.ByDay["sunday"]
	assert.Equal(t, domain.StatusComplete, sunday.Status)
	assert.Equal(t, 100, sunday.CompletionPct)
	assert.Empty(t, sunday.RemainingNames)
	assert.Equal(t, 1, overview.StrengthDaysDone)
}

func TestBuildWeekOverview_LatestEntryPerSlotWins(t *testing.T) {
	// Same slot logged twice in the same ISO week: only the later date counts.
	logs := logsWith(
		domain.StrengthEntry{ID: "old", ExerciseID: "bench", Date: "2025-11-10", DayKey: "sunday", SlotID: "s1", Sets: sets(8)},
		domain.StrengthEntry{ID: "new", ExerciseID: "pullup", Date: "2025-11-16", DayKey: "sunday", SlotID: "s1", Sets: sets(6)},
	)

	overview := planner.BuildWeekOverview(testWeek, testTemplate(), logs, testCatalog())

	sunday := overview.ByDay["sunday"]
	assert.Equal(t, 1, sunday.CompletedSlots)
	assert.Equal(t, []string{"Pull-Up"}, sunday.CompletedNames)
}

func TestBuildWeekOverview_CardioStatuses(t *testing.T) {
	template := testTemplate()
	catalog := testCatalog()

	logs := planner.NewLogs()
	logs.InsertCardio(domain.CardioEntry{ID: "r1", DayKey: "monday", Date: "2025-11-10", Distance: 5})

	overview := planner.BuildWeekOverview(testWeek, template, logs, catalog)
	monday := overview.ByDay["monday"]
	assert.Equal(t, domain.StatusComplete, monday.Status)
	assert.Equal(t, 1, monday.RunsLogged)
	assert.Equal(t, 1, monday.TargetRuns)
	assert.Equal(t, "2025-11-10", monday.LastLoggedOn)
	assert.Equal(t, 1, overview.CardioRunsLogged)

	// A run outside the week does not count toward it.
	priorWeek := planner.BuildWeekOverview("2025-W45", template, logs, catalog)
	assert.Equal(t, domain.StatusPending, priorWeek.ByDay["monday"].Status)
	assert.Zero(t, priorWeek.ByDay["monday"].RunsLogged)
}

func TestBuildWeekOverview_DayKeyInferredFromDate(t *testing.T) {
	// 2025-11-16 is a Sunday; an entry without an explicit day key still
	// lands on the sunday plan.
	logs := logsWith(
		domain.StrengthEntry{ID: "a", ExerciseID: "bench", Date: "2025-11-16", SlotID: "s1", Sets: sets(8)},
	)

	overview := planner.BuildWeekOverview(testWeek, testTemplate(), logs, testCatalog())

	assert.Equal(t, 1, overview.ByDay["sunday"].CompletedSlots)
}

func TestBuildWeekOverview_SlotlessEntriesCountSeparately(t *testing.T) {
	logs := logsWith(
		domain.StrengthEntry{ID: "a", ExerciseID: "bench", Date: "2025-11-16", DayKey: "sunday", Sets: sets(8)},
		domain.StrengthEntry{ID: "b", ExerciseID: "pullup", Date: "2025-11-16", DayKey: "sunday", Sets: sets(6)},
	)

	overview := planner.BuildWeekOverview(testWeek, testTemplate(), logs, testCatalog())

	sunday := overview.ByDay["sunday"]
	assert.Equal(t, 2, sunday.CompletedSlots)
	require.Len(t, sunday.CompletedNames, 2)
	// No template slot matched, so all three slots remain open.
	assert.Len(t, sunday.RemainingNames, 3)
}

func TestBuildWeekOverview_RestDay(t *testing.T) {
	overview := planner.BuildWeekOverview(testWeek, testTemplate(), planner.NewLogs(), testCatalog())

	saturday := overview.ByDay["saturday"]
	assert.Equal(t, domain.DayRest, saturday.Type)
	assert.Equal(t, domain.StatusPending, saturday.Status)
}

func TestBuildWeekOverview_EmptyWeekKey(t *testing.T) {
	overview := planner.BuildWeekOverview("", testTemplate(), planner.NewLogs(), testCatalog())

	assert.Empty(t, overview.ByDay)
	assert.Zero(t, overview.StrengthDaysTotal)
}
