package planner_test

import (
	"testing"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay() domain.DayConfig {
	return domain.DayConfig{
		Label: "Upper A",
		Slots: []domain.Slot{
			{SlotID: "s1", Name: "Horizontal Press", DefaultExerciseID: "bench", Options: []string{"bench", "db_press"}},
			{SlotID: "s2", Name: "Vertical Pull", DefaultExerciseID: "pullup", Options: []string{"pullup", "pulldown"}},
		},
	}
}

func TestResolveDay_DefaultWinsWithoutOverride(t *testing.T) {
	catalog := map[string]domain.Exercise{
		"bench":  {ID: "bench", Name: "Barbell Bench Press"},
		"pullup": {ID: "pullup", Name: "Pull-Up"},
	}

	plan := planner.ResolveDay("sunday", testDay(), nil, catalog, nil)

	require.Len(t, plan, 2)
	assert.Equal(t, "bench", plan[0].ID)
	assert.Equal(t, "s1", plan[0].SlotID)
	assert.False(t, plan[0].IsPlaceholder)
}

func TestResolveDay_OverrideBeatsDefault(t *testing.T) {
	catalog := map[string]domain.Exercise{
		"bench":    {ID: "bench"},
		"db_press": {ID: "db_press", Name: "Dumbbell Press"},
		"pullup":   {ID: "pullup"},
	}
	overrides := domain.OverrideMap{}
	overrides.Set("sunday", "s1", "db_press")

	plan := planner.ResolveDay("sunday", testDay(), overrides, catalog, nil)

	require.Len(t, plan, 2)
	assert.Equal(t, "db_press", plan[0].ID)
	// Overrides are keyed per day; another day's slot is untouched.
	other := planner.ResolveDay("thursday", testDay(), overrides, catalog, nil)
	assert.Equal(t, "bench", other[0].ID)
}

func TestResolveDay_MissingOverrideFallsThroughToDefault(t *testing.T) {
	catalog := map[string]domain.Exercise{
		"bench":  {ID: "bench"},
		"pullup": {ID: "pullup"},
	}
	overrides := domain.OverrideMap{}
	overrides.Set("sunday", "s1", "deleted_exercise")

	plan := planner.ResolveDay("sunday", testDay(), overrides, catalog, nil)

	require.Len(t, plan, 2)
	assert.Equal(t, "bench", plan[0].ID)
	assert.False(t, plan[0].IsPlaceholder)
}

func TestResolveDay_OptionRescuesMissingDefault(t *testing.T) {
	catalog := map[string]domain.Exercise{
		"pulldown": {ID: "pulldown", Name: "Lat Pulldown"},
		"bench":    {ID: "bench"},
	}

	plan := planner.ResolveDay("sunday", testDay(), nil, catalog, nil)

	require.Len(t, plan, 2)
	assert.Equal(t, "pulldown", plan[1].ID)
	assert.False(t, plan[1].IsPlaceholder)
}

func TestResolveDay_PlaceholderFromFallbackLibrary(t *testing.T) {
	catalog := map[string]domain.Exercise{
		"bench": {ID: "bench"},
	}
	fallback := map[string]domain.Exercise{
		"pullup": {
			ID:          "pullup",
			Name:        "Pull-Up",
			Equipment:   "Pull-up bar",
			LastSession: sets(8, 8, 8),
		},
	}

	plan := planner.ResolveDay("sunday", testDay(), nil, catalog, fallback)

	require.Len(t, plan, 2)
	ph := plan[1]
	assert.True(t, ph.IsPlaceholder)
	assert.Equal(t, "missing-s2", ph.ID)
	assert.Equal(t, "Pull-Up", ph.Name)
	assert.Empty(t, ph.LastSession)
	assert.Empty(t, ph.LastPerformedOn)
	assert.NotEqual(t, "Pull-up bar", ph.Equipment)
}

func TestResolveDay_UnresolvableSlotDropped(t *testing.T) {
	catalog := map[string]domain.Exercise{"bench": {ID: "bench"}}

	plan := planner.ResolveDay("sunday", testDay(), nil, catalog, nil)

	require.Len(t, plan, 1)
	assert.Equal(t, "s1", plan[0].SlotID)
}

func TestResolveDay_PreservesTemplateOrder(t *testing.T) {
	day := domain.DayConfig{
		Slots: []domain.Slot{
			{SlotID: "a", DefaultExerciseID: "x3"},
			{SlotID: "b", DefaultExerciseID: "x1"},
			{SlotID: "c", DefaultExerciseID: "x2"},
		},
	}
	catalog := map[string]domain.Exercise{
		"x1": {ID: "x1"}, "x2": {ID: "x2"}, "x3": {ID: "x3"},
	}

	plan := planner.ResolveDay("tuesday", day, nil, catalog, nil)

	require.Len(t, plan, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{plan[0].SlotID, plan[1].SlotID, plan[2].SlotID})
}
