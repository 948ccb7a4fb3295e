package program

import (
	"strings"

	"github.com/ayushjpeg/Gym/internal/domain"
)

// MuscleGroups lists the muscle names volume is reported against, in
// display order.
var MuscleGroups = []string{
	"Chest",
	"Back",
	"Shoulders",
	"Rear Delts",
	"Side Delts",
	"Triceps",
	"Biceps",
	"Quads",
	"Hamstrings",
	"Glutes",
	"Calves",
	"Abs",
	"Core",
	"Full Body",
}

// setTargets holds the recommended weekly set ranges in their historical
// free-text form, keyed by normalized muscle name.
var setTargets = map[string]string{
	"chest":      "8-12 sets / week",
	"back":       "10-14 sets / week",
	"shoulders":  "6-10 sets / week",
	"triceps":    "6-8 sets / week",
	"biceps":     "6-8 sets / week",
	"quads":      "10-16 sets / week",
	"hamstrings": "8-12 sets / week",
	"glutes":     "6-10 sets / week",
	"calves":     "6-8 sets / week",
	"abs":        "6-10 sets / week",
}

const fallbackTargetRange = "6-10 sets / week"

func normalizeMuscleKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "")
}

// DefaultMuscleTargets builds the default weekly target range for every
// muscle group, normalized to the structured {low,high} form.
func DefaultMuscleTargets() map[string]domain.TargetRange {
	targets := make(map[string]domain.TargetRange, len(MuscleGroups))
	for _, label := range MuscleGroups {
		text, ok := setTargets[normalizeMuscleKey(label)]
		if !ok {
			text = fallbackTargetRange
		}
		targets[label] = domain.ParseTargetRange(text)
	}
	return targets
}
