package planner

import (
	"math"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/schedule"
)

// WeeklyVolume folds the reconciled strength logs into per-muscle set
// counts for one ISO week. Each in-week entry contributes its full set
// count to the exercise's primary muscle; a secondary muscle, when present,
// receives half the contribution rounded, but never less than one set, so
// any logged secondary involvement registers. Exercises missing from the
// catalog are skipped even if their history lingers.
func WeeklyVolume(weekKey string, logs *Logs, catalog map[string]domain.Exercise) map[string]int {
	totals := make(map[string]int)
	if logs == nil {
		return totals
	}
	for exerciseID, log := range logs.Strength {
		def, ok := catalog[exerciseID]
		if !ok {
			continue
		}
		for _, entry := range log.History {
			if !schedule.EntryInWeek(entry.Date, weekKey) {
				continue
			}
			volume := len(entry.Sets)
			if volume == 0 {
				continue
			}
			if def.PrimaryMuscle != "" {
				totals[def.PrimaryMuscle] += volume
			}
			if def.SecondaryMuscle != "" {
				half := int(math.Round(float64(volume) / 2))
				if half < 1 {
					half = 1
				}
				totals[def.SecondaryMuscle] += half
			}
		}
	}
	return totals
}
