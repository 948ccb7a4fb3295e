package planner

import (
	"math"
	"sort"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/schedule"
)

// slotEntry is the winning in-week entry for one slot of a strength day.
type slotEntry struct {
	domain.StrengthEntry
	exerciseID string
}

// BuildWeekOverview computes the per-day completion report for one ISO
// week: run counts against targets on cardio days, completed-slot counts on
// strength days, and the aggregate totals across the whole week.
func BuildWeekOverview(
	weekKey string,
	template domain.WeekTemplate,
	logs *Logs,
	catalog map[string]domain.Exercise,
) domain.WeekOverview {
	overview := domain.WeekOverview{
		WeekKey: weekKey,
		ByDay:   make(map[string]domain.DayOverview),
	}
	if weekKey == "" || logs == nil {
		return overview
	}

	dayBuckets := bucketSlotEntries(weekKey, template, logs)

	for _, dayKey := range schedule.DayKeys {
		day, ok := template[dayKey]
		if !ok {
			continue
		}
		switch {
		case day.IsCardio():
			overview.ByDay[dayKey] = cardioOverview(weekKey, dayKey, day, logs, &overview)
		case day.IsStrength():
			overview.ByDay[dayKey] = strengthOverview(day, dayBuckets[dayKey], catalog, &overview)
		default:
			overview.ByDay[dayKey] = domain.DayOverview{
				Type:        domain.DayRest,
				Label:       day.Label,
				Theme:       day.Theme,
				Description: day.Description,
				Status:      domain.StatusPending,
			}
		}
	}
	return overview
}

// bucketSlotEntries gathers, per day and slot, the latest in-week strength
// entry. When several entries target the same slot within the week only the
// most recent by date counts; earlier ones stay in history but not here.
// Entries without a slot id each occupy their own synthetic key.
func bucketSlotEntries(weekKey string, template domain.WeekTemplate, logs *Logs) map[string]map[string]slotEntry {
	buckets := make(map[string]map[string]slotEntry)

	exerciseIDs := make([]string, 0, len(logs.Strength))
	for id := range logs.Strength {
		exerciseIDs = append(exerciseIDs, id)
	}
	sort.Strings(exerciseIDs)

	for _, exerciseID := range exerciseIDs {
		for _, entry := range logs.Strength[exerciseID].History {
			if !schedule.EntryInWeek(entry.Date, weekKey) {
				continue
			}
			dayKey := entry.DayKey
			if dayKey == "" {
				if day, ok := schedule.ParseDay(entry.Date); ok {
					dayKey = schedule.DayKeyFromDate(day)
				}
			}
			if _, ok := template[dayKey]; !ok {
				continue
			}
			slotKey := entry.SlotID
			if slotKey == "" {
				slotKey = entry.ID
			}
			if buckets[dayKey] == nil {
				buckets[dayKey] = make(map[string]slotEntry)
			}
			if current, ok := buckets[dayKey][slotKey]; !ok || entry.Date >= current.Date {
				buckets[dayKey][slotKey] = slotEntry{StrengthEntry: entry, exerciseID: exerciseID}
			}
		}
	}
	return buckets
}

func cardioOverview(weekKey, dayKey string, day domain.DayConfig, logs *Logs, overview *domain.WeekOverview) domain.DayOverview {
	targetRuns := day.Cardio.TargetRuns

	var entries []domain.CardioEntry
	for _, entry := range logs.Cardio[dayKey] {
		if schedule.EntryInWeek(entry.Date, weekKey) {
			entries = append(entries, entry)
		}
	}

	overview.CardioRunsTarget += targetRuns
	overview.CardioRunsLogged += len(entries)

	status := domain.StatusInProgress
	switch {
	case len(entries) == 0:
		status = domain.StatusPending
	case targetRuns > 0 && len(entries) >= targetRuns:
		status = domain.StatusComplete
	}

	lastLogged := ""
	if len(entries) > 0 {
		lastLogged = entries[len(entries)-1].Date
	}

	return domain.DayOverview{
		Type:         domain.DayCardio,
		Label:        day.Label,
		Theme:        day.Theme,
		Description:  day.Description,
		Status:       status,
		RunsLogged:   len(entries),
		TargetRuns:   targetRuns,
		Entries:      entries,
		LastLoggedOn: lastLogged,
	}
}

func strengthOverview(day domain.DayConfig, bucket map[string]slotEntry, catalog map[string]domain.Exercise, overview *domain.WeekOverview) domain.DayOverview {
	totalSlots := len(day.Slots)
	completed := len(bucket)

	overview.StrengthDaysTotal++
	if completed >= totalSlots {
		overview.StrengthDaysDone++
	}

	status := domain.StatusInProgress
	switch {
	case completed == 0:
		status = domain.StatusPending
	case completed >= totalSlots:
		status = domain.StatusComplete
	}

	pct := 0
	if totalSlots > 0 {
		pct = int(math.Round(float64(completed) / float64(totalSlots) * 100))
	}

	var completedNames, remainingNames []string
	lastLogged := ""
	seen := make(map[string]bool, len(bucket))

	name := func(entry slotEntry) string {
		if ex, ok := catalog[entry.exerciseID]; ok {
			return ex.Name
		}
		return entry.exerciseID
	}

	for _, slot := range day.Slots {
		if entry, ok := bucket[slot.SlotID]; ok {
			seen[slot.SlotID] = true
			completedNames = append(completedNames, name(entry))
			if entry.Date > lastLogged {
				lastLogged = entry.Date
			}
			continue
		}
		candidate := slot.DefaultExerciseID
		if candidate == "" && len(slot.Options) > 0 {
			candidate = slot.Options[0]
		}
		if ex, ok := catalog[candidate]; ok {
			remainingNames = append(remainingNames, ex.Name)
		} else if slot.Name != "" {
			remainingNames = append(remainingNames, slot.Name)
		} else {
			remainingNames = append(remainingNames, slot.SlotID)
		}
	}

	// Entries logged without a matching template slot still count; order
	// them by key so the report is stable.
	extraKeys := make([]string, 0)
	for key := range bucket {
		if !seen[key] {
			extraKeys = append(extraKeys, key)
		}
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		entry := bucket[key]
		completedNames = append(completedNames, name(entry))
		if entry.Date > lastLogged {
			lastLogged = entry.Date
		}
	}

	return domain.DayOverview{
		Type:           domain.DayStrength,
		Label:          day.Label,
		Theme:          day.Theme,
		Description:    day.Description,
		Status:         status,
		TotalSlots:     totalSlots,
		CompletedSlots: completed,
		CompletionPct:  pct,
		CompletedNames: completedNames,
		RemainingNames: remainingNames,
		LastLoggedOn:   lastLogged,
	}
}
