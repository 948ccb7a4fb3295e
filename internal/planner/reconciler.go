// Package planner is the weekly plan resolution and volume aggregation
// engine. Everything in it is a pure transformation of its inputs (week
// template, exercise catalog, override map, raw log records, target week),
// performs no I/O, and may be recomputed freely.
package planner

import (
	"sort"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/schedule"
)

// Logs holds the reconciled histories: strength logs per exercise id and
// cardio runs per template day key.
type Logs struct {
	Strength map[string]domain.ExerciseLog
	Cardio   map[string][]domain.CardioEntry
}

// NewLogs returns an empty reconciled state.
func NewLogs() *Logs {
	return &Logs{
		Strength: make(map[string]domain.ExerciseLog),
		Cardio:   make(map[string][]domain.CardioEntry),
	}
}

// Reconcile folds a full snapshot of raw log records into per-exercise and
// per-cardio-day histories, then aligns the result with the catalog: every
// catalog exercise gets a log (seeded from its catalog defaults when it has
// never been trained) and logs for exercises no longer in the catalog are
// discarded.
func Reconcile(records []domain.HistoryRecord, catalog map[string]domain.Exercise) *Logs {
	logs := NewLogs()
	for _, r := range records {
		if r.IsCardio() {
			if entry, ok := normalizeCardio(r); ok {
				logs.InsertCardio(entry)
			}
			continue
		}
		if entry, ok := normalizeStrength(r); ok {
			logs.InsertStrength(entry)
		}
	}
	logs.SyncCatalog(catalog)
	return logs
}

// entryDay picks the calendar day a record belongs to: the explicit Date
// field when it parses, otherwise the recording timestamp's day. Records
// with neither are unplaceable and dropped.
func entryDay(r domain.HistoryRecord) (string, bool) {
	if day, ok := schedule.ParseDay(r.Date); ok {
		return schedule.FormatDay(day), true
	}
	if !r.RecordedAt.IsZero() {
		return schedule.FormatDay(r.RecordedAt), true
	}
	return "", false
}

func normalizeStrength(r domain.HistoryRecord) (domain.StrengthEntry, bool) {
	if r.ExerciseID == "" {
		return domain.StrengthEntry{}, false
	}
	date, ok := entryDay(r)
	if !ok {
		return domain.StrengthEntry{}, false
	}
	return domain.StrengthEntry{
		ID:         r.ID,
		ExerciseID: r.ExerciseID,
		Date:       date,
		DayKey:     r.DayKey,
		SlotID:     r.SlotID,
		Sets:       r.Sets,
	}, true
}

func normalizeCardio(r domain.HistoryRecord) (domain.CardioEntry, bool) {
	if r.DayKey == "" {
		return domain.CardioEntry{}, false
	}
	date, ok := entryDay(r)
	if !ok {
		return domain.CardioEntry{}, false
	}
	return domain.CardioEntry{
		ID:       r.ID,
		DayKey:   r.DayKey,
		Date:     date,
		Distance: r.Distance,
		Duration: r.Duration,
		Calories: r.Calories,
		Pace:     r.Pace,
		Notes:    r.Notes,
	}, true
}

// InsertStrength merges one normalized entry into the exercise's history.
// Any existing entry with the same persisted id is replaced, and so is an
// entry for the same calendar day, which keeps a re-save from producing a
// duplicate same-day row. History stays sorted ascending by date; ties keep
// insertion order.
func (l *Logs) InsertStrength(entry domain.StrengthEntry) {
	if entry.ExerciseID == "" || entry.Date == "" {
		return
	}
	log := l.Strength[entry.ExerciseID]
	next := make([]domain.StrengthEntry, 0, len(log.History)+1)
	for _, existing := range log.History {
		if existing.ID == entry.ID || existing.Date == entry.Date {
			continue
		}
		next = append(next, existing)
	}
	next = append(next, entry)
	sortEntries(next)
	l.Strength[entry.ExerciseID] = domain.ExerciseLog{
		LastSession: next[len(next)-1].Sets,
		History:     next,
	}
}

// DeleteStrength removes one entry by id and rederives the last session
// from the remaining history, or empties it when nothing is left.
func (l *Logs) DeleteStrength(exerciseID, entryID string) {
	log, ok := l.Strength[exerciseID]
	if !ok {
		return
	}
	next := make([]domain.StrengthEntry, 0, len(log.History))
	for _, existing := range log.History {
		if existing.ID == entryID {
			continue
		}
		next = append(next, existing)
	}
	sortEntries(next)
	last := []domain.Set{}
	if len(next) > 0 {
		last = next[len(next)-1].Sets
	}
	l.Strength[exerciseID] = domain.ExerciseLog{LastSession: last, History: next}
}

// ClearStrength wipes an exercise's history and last session in one step;
// the two can never be observed out of sync.
func (l *Logs) ClearStrength(exerciseID string) {
	if _, ok := l.Strength[exerciseID]; !ok {
		return
	}
	l.Strength[exerciseID] = domain.ExerciseLog{LastSession: []domain.Set{}}
}

// InsertCardio merges one run into its day bucket, replacing any existing
// run with the same id or on the same calendar day.
func (l *Logs) InsertCardio(entry domain.CardioEntry) {
	if entry.DayKey == "" || entry.Date == "" {
		return
	}
	bucket := make([]domain.CardioEntry, 0, len(l.Cardio[entry.DayKey])+1)
	for _, existing := range l.Cardio[entry.DayKey] {
		if existing.ID == entry.ID || existing.Date == entry.Date {
			continue
		}
		bucket = append(bucket, existing)
	}
	bucket = append(bucket, entry)
	sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Date < bucket[j].Date })
	l.Cardio[entry.DayKey] = bucket
}

// DeleteCardio removes one run by id from a day bucket.
func (l *Logs) DeleteCardio(dayKey, entryID string) {
	bucket, ok := l.Cardio[dayKey]
	if !ok {
		return
	}
	next := make([]domain.CardioEntry, 0, len(bucket))
	for _, existing := range bucket {
		if existing.ID == entryID {
			continue
		}
		next = append(next, existing)
	}
	l.Cardio[dayKey] = next
}

// SyncCatalog aligns the strength logs with the live catalog: exercises
// added to the catalog get an empty log seeded with the definition's
// last-session hint, and logs for removed exercises are discarded.
func (l *Logs) SyncCatalog(catalog map[string]domain.Exercise) {
	for id, def := range catalog {
		if _, ok := l.Strength[id]; !ok {
			seed := make([]domain.Set, len(def.LastSession))
			copy(seed, def.LastSession)
			l.Strength[id] = domain.ExerciseLog{LastSession: seed}
		}
	}
	for id := range l.Strength {
		if _, ok := catalog[id]; !ok {
			delete(l.Strength, id)
		}
	}
}

// Calendar dates in YYYY-MM-DD order lexically, so a plain string compare
// sorts chronologically.
func sortEntries(entries []domain.StrengthEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
}
