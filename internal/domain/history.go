package domain

import (
	"strings"
	"time"
)

// EntryType discriminates strength sets from cardio runs in the raw log.
type EntryType string

const (
	EntryStrength EntryType = "strength"
	EntryCardio   EntryType = "cardio"
)

// CardioExercisePrefix marks the synthetic exercise ids used for cardio
// runs ("cardio_monday" etc). Older records carry no Type field and are
// recognized by this prefix alone.
const CardioExercisePrefix = "cardio_"

// HistoryRecord is the persisted shape of one raw log row, strength or
// cardio. Strength rows carry Sets; cardio rows carry the run metrics.
type HistoryRecord struct {
	ID         string    `bson:"_id" json:"id"`
	Type       EntryType `bson:"type,omitempty" json:"type,omitempty"`
	ExerciseID string    `bson:"exerciseId" json:"exerciseId"`
	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`

	// Date is the calendar day the work was performed on (YYYY-MM-DD, no
	// time component). Falls back to RecordedAt's day when empty.
	Date   string `bson:"date" json:"date"`
	DayKey string `bson:"dayKey,omitempty" json:"dayKey,omitempty"`
	SlotID string `bson:"slotId,omitempty" json:"slotId,omitempty"`

	Sets  []Set  `bson:"sets,omitempty" json:"sets,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	// Cardio metrics.
	Distance float64 `bson:"distance,omitempty" json:"distance,omitempty"`
	Duration int     `bson:"duration,omitempty" json:"duration,omitempty"`
	Calories int     `bson:"calories,omitempty" json:"calories,omitempty"`
	Pace     string  `bson:"pace,omitempty" json:"pace,omitempty"`
}

// IsCardio reports whether the record is a cardio run.
func (r HistoryRecord) IsCardio() bool {
	return r.Type == EntryCardio || strings.HasPrefix(r.ExerciseID, CardioExercisePrefix)
}

// StrengthEntry is a normalized strength log row, keyed into the reconciled
// per-exercise history. Identity is ID; the merge key is (ExerciseID, Date).
type StrengthEntry struct {
	ID         string `json:"id"`
	ExerciseID string `json:"exerciseId"`
	Date       string `json:"date"`
	DayKey     string `json:"dayKey,omitempty"`
	SlotID     string `json:"slotId,omitempty"`
	Sets       []Set  `json:"sets"`
}

// CardioEntry is a normalized cardio run. Identity is ID; the merge key is
// (DayKey, Date).
type CardioEntry struct {
	ID       string  `json:"id"`
	DayKey   string  `json:"dayKey"`
	Date     string  `json:"date"`
	Distance float64 `json:"distance"`
	Duration int     `json:"duration"`
	Calories int     `json:"calories"`
	Pace     string  `json:"pace,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// ExerciseLog is the reconciled history of one exercise.
//
// Invariant: History is sorted ascending by Date and LastSession equals the
// sets of the chronologically last entry, or an empty slice when History is
// empty (seed sets from the catalog fill the gap for never-logged
// exercises).
type ExerciseLog struct {
	LastSession []Set           `json:"lastSession"`
	History     []StrengthEntry `json:"history"`
}
