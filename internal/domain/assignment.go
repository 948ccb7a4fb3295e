package domain

import "time"

// SlotAssignment is the persisted state of one template slot: which
// exercise is currently selected for it. One document exists per
// (dayKey, slotId); the collection as a whole materializes the OverrideMap.
type SlotAssignment struct {
	ID                 string    `bson:"_id" json:"id"`
	DayKey             string    `bson:"dayKey" json:"dayKey"`
	SlotID             string    `bson:"slotId" json:"slotId"`
	SlotName           string    `bson:"slotName,omitempty" json:"slotName,omitempty"`
	SlotSubtitle       string    `bson:"slotSubtitle,omitempty" json:"slotSubtitle,omitempty"`
	OrderIndex         int       `bson:"orderIndex" json:"orderIndex"`
	DefaultExerciseID  string    `bson:"defaultExerciseId" json:"defaultExerciseId"`
	SelectedExerciseID string    `bson:"selectedExerciseId,omitempty" json:"selectedExerciseId,omitempty"`
	Options            []string  `bson:"options,omitempty" json:"options,omitempty"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Overrides condenses assignments into the OverrideMap consulted during
// slot resolution. Selections equal to the slot default are overrides all
// the same; the resolver treats them identically.
func Overrides(assignments []SlotAssignment) OverrideMap {
	m := make(OverrideMap)
	for _, a := range assignments {
		if a.SelectedExerciseID == "" {
			continue
		}
		m.Set(a.DayKey, a.SlotID, a.SelectedExerciseID)
	}
	return m
}
