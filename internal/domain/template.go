package domain

// Slot is a named position within a strength day that must be filled by
// some exercise. Slots are defined once by the week template and never
// change at runtime.
type Slot struct {
	SlotID            string   `json:"slotId"`
	Name              string   `json:"name"`
	Subtitle          string   `json:"subtitle,omitempty"`
	DefaultExerciseID string   `json:"defaultExerciseId"`
	Options           []string `json:"options,omitempty"`
}

// CardioPlan describes the weekly running target for a cardio day.
type CardioPlan struct {
	TargetRuns  int    `json:"targetRuns"`
	Suggestions string `json:"suggestions,omitempty"`
}

// DayConfig is the template for one recurring weekday. Exactly one of the
// three variants holds: a strength day has Slots, a cardio day has Cardio,
// and a rest day has neither.
type DayConfig struct {
	Label       string      `json:"label"`
	Theme       string      `json:"theme,omitempty"`
	Description string      `json:"description,omitempty"`
	Slots       []Slot      `json:"slots,omitempty"`
	Cardio      *CardioPlan `json:"cardio,omitempty"`
	Focus       string      `json:"focus,omitempty"`
}

func (d DayConfig) IsCardio() bool   { return d.Cardio != nil }
func (d DayConfig) IsStrength() bool { return d.Cardio == nil && len(d.Slots) > 0 }
func (d DayConfig) IsRest() bool     { return d.Cardio == nil && len(d.Slots) == 0 }

// WeekTemplate maps day keys ("sunday".."saturday") to their configuration.
// Day ordering comes from schedule.DayKeys, not from map iteration.
type WeekTemplate map[string]DayConfig

// OverrideMap records manual slot substitutions: dayKey -> slotId -> the
// exercise id the user picked. It is a hint, not an authority; the slot
// resolver re-validates every selection against the live catalog.
type OverrideMap map[string]map[string]string

// Get returns the override for a slot, or "" when none is recorded.
func (m OverrideMap) Get(dayKey, slotID string) string {
	if m == nil {
		return ""
	}
	return m[dayKey][slotID]
}

// Set records an override, allocating the day bucket on first use.
func (m OverrideMap) Set(dayKey, slotID, exerciseID string) {
	if m[dayKey] == nil {
		m[dayKey] = make(map[string]string)
	}
	m[dayKey][slotID] = exerciseID
}
