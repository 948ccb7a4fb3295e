package planner

import "github.com/ayushjpeg/Gym/internal/domain"

// PlaceholderIDPrefix derives the synthetic id of a placeholder assignment
// from its slot id, so a placeholder can never collide with a real exercise
// or accumulate logged history.
const PlaceholderIDPrefix = "missing-"

const placeholderEquipmentHint = "Add or swap this slot in the exercise library"

// ResolvedSlot is one slot of a day's resolved plan: the exercise that
// currently fills the slot, or a placeholder describing what the slot is
// supposed to hold when no candidate exists in the live catalog.
type ResolvedSlot struct {
	domain.Exercise
	SlotID        string      `json:"slotId"`
	Slot          domain.Slot `json:"slot"`
	IsPlaceholder bool        `json:"isPlaceholder"`
}

// candidateIDs builds the ordered lookup list for a slot: the manual
// override first, then the template default, then the remaining options.
func candidateIDs(slot domain.Slot, override string) []string {
	ids := make([]string, 0, len(slot.Options)+2)
	for _, id := range append([]string{override, slot.DefaultExerciseID}, slot.Options...) {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// firstIn returns the first candidate id present in the lookup set.
func firstIn(ids []string, set map[string]domain.Exercise) (domain.Exercise, bool) {
	for _, id := range ids {
		if ex, ok := set[id]; ok {
			return ex, true
		}
	}
	return domain.Exercise{}, false
}

// ResolveDay resolves every slot of a strength day against the live
// catalog, honoring overrides and falling back to the static seed library
// for placeholders. Output order equals template slot order; slots with no
// candidate anywhere are dropped silently. Resolution never fails.
func ResolveDay(
	dayKey string,
	day domain.DayConfig,
	overrides domain.OverrideMap,
	catalog map[string]domain.Exercise,
	fallback map[string]domain.Exercise,
) []ResolvedSlot {
	plan := make([]ResolvedSlot, 0, len(day.Slots))
	for _, slot := range day.Slots {
		candidates := candidateIDs(slot, overrides.Get(dayKey, slot.SlotID))
		if len(candidates) == 0 {
			continue
		}
		if ex, ok := firstIn(candidates, catalog); ok {
			plan = append(plan, ResolvedSlot{Exercise: ex, SlotID: slot.SlotID, Slot: slot})
			continue
		}
		if ex, ok := firstIn(candidates, fallback); ok {
			// The placeholder keeps the fallback's descriptive metadata but
			// none of its identity: no real id, no history to inherit.
			ex.ID = PlaceholderIDPrefix + slot.SlotID
			ex.LastSession = nil
			ex.LastPerformedOn = ""
			ex.Equipment = placeholderEquipmentHint
			ex.VideoObjectKey = ""
			plan = append(plan, ResolvedSlot{Exercise: ex, SlotID: slot.SlotID, Slot: slot, IsPlaceholder: true})
			continue
		}
		// No candidate resolves anywhere: the slot is omitted and the
		// shorter plan is the only signal.
	}
	return plan
}
