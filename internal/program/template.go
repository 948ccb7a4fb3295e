package program

import "github.com/ayushjpeg/Gym/internal/domain"

// WeekTemplate builds the recurring 7-day program: two upper and two lower
// strength days, two running days and a rest day. The template is defined
// once; runtime substitutions go through slot assignments, never through
// the template itself.
func WeekTemplate() domain.WeekTemplate {
	return domain.WeekTemplate{
		"sunday": {
			Label:       "Sunday",
			Theme:       "Upper A",
			Description: "Push + Pull foundation day.",
			Slots: []domain.Slot{
				{SlotID: "upperA-1", Name: "Warm-up", Subtitle: "Jumping jacks + shoulder mobility", DefaultExerciseID: "warmup_mobility", Options: []string{"warmup_mobility"}},
				{SlotID: "upperA-2", Name: "Push-ups", Subtitle: "3 x 12", DefaultExerciseID: "pushups_standard", Options: []string{"pushups_standard", "bench_press_barbell"}},
				{SlotID: "upperA-3", Name: "Bench Press", Subtitle: "3 sets, progressively heavier", DefaultExerciseID: "bench_press_barbell", Options: []string{"bench_press_barbell", "incline_bench_press", "smith_shoulder_press"}},
				{SlotID: "upperA-4", Name: "Assisted Pull-ups", Subtitle: "2 sets, 35->30 kg assist", DefaultExerciseID: "assisted_pullup", Options: []string{"assisted_pullup", "lat_pulldown"}},
				{SlotID: "upperA-5", Name: "Lat Pulldown", Subtitle: "3 sets, 25/30/35 kg", DefaultExerciseID: "lat_pulldown", Options: []string{"lat_pulldown", "seated_cable_row"}},
				{SlotID: "upperA-6", Name: "Shoulder Press (Smith)", Subtitle: "3 sets", DefaultExerciseID: "smith_shoulder_press", Options: []string{"smith_shoulder_press", "lateral_raise"}},
				{SlotID: "upperA-7", Name: "Tricep Rope Pushdown", Subtitle: "3 sets, 15/20/25 kg", DefaultExerciseID: "tricep_rope_pushdown", Options: []string{"tricep_rope_pushdown", "db_overhead_triceps"}},
				{SlotID: "upperA-8", Name: "Dumbbell Bicep Curls", Subtitle: "3 sets, 5/7.5/10 kg", DefaultExerciseID: "db_biceps_curl", Options: []string{"db_biceps_curl", "hammer_curl"}},
			},
		},
		"monday": {
			Label:       "Monday",
			Theme:       "Cardio / Run",
			Description: "Zone 2 aerobic run + optional strides. Track calories, pace, and RPE.",
			Cardio: &domain.CardioPlan{
				TargetRuns:  1,
				Suggestions: "Aim for 20-30 minutes easy jogging. Keep HR < 150 bpm and finish with 4x20s strides.",
			},
		},
		"tuesday": {
			Label:       "Tuesday",
			Theme:       "Lower A",
			Description: "Squat-dominant lower day.",
			Slots: []domain.Slot{
				{SlotID: "lowerA-1", Name: "Bodyweight Squats", Subtitle: "3 sets, 40/30/30 reps", DefaultExerciseID: "bodyweight_squat", Options: []string{"bodyweight_squat", "walking_lunge"}},
				{SlotID: "lowerA-2", Name: "Seated Leg Curl", Subtitle: "3 sets, 30/40/50 kg", DefaultExerciseID: "seated_leg_curl", Options: []string{"seated_leg_curl", "lying_leg_curl", "smith_rdl"}},
				{SlotID: "lowerA-3", Name: "Barbell Squats", Subtitle: "3 sets, 10/15/20 kg plates", DefaultExerciseID: "barbell_squat", Options: []string{"barbell_squat", "leg_press", "smith_rdl"}},
				{SlotID: "lowerA-4", Name: "Lying Leg Curl", Subtitle: "3 sets, 15/20/25 kg", DefaultExerciseID: "lying_leg_curl", Options: []string{"lying_leg_curl", "seated_leg_curl", "smith_rdl"}},
				{SlotID: "lowerA-5", Name: "Standing Calf Raises", Subtitle: "3 x 24", DefaultExerciseID: "standing_calf_raise", Options: []string{"standing_calf_raise", "leg_press"}},
				{SlotID: "lowerA-6", Name: "Decline Crunches", Subtitle: "3 sets, BW -> 10 kg -> 15 kg", DefaultExerciseID: "decline_crunch", Options: []string{"decline_crunch"}},
			},
		},
		"wednesday": {
			Label:       "Wednesday",
			Theme:       "Cardio / Run",
			Description: "Intervals or tempo running to complement lower days.",
			Cardio: &domain.CardioPlan{
				TargetRuns:  1,
				Suggestions: "8-min warm-up jog, then 6x1 min fast / 1 min easy. Record peak pace.",
			},
		},
		"thursday": {
			Label:       "Thursday",
			Theme:       "Upper B",
			Description: "Incline + back focus with accessory delts/arms.",
			Slots: []domain.Slot{
				{SlotID: "upperB-1", Name: "Incline Bench Press", Subtitle: "3 sets, 40/50/55 kg", DefaultExerciseID: "incline_bench_press", Options: []string{"incline_bench_press", "bench_press_barbell", "smith_shoulder_press"}},
				{SlotID: "upperB-2", Name: "Pec Deck Fly", Subtitle: "3 sets, 20/25/30 kg", DefaultExerciseID: "pec_deck_fly", Options: []string{"pec_deck_fly", "lat_pulldown"}},
				{SlotID: "upperB-3", Name: "Seated Cable Row (Rope)", Subtitle: "3 sets", DefaultExerciseID: "seated_cable_row", Options: []string{"seated_cable_row", "assisted_pullup"}},
				{SlotID: "upperB-4", Name: "Reverse Pec Deck (Rear Delt Fly)", Subtitle: "3 sets", DefaultExerciseID: "reverse_pec_deck", Options: []string{"reverse_pec_deck", "face_pull"}},
				{SlotID: "upperB-5", Name: "Face Pulls", Subtitle: "3 sets", DefaultExerciseID: "face_pull", Options: []string{"face_pull", "reverse_pec_deck"}},
				{SlotID: "upperB-6", Name: "Lateral Raise", Subtitle: "1 set", DefaultExerciseID: "lateral_raise", Options: []string{"lateral_raise", "smith_shoulder_press"}},
				{SlotID: "upperB-7", Name: "DB Overhead Tricep Extension", Subtitle: "3 sets", DefaultExerciseID: "db_overhead_triceps", Options: []string{"db_overhead_triceps", "tricep_rope_pushdown"}},
				{SlotID: "upperB-8", Name: "Hammer Curls", Subtitle: "3 sets", DefaultExerciseID: "hammer_curl", Options: []string{"hammer_curl", "db_biceps_curl"}},
			},
		},
		"friday": {
			Label:       "Friday",
			Theme:       "Lower B",
			Description: "Leg extensions + hinges + unilateral work.",
			Slots: []domain.Slot{
				{SlotID: "lowerB-1", Name: "Seated Leg Extension", Subtitle: "3 sets", DefaultExerciseID: "leg_extension", Options: []string{"leg_extension", "bodyweight_squat"}},
				{SlotID: "lowerB-2", Name: "Smith Machine Deadlift (RDL)", Subtitle: "3 sets", DefaultExerciseID: "smith_rdl", Options: []string{"smith_rdl", "barbell_squat", "lying_leg_curl"}},
				{SlotID: "lowerB-3", Name: "Leg Press", Subtitle: "3 sets", DefaultExerciseID: "leg_press", Options: []string{"leg_press", "barbell_squat"}},
				{SlotID: "lowerB-4", Name: "Calf Raises", Subtitle: "3 sets", DefaultExerciseID: "standing_calf_raise", Options: []string{"standing_calf_raise", "leg_press"}},
				{SlotID: "lowerB-5", Name: "Lunges", Subtitle: "3 sets per leg", DefaultExerciseID: "walking_lunge", Options: []string{"walking_lunge", "bodyweight_squat"}},
				{SlotID: "lowerB-6", Name: "Decline Crunches", Subtitle: "3 sets", DefaultExerciseID: "decline_crunch", Options: []string{"decline_crunch"}},
			},
		},
		"saturday": {
			Label:       "Saturday",
			Theme:       "Rest / Restore",
			Description: "Mobility, long walk, or low-key hobby workout.",
			Focus:       "Sleep 8+ hours, optional stretching session.",
		},
	}
}
