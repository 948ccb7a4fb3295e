// Package program carries the built-in training program: the recurring
// week template, the default exercise library and the default weekly muscle
// targets. The library doubles as the slot resolver's static fallback set,
// so slots keep their descriptive metadata even when the live catalog has
// lost the exercise.
package program

import "github.com/ayushjpeg/Gym/internal/domain"

// DefaultExercises builds the seed exercise library. A fresh map is
// returned on every call so callers can never share mutable state through
// it.
func DefaultExercises() map[string]domain.Exercise {
	list := []domain.Exercise{
		{
			ID:            "warmup_mobility",
			Name:          "Dynamic Warm-up",
			Equipment:     "Bodyweight + bands",
			PrimaryMuscle: "Full Body",
			MuscleGroups:  []string{"Full Body"},
			RestSeconds:   0,
			TargetNotes:   "Keep heart rate around 120 bpm and focus on shoulder circles, band pull-aparts, and ankle mobility for 8-10 minutes.",
		},
		{
			ID:              "pushups_standard",
			Name:            "Push-ups",
			Equipment:       "Bodyweight / floor",
			PrimaryMuscle:   "Chest",
			SecondaryMuscle: "Triceps",
			MuscleGroups:    []string{"Chest", "Triceps", "Core"},
			RestSeconds:     60,
			TargetNotes:     "Aim to add a slow eccentric or elevate feet for a harder variation if all sets felt easy.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Bodyweight("BW"), Reps: 12},
				{Index: 2, Weight: domain.Bodyweight("BW"), Reps: 12},
				{Index: 3, Weight: domain.Bodyweight("BW"), Reps: 12},
			},
		},
		{
			ID:              "bench_press_barbell",
			Name:            "Barbell Bench Press",
			Equipment:       "Flat bench + barbell",
			PrimaryMuscle:   "Chest",
			SecondaryMuscle: "Triceps",
			MuscleGroups:    []string{"Chest", "Triceps", "Front Delts"},
			RestSeconds:     150,
			TargetNotes:     "Add 2.5 kg to the top set or push for +1 rep while maintaining bar speed.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(40), Reps: 12},
				{Index: 2, Weight: domain.Kilos(45), Reps: 10},
				{Index: 3, Weight: domain.Kilos(50), Reps: 8},
			},
		},
		{
			ID:              "assisted_pullup",
			Name:            "Assisted Pull-ups",
			Equipment:       "Assisted chin-up machine",
			PrimaryMuscle:   "Back",
			SecondaryMuscle: "Biceps",
			MuscleGroups:    []string{"Back", "Biceps"},
			RestSeconds:     120,
			TargetNotes:     "Reduce assistance by ~5 kg or hold the top for 2 s each rep.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Bodyweight("-35"), Reps: 8},
				{Index: 2, Weight: domain.Bodyweight("-30"), Reps: 8},
			},
		},
		{
			ID:              "lat_pulldown",
			Name:            "Lat Pulldown",
			Equipment:       "Cable tower",
			PrimaryMuscle:   "Lats",
			SecondaryMuscle: "Upper Back",
			MuscleGroups:    []string{"Lats", "Upper Back"},
			RestSeconds:     90,
			TargetNotes:     "Match last week then add +2.5 kg to the final set or focus on 1-second squeezes.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(25), Reps: 12},
				{Index: 2, Weight: domain.Kilos(30), Reps: 10},
				{Index: 3, Weight: domain.Kilos(35), Reps: 8},
			},
		},
		{
			ID:              "smith_shoulder_press",
			Name:            "Smith Machine Shoulder Press",
			Equipment:       "Smith machine",
			PrimaryMuscle:   "Shoulders",
			SecondaryMuscle: "Triceps",
			MuscleGroups:    []string{"Shoulders", "Triceps"},
			RestSeconds:     120,
			TargetNotes:     "Try to keep RIR (reps in reserve) at ~2. Add 2.5 kg if last week felt smooth.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(20), Reps: 10},
				{Index: 2, Weight: domain.Kilos(25), Reps: 8},
				{Index: 3, Weight: domain.Kilos(25), Reps: 8},
			},
		},
		{
			ID:            "tricep_rope_pushdown",
			Name:          "Tricep Rope Pushdown",
			Equipment:     "Cable tower",
			PrimaryMuscle: "Triceps",
			MuscleGroups:  []string{"Triceps"},
			RestSeconds:   75,
			TargetNotes:   "Hold the peak contraction for a full second each rep before adding load.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(15), Reps: 12},
				{Index: 2, Weight: domain.Kilos(20), Reps: 10},
				{Index: 3, Weight: domain.Kilos(25), Reps: 8},
			},
		},
		{
			ID:            "db_biceps_curl",
			Name:          "Dumbbell Biceps Curl",
			Equipment:     "Dumbbells",
			PrimaryMuscle: "Biceps",
			MuscleGroups:  []string{"Biceps"},
			RestSeconds:   60,
			TargetNotes:   "Try to hit +1 rep on the top set or slow the eccentric to 3 seconds.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(5), Reps: 12},
				{Index: 2, Weight: domain.Kilos(7.5), Reps: 10},
				{Index: 3, Weight: domain.Kilos(10), Reps: 8},
			},
		},
		{
			ID:              "bodyweight_squat",
			Name:            "Bodyweight Squats",
			Equipment:       "Bodyweight",
			PrimaryMuscle:   "Quads",
			SecondaryMuscle: "Glutes",
			MuscleGroups:    []string{"Quads", "Glutes"},
			RestSeconds:     60,
			TargetNotes:     "Add tempo (3-1-1) or hold a 10 kg plate goblet-style for added challenge.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Bodyweight("BW"), Reps: 40},
				{Index: 2, Weight: domain.Bodyweight("BW"), Reps: 30},
				{Index: 3, Weight: domain.Bodyweight("BW"), Reps: 30},
			},
		},
		{
			ID:            "seated_leg_curl",
			Name:          "Seated Leg Curl",
			Equipment:     "Leg curl machine",
			PrimaryMuscle: "Hamstrings",
			MuscleGroups:  []string{"Hamstrings"},
			RestSeconds:   90,
			TargetNotes:   "Keep hips glued to the pad and pause in the shortened position.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(30), Reps: 12},
				{Index: 2, Weight: domain.Kilos(40), Reps: 10},
				{Index: 3, Weight: domain.Kilos(50), Reps: 8},
			},
		},
		{
			ID:              "barbell_squat",
			Name:            "Barbell Back Squat",
			Equipment:       "Squat rack",
			PrimaryMuscle:   "Quads",
			SecondaryMuscle: "Glutes",
			MuscleGroups:    []string{"Quads", "Glutes"},
			RestSeconds:     150,
			TargetNotes:     "Add 2.5 kg to each side on the top set if depth stayed solid.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(10), Reps: 10},
				{Index: 2, Weight: domain.Kilos(15), Reps: 8},
				{Index: 3, Weight: domain.Kilos(20), Reps: 6},
			},
		},
		{
			ID:            "lying_leg_curl",
			Name:          "Lying Leg Curl",
			Equipment:     "Leg curl machine",
			PrimaryMuscle: "Hamstrings",
			MuscleGroups:  []string{"Hamstrings"},
			RestSeconds:   90,
			TargetNotes:   "Drive hips into the pad and imagine performing a leg drive.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(15), Reps: 12},
				{Index: 2, Weight: domain.Kilos(20), Reps: 10},
				{Index: 3, Weight: domain.Kilos(25), Reps: 8},
			},
		},
		{
			ID:            "standing_calf_raise",
			Name:          "Standing Calf Raise",
			Equipment:     "Bodyweight or machine",
			PrimaryMuscle: "Calves",
			MuscleGroups:  []string{"Calves"},
			RestSeconds:   60,
			TargetNotes:   "Add a pause at the bottom and top or hold a 10 kg plate.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Bodyweight("BW"), Reps: 24},
				{Index: 2, Weight: domain.Bodyweight("BW"), Reps: 24},
				{Index: 3, Weight: domain.Bodyweight("BW"), Reps: 24},
			},
		},
		{
			ID:            "decline_crunch",
			Name:          "Decline Crunch",
			Equipment:     "Decline bench",
			PrimaryMuscle: "Abs",
			MuscleGroups:  []string{"Abs"},
			RestSeconds:   45,
			TargetNotes:   "Keep rib-to-hip crunch and exhale at the top. Add 2.5 kg when all sets hit 15 reps.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Bodyweight("BW"), Reps: 15},
				{Index: 2, Weight: domain.Kilos(10), Reps: 12},
				{Index: 3, Weight: domain.Kilos(15), Reps: 10},
			},
		},
		{
			ID:              "incline_bench_press",
			Name:            "Incline Bench Press",
			Equipment:       "Bench + barbell",
			PrimaryMuscle:   "Chest",
			SecondaryMuscle: "Shoulders",
			MuscleGroups:    []string{"Chest", "Shoulders"},
			RestSeconds:     150,
			TargetNotes:     "Micro-load with 1.25 kg plates or push for +1 rep.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(40), Reps: 12},
				{Index: 2, Weight: domain.Kilos(50), Reps: 10},
				{Index: 3, Weight: domain.Kilos(55), Reps: 8},
			},
		},
		{
			ID:            "pec_deck_fly",
			Name:          "Pec Deck Fly",
			Equipment:     "Pec deck machine",
			PrimaryMuscle: "Chest",
			MuscleGroups:  []string{"Chest"},
			RestSeconds:   75,
			TargetNotes:   "Squeeze for two seconds and keep shoulders depressed.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(20), Reps: 12},
				{Index: 2, Weight: domain.Kilos(25), Reps: 10},
				{Index: 3, Weight: domain.Kilos(30), Reps: 10},
			},
		},
		{
			ID:            "seated_cable_row",
			Name:          "Seated Cable Row (rope)",
			Equipment:     "Cable row station",
			PrimaryMuscle: "Back",
			MuscleGroups:  []string{"Back"},
			RestSeconds:   90,
			TargetNotes:   "Keep neutral spine and squeeze shoulder blades.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(35), Reps: 12},
				{Index: 2, Weight: domain.Kilos(40), Reps: 10},
				{Index: 3, Weight: domain.Kilos(45), Reps: 8},
			},
		},
		{
			ID:            "reverse_pec_deck",
			Name:          "Reverse Pec Deck",
			Equipment:     "Pec deck machine",
			PrimaryMuscle: "Rear Delts",
			MuscleGroups:  []string{"Rear Delts"},
			RestSeconds:   60,
			TargetNotes:   "Stay in the 12-20 rep range and chase the burn.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(15), Reps: 15},
				{Index: 2, Weight: domain.Kilos(20), Reps: 12},
				{Index: 3, Weight: domain.Kilos(20), Reps: 12},
			},
		},
		{
			ID:              "face_pull",
			Name:            "Face Pull",
			Equipment:       "Cable + rope",
			PrimaryMuscle:   "Rear Delts",
			SecondaryMuscle: "Upper Back",
			MuscleGroups:    []string{"Rear Delts", "Upper Back"},
			RestSeconds:     60,
			TargetNotes:     "Use chest height pulley and externally rotate hard.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(15), Reps: 15},
				{Index: 2, Weight: domain.Kilos(15), Reps: 15},
				{Index: 3, Weight: domain.Kilos(20), Reps: 12},
			},
		},
		{
			ID:            "lateral_raise",
			Name:          "Dumbbell Lateral Raise",
			Equipment:     "Dumbbells",
			PrimaryMuscle: "Side Delts",
			MuscleGroups:  []string{"Side Delts"},
			RestSeconds:   45,
			TargetNotes:   "Work up to 2 working sets once you can get 20 clean reps.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(7.5), Reps: 15},
			},
		},
		{
			ID:            "db_overhead_triceps",
			Name:          "DB Overhead Tricep Extension",
			Equipment:     "Dumbbells",
			PrimaryMuscle: "Triceps",
			MuscleGroups:  []string{"Triceps"},
			RestSeconds:   75,
			TargetNotes:   "Keep elbows narrow and chase a big stretch.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(12.5), Reps: 12},
				{Index: 2, Weight: domain.Kilos(15), Reps: 10},
				{Index: 3, Weight: domain.Kilos(17.5), Reps: 8},
			},
		},
		{
			ID:              "hammer_curl",
			Name:            "Hammer Curl",
			Equipment:       "Dumbbells",
			PrimaryMuscle:   "Biceps",
			SecondaryMuscle: "Forearms",
			MuscleGroups:    []string{"Biceps", "Forearms"},
			RestSeconds:     60,
			TargetNotes:     "Try alternating arms with a 1-second pause at top.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(10), Reps: 12},
				{Index: 2, Weight: domain.Kilos(12.5), Reps: 10},
				{Index: 3, Weight: domain.Kilos(15), Reps: 8},
			},
		},
		{
			ID:            "leg_extension",
			Name:          "Seated Leg Extension",
			Equipment:     "Leg extension machine",
			PrimaryMuscle: "Quads",
			MuscleGroups:  []string{"Quads"},
			RestSeconds:   75,
			TargetNotes:   "Add a 2-second peak squeeze or increase load by 2.5 kg.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(30), Reps: 15},
				{Index: 2, Weight: domain.Kilos(35), Reps: 12},
				{Index: 3, Weight: domain.Kilos(40), Reps: 10},
			},
		},
		{
			ID:              "smith_rdl",
			Name:            "Smith Machine RDL",
			Equipment:       "Smith machine",
			PrimaryMuscle:   "Hamstrings",
			SecondaryMuscle: "Glutes",
			MuscleGroups:    []string{"Hamstrings", "Glutes"},
			RestSeconds:     120,
			TargetNotes:     "Focus on 3-second eccentrics and keep bar close to legs.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(30), Reps: 10},
				{Index: 2, Weight: domain.Kilos(35), Reps: 8},
				{Index: 3, Weight: domain.Kilos(40), Reps: 8},
			},
		},
		{
			ID:              "leg_press",
			Name:            "Leg Press",
			Equipment:       "Leg press machine",
			PrimaryMuscle:   "Quads",
			SecondaryMuscle: "Glutes",
			MuscleGroups:    []string{"Quads", "Glutes"},
			RestSeconds:     120,
			TargetNotes:     "Keep depth just before hips tuck under. Add 5 kg per side when reps feel smooth.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Kilos(80), Reps: 12},
				{Index: 2, Weight: domain.Kilos(100), Reps: 10},
				{Index: 3, Weight: domain.Kilos(120), Reps: 8},
			},
		},
		{
			ID:              "walking_lunge",
			Name:            "Walking Lunges",
			Equipment:       "Dumbbells",
			PrimaryMuscle:   "Quads",
			SecondaryMuscle: "Glutes",
			MuscleGroups:    []string{"Quads", "Glutes"},
			RestSeconds:     90,
			TargetNotes:     "Add light dumbbells or slow eccentrics.",
			LastSession: []domain.Set{
				{Index: 1, Weight: domain.Bodyweight("BW"), Reps: 12},
				{Index: 2, Weight: domain.Bodyweight("BW"), Reps: 12},
				{Index: 3, Weight: domain.Bodyweight("BW"), Reps: 12},
			},
		},
	}

	m := make(map[string]domain.Exercise, len(list))
	for _, ex := range list {
		m[ex.ID] = ex
	}
	return m
}
