package service

import (
	"context"
	"log"
	"sort"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/program"
	"github.com/ayushjpeg/Gym/internal/repository"
	"github.com/ayushjpeg/Gym/internal/schedule"
)

// EnsureSeedData populates empty collections from the built-in program:
// the default exercise library, one slot assignment per template slot, and
// the default muscle targets. Collections that already hold data are left
// alone, so reseeding never clobbers user edits.
func EnsureSeedData(
	ctx context.Context,
	exerciseRepo repository.ExerciseRepository,
	assignmentRepo repository.AssignmentRepository,
	targetRepo repository.TargetRepository,
) error {
	if err := seedExercises(ctx, exerciseRepo); err != nil {
		return err
	}
	if err := seedAssignments(ctx, assignmentRepo); err != nil {
		return err
	}
	return seedTargets(ctx, targetRepo)
}

func seedExercises(ctx context.Context, repo repository.ExerciseRepository) error {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	library := program.DefaultExercises()
	ids := make([]string, 0, len(library))
	for id := range library {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	exercises := make([]domain.Exercise, 0, len(ids))
	for _, id := range ids {
		exercises = append(exercises, library[id])
	}
	if err := repo.SeedMany(ctx, exercises); err != nil {
		return err
	}
	log.Printf("Seeded %d exercises from the default library", len(exercises))
	return nil
}

func seedAssignments(ctx context.Context, repo repository.AssignmentRepository) error {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	template := program.WeekTemplate()
	var assignments []domain.SlotAssignment
	for _, dayKey := range schedule.DayKeys {
		day, ok := template[dayKey]
		if !ok {
			continue
		}
		for i, slot := range day.Slots {
			assignments = append(assignments, domain.SlotAssignment{
				ID:                slot.SlotID,
				DayKey:            dayKey,
				SlotID:            slot.SlotID,
				SlotName:          slot.Name,
				SlotSubtitle:      slot.Subtitle,
				OrderIndex:        i,
				DefaultExerciseID: slot.DefaultExerciseID,
				Options:           slot.Options,
			})
		}
	}
	if err := repo.SeedMany(ctx, assignments); err != nil {
		return err
	}
	log.Printf("Seeded %d slot assignments from the week template", len(assignments))
	return nil
}

func seedTargets(ctx context.Context, repo repository.TargetRepository) error {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	defaults := program.DefaultMuscleTargets()
	targets := make([]domain.MuscleTarget, 0, len(defaults))
	for _, muscle := range program.MuscleGroups {
		rng, ok := defaults[muscle]
		if !ok {
			continue
		}
		targets = append(targets, domain.MuscleTarget{Muscle: muscle, Range: rng})
	}
	if err := repo.SeedMany(ctx, targets); err != nil {
		return err
	}
	log.Printf("Seeded %d muscle targets", len(targets))
	return nil
}
