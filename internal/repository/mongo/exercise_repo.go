package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the catalog.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == "" || exercise.Name == "" {
		return errors.New("exercise id and name are required")
	}

	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, exercise)
	return err
}

// GetByID retrieves an exercise by its id.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetAll retrieves the entire catalog, sorted by name for stable listings.
func (r *mongoExerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Update replaces the mutable fields of an existing exercise. The id and
// CreatedAt are never touched.
func (r *mongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == "" {
		return errors.New("exercise id is required for update")
	}
	if exercise.Name == "" {
		return errors.New("exercise name cannot be empty")
	}

	filter := bson.M{"_id": exercise.ID}
	update := bson.M{
		"$set": bson.M{
			"name":            exercise.Name,
			"equipment":       exercise.Equipment,
			"primaryMuscle":   exercise.PrimaryMuscle,
			"secondaryMuscle": exercise.SecondaryMuscle,
			"muscleGroups":    exercise.MuscleGroups,
			"restSeconds":     exercise.RestSeconds,
			"targetNotes":     exercise.TargetNotes,
			"notes":           exercise.Notes,
			"lastSession":     exercise.LastSession,
			"lastPerformedOn": exercise.LastPerformedOn,
			"videoObjectKey":  exercise.VideoObjectKey,
			"updatedAt":       time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an exercise from the catalog.
func (r *mongoExerciseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count reports how many exercises exist; used to decide whether to seed.
func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedMany bulk-inserts the default library into an empty collection.
func (r *mongoExerciseRepository) SeedMany(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(exercises))
	now := time.Now().UTC()
	for i := range exercises {
		exercises[i].CreatedAt = now
		exercises[i].UpdatedAt = now
		docs = append(docs, exercises[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
