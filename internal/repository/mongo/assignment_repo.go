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

const assignmentCollectionName = "assignments"

// mongoAssignmentRepository implements repository.AssignmentRepository
type mongoAssignmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAssignmentRepository creates a new Assignment repository backed by MongoDB.
func NewMongoAssignmentRepository(db *mongo.Database) repository.AssignmentRepository {
	return &mongoAssignmentRepository{
		collection: db.Collection(assignmentCollectionName),
	}
}

// GetByID retrieves a single slot assignment.
func (r *mongoAssignmentRepository) GetByID(ctx context.Context, id string) (*domain.SlotAssignment, error) {
	var assignment domain.SlotAssignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// GetAll retrieves every slot assignment in template order.
func (r *mongoAssignmentRepository) GetAll(ctx context.Context) ([]domain.SlotAssignment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dayKey", Value: 1}, {Key: "orderIndex", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []domain.SlotAssignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateSelected records a manual substitution and returns the updated
// document. An empty selectedExerciseID reverts the slot to its default.
func (r *mongoAssignmentRepository) UpdateSelected(ctx context.Context, id, selectedExerciseID string) (*domain.SlotAssignment, error) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"selectedExerciseId": selectedExerciseID,
			"updatedAt":          time.Now().UTC(),
		},
	}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var assignment domain.SlotAssignment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, findOptions).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// ClearSelections reverts every slot whose manual selection points at the
// given exercise.
func (r *mongoAssignmentRepository) ClearSelections(ctx context.Context, exerciseID string) (int64, error) {
	filter := bson.M{"selectedExerciseId": exerciseID}
	update := bson.M{
		"$set": bson.M{
			"selectedExerciseId": "",
			"updatedAt":          time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Count reports how many assignments exist; used to decide whether to seed.
func (r *mongoAssignmentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedMany bulk-inserts the template's slot assignments into an empty
// collection.
func (r *mongoAssignmentRepository) SeedMany(ctx context.Context, assignments []domain.SlotAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(assignments))
	now := time.Now().UTC()
	for i := range assignments {
		assignments[i].UpdatedAt = now
		docs = append(docs, assignments[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
