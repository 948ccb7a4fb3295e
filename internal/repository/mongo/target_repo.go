package mongo

import (
	"context"
	"errors"

	"github.com/ayushjpeg/Gym/internal/domain"
	"github.com/ayushjpeg/Gym/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const targetCollectionName = "muscle_targets"

// mongoTargetRepository implements repository.TargetRepository
type mongoTargetRepository struct {
	collection *mongo.Collection
}

// NewMongoTargetRepository creates a new Target repository backed by MongoDB.
func NewMongoTargetRepository(db *mongo.Database) repository.TargetRepository {
	return &mongoTargetRepository{
		collection: db.Collection(targetCollectionName),
	}
}

// GetAll retrieves every muscle target, sorted by muscle name.
func (r *mongoTargetRepository) GetAll(ctx context.Context) ([]domain.MuscleTarget, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var targets []domain.MuscleTarget
	if err = cursor.All(ctx, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// Upsert writes the target for one muscle, creating it if absent.
func (r *mongoTargetRepository) Upsert(ctx context.Context, target *domain.MuscleTarget) error {
	if target.Muscle == "" {
		return errors.New("muscle name is required")
	}
	filter := bson.M{"_id": target.Muscle}
	update := bson.M{"$set": bson.M{"range": target.Range}}
	updateOptions := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, updateOptions)
	return err
}

// Count reports how many targets exist; used to decide whether to seed.
func (r *mongoTargetRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedMany bulk-inserts the default targets into an empty collection.
func (r *mongoTargetRepository) SeedMany(ctx context.Context, targets []domain.MuscleTarget) error {
	if len(targets) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(targets))
	for i := range targets {
		docs = append(docs, targets[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
