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

const historyCollectionName = "history"

// mongoHistoryRepository implements repository.HistoryRepository
type mongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new History repository backed by MongoDB.
func NewMongoHistoryRepository(db *mongo.Database) repository.HistoryRepository {
	return &mongoHistoryRepository{
		collection: db.Collection(historyCollectionName),
	}
}

// Create inserts a new history record.
func (r *mongoHistoryRepository) Create(ctx context.Context, record *domain.HistoryRecord) error {
	if record.ID == "" {
		return errors.New("history record id is required")
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// GetByID retrieves a single record by its id.
func (r *mongoHistoryRepository) GetByID(ctx context.Context, id string) (*domain.HistoryRecord, error) {
	var record domain.HistoryRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves every history record ordered oldest first.
func (r *mongoHistoryRepository) GetAll(ctx context.Context) ([]domain.HistoryRecord, error) {
	return r.find(ctx, bson.M{})
}

// GetByExerciseID retrieves the records for one exercise, oldest first.
func (r *mongoHistoryRepository) GetByExerciseID(ctx context.Context, exerciseID string) ([]domain.HistoryRecord, error) {
	return r.find(ctx, bson.M{"exerciseId": exerciseID})
}

func (r *mongoHistoryRepository) find(ctx context.Context, filter bson.M) ([]domain.HistoryRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "recordedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []domain.HistoryRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteMatchingDay removes existing records that the given record
// supersedes: same day bucket for cardio, same exercise and date for
// strength. The new record itself is excluded so the call is safe after
// insertion too.
func (r *mongoHistoryRepository) DeleteMatchingDay(ctx context.Context, record *domain.HistoryRecord) error {
	if record.Date == "" {
		return nil
	}
	filter := bson.M{
		"_id":  bson.M{"$ne": record.ID},
		"date": record.Date,
	}
	if record.IsCardio() {
		filter["dayKey"] = record.DayKey
		filter["exerciseId"] = bson.M{"$regex": "^" + domain.CardioExercisePrefix}
	} else {
		filter["exerciseId"] = record.ExerciseID
	}
	_, err := r.collection.DeleteMany(ctx, filter)
	return err
}

// Delete removes one record by id.
func (r *mongoHistoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByExerciseID removes every record for one exercise and reports how
// many were dropped.
func (r *mongoHistoryRepository) DeleteByExerciseID(ctx context.Context, exerciseID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"exerciseId": exerciseID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureHistoryIndexes creates the lookup indexes for the history collection.
func EnsureHistoryIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "exerciseId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "dayKey", Value: 1}, {Key: "date", Value: 1}}},
	}
	_, err := db.Collection(historyCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}
