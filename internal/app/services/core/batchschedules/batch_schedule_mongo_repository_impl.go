package batchschedules

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BatchScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewBatchScheduleMongoRepository(db *mongo.Client, dbName string) contracts.BatchScheduleRepository {
	return &BatchScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBatchSchedules),
	}
}

// FindByBatchID returns nil without error when the batch has no timetable yet.
func (repo *BatchScheduleMongoRepository) FindByBatchID(ctx context.Context, batchID string) (*models.BatchSchedule, error) {
	var schedule models.BatchSchedule
	err := repo.Collection.FindOne(ctx, bson.M{"_id": batchID}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (repo *BatchScheduleMongoRepository) Upsert(ctx context.Context, schedule *models.BatchSchedule) error {
	filter := bson.M{"_id": schedule.BatchID}
	update := bson.M{
		"$set": bson.M{
			"days":      schedule.Days,
			"updatedAt": schedule.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": schedule.CreatedAt,
		},
	}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
