package moduleschedules

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

type ModuleScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewModuleScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ModuleScheduleRepository {
	return &ModuleScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionModuleSchedules),
	}
}

func (repo *ModuleScheduleMongoRepository) FindByModule(ctx context.Context, batchID, moduleID string) (*models.ModuleSchedule, error) {
	var schedule models.ModuleSchedule
	filter := bson.M{"_id": models.ModuleScheduleID(batchID, moduleID)}
	err := repo.Collection.FindOne(ctx, filter).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

// Upsert replaces the days of the module overlay. The id is derived from the
// batch and module when the caller left it empty.
func (repo *ModuleScheduleMongoRepository) Upsert(ctx context.Context, schedule *models.ModuleSchedule) error {
	if schedule.ID == "" {
		schedule.ID = models.ModuleScheduleID(schedule.BatchID, schedule.ModuleID)
	}

	filter := bson.M{"_id": schedule.ID}
	update := bson.M{
		"$set": bson.M{
			"batchId":   schedule.BatchID,
			"moduleId":  schedule.ModuleID,
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
