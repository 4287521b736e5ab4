package daycatalog

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DayCatalogMongoRepository struct {
	Collection *mongo.Collection
}

func NewDayCatalogMongoRepository(db *mongo.Client, dbName string) contracts.DayCatalogRepository {
	return &DayCatalogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWeekDays),
	}
}

func (repo *DayCatalogMongoRepository) FindAll(ctx context.Context) ([]models.WeekDay, error) {
	var days []models.WeekDay
	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &days)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return days, nil
}

func (repo *DayCatalogMongoRepository) UpsertMany(ctx context.Context, days []models.WeekDay) error {
	writes := make([]mongo.WriteModel, len(days))
	for i, day := range days {
		writes[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": day.ID}).
			SetReplacement(day).
			SetUpsert(true)
	}

	_, err := repo.Collection.BulkWrite(ctx, writes)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
