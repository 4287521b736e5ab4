package main

import (
	"batch-schedule-service/internal/app/config"
	"batch-schedule-service/internal/app/drivers/database"
	"batch-schedule-service/internal/app/drivers/logger"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/app/services/core/composer"
	"batch-schedule-service/internal/app/services/core/daycatalog"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// weekDays is the reference catalog, Monday first.
var weekDays = []models.WeekDay{
	{ID: "monday", Label: "Monday", Order: 1},
	{ID: "tuesday", Label: "Tuesday", Order: 2},
	{ID: "wednesday", Label: "Wednesday", Order: 3},
	{ID: "thursday", Label: "Thursday", Order: 4},
	{ID: "friday", Label: "Friday", Order: 5},
	{ID: "saturday", Label: "Saturday", Order: 6},
	{ID: "sunday", Label: "Sunday", Order: 7},
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	if _, err := composer.NewDayCatalog(weekDays); err != nil {
		log.WithError(err).Fatal("Reference day catalog is invalid")
	}

	mongoDB := database.NewMongoDB(driverConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoDB.Disconnect(ctx)

	repository := daycatalog.NewDayCatalogMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	err := repository.UpsertMany(ctx, weekDays)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed day catalog")
	}

	log.WithFields(logrus.Fields{
		"database": driverConfig.MongoDB.DbName,
		"days":     len(weekDays),
	}).Info("Day catalog seeded")
}
