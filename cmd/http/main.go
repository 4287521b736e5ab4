package main

import (
	"batch-schedule-service/internal/app/config"
	"batch-schedule-service/internal/app/delivery/http/middlewares"
	"batch-schedule-service/internal/app/delivery/http/routers"
	"batch-schedule-service/internal/app/drivers/database"
	"batch-schedule-service/internal/app/drivers/logger"
	"batch-schedule-service/internal/app/drivers/messaging"
	"batch-schedule-service/internal/app/drivers/storage"
	"batch-schedule-service/internal/app/services/core/batchschedules"
	"batch-schedule-service/internal/app/services/core/daycatalog"
	"batch-schedule-service/internal/app/services/core/moduleschedules"
	"batch-schedule-service/internal/app/services/shared/locker"
	"batch-schedule-service/internal/app/services/shared/publisher"
	"batch-schedule-service/internal/app/services/shared/redis"
	"batch-schedule-service/internal/app/services/shared/sessionstore"
	minioArchive "batch-schedule-service/internal/app/services/shared/storage"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis, internalConfig.Schedule.RedisKeyPrefix)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionStore := sessionstore.NewScheduleSessionStore(
		redisRepository,
		lockerService,
		time.Duration(internalConfig.Schedule.SessionTTLInMinutes)*time.Minute,
		time.Duration(internalConfig.Schedule.SessionLockInSeconds)*time.Second,
		bootstrap.Logger,
	)

	// Saved schedule fan-out
	eventPublisher, err := publisher.NewSchedulePublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ScheduleSavedQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	scheduleArchive := minioArchive.NewMinioArchive(bootstrap.Minio, internalConfig.Minio.BucketName, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	// Day catalog
	dayCatalogMongoRepository := daycatalog.NewDayCatalogMongoRepository(bootstrap.MongoDB, dbName)
	dayCatalogUsecase := daycatalog.NewDayCatalogUsecase(dayCatalogMongoRepository, bootstrap.Logger)
	dayCatalogController := daycatalog.NewDayCatalogController(bootstrap.Logger, dayCatalogUsecase, requestTimeout)

	// Batch schedule
	batchScheduleMongoRepository := batchschedules.NewBatchScheduleMongoRepository(bootstrap.MongoDB, dbName)
	batchScheduleUsecase := batchschedules.NewBatchScheduleUsecase(
		batchScheduleMongoRepository,
		dayCatalogUsecase,
		sessionStore,
		eventPublisher,
		scheduleArchive,
		bootstrap.Logger,
	)
	batchScheduleController := batchschedules.NewBatchScheduleController(bootstrap.Logger, batchScheduleUsecase, requestTimeout)

	// Module schedule
	moduleScheduleMongoRepository := moduleschedules.NewModuleScheduleMongoRepository(bootstrap.MongoDB, dbName)
	moduleScheduleUsecase := moduleschedules.NewModuleScheduleUsecase(
		moduleScheduleMongoRepository,
		dayCatalogUsecase,
		sessionStore,
		eventPublisher,
		scheduleArchive,
		bootstrap.Logger,
	)
	moduleScheduleController := moduleschedules.NewModuleScheduleController(bootstrap.Logger, moduleScheduleUsecase, requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		dayCatalogController,
		batchScheduleController,
		moduleScheduleController,
	)
	return nil
}
