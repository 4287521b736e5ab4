package contracts

import (
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/app/services/core/composer"
	"batch-schedule-service/internal/pkg/dto/responses"
	"context"
)

type DayCatalogUsecase interface {
	FindAll(ctx context.Context) ([]responses.WeekDay, error)
	Catalog(ctx context.Context) (*composer.DayCatalog, error)
}

type DayCatalogRepository interface {
	FindAll(ctx context.Context) ([]models.WeekDay, error)
	UpsertMany(ctx context.Context, days []models.WeekDay) error
}
