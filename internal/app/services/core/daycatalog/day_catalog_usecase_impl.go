package daycatalog

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/services/core/composer"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/dto/responses"
	"batch-schedule-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.uber.org/zap"
)

type dayCatalogUsecase struct {
	DayCatalogRepository contracts.DayCatalogRepository
	Log                  *zap.Logger

	mu      sync.Mutex
	catalog *composer.DayCatalog
}

func NewDayCatalogUsecase(dayCatalogRepository contracts.DayCatalogRepository, logger *zap.Logger) contracts.DayCatalogUsecase {
	return &dayCatalogUsecase{
		DayCatalogRepository: dayCatalogRepository,
		Log:                  logger,
	}
}

// Catalog loads the weekdays once. A failed load is retried on the next call.
func (uc *dayCatalogUsecase) Catalog(ctx context.Context) (*composer.DayCatalog, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.catalog != nil {
		return uc.catalog, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dayCatalogUsecase.Catalog loading day catalog",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	days, err := uc.DayCatalogRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("dayCatalogUsecase.Catalog error fetching days from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	catalog, err := composer.NewDayCatalog(days)
	if err != nil {
		uc.Log.Error("dayCatalogUsecase.Catalog invalid day catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingDayCountKey, len(days)),
			zap.Error(err),
		)
		return nil, exceptions.ErrDayCatalogInvalid(err)
	}

	uc.Log.Info("dayCatalogUsecase.Catalog succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDayCountKey, catalog.Len()),
	)
	uc.catalog = catalog
	return catalog, nil
}

func (uc *dayCatalogUsecase) FindAll(ctx context.Context) ([]responses.WeekDay, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dayCatalogUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	catalog, err := uc.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	days := catalog.Days()
	response := make([]responses.WeekDay, len(days))
	for i, day := range days {
		response[i] = day.ConvertIntoResponse()
	}

	uc.Log.Info("dayCatalogUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDayCountKey, len(response)),
	)
	return response, nil
}
