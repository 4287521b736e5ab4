package daycatalog

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DayCatalogController struct {
	Log               *zap.Logger
	DayCatalogUsecase contracts.DayCatalogUsecase
	RequestTimeout    time.Duration
}

func NewDayCatalogController(logger *zap.Logger, dayCatalogUsecase contracts.DayCatalogUsecase, requestTimeout time.Duration) *DayCatalogController {
	return &DayCatalogController{
		Log:               logger,
		DayCatalogUsecase: dayCatalogUsecase,
		RequestTimeout:    requestTimeout,
	}
}

func (ctrl *DayCatalogController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DayCatalogUsecase.FindAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDayCatalogSuccessMessage, result)
}
