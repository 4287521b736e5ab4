package moduleschedules

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/dto/requests"
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ModuleScheduleController struct {
	Log                   *zap.Logger
	ModuleScheduleUsecase contracts.ModuleScheduleUsecase
	RequestTimeout        time.Duration
}

func NewModuleScheduleController(logger *zap.Logger, moduleScheduleUsecase contracts.ModuleScheduleUsecase, requestTimeout time.Duration) *ModuleScheduleController {
	return &ModuleScheduleController{
		Log:                   logger,
		ModuleScheduleUsecase: moduleScheduleUsecase,
		RequestTimeout:        requestTimeout,
	}
}

func (ctrl *ModuleScheduleController) OpenSession(w http.ResponseWriter, r *http.Request) {
	batchID, err := utils.GetURLParam(r, constvars.URLParamBatchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	moduleID, err := utils.GetURLParam(r, constvars.URLParamModuleID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.OpenSession(ctx, batchID, moduleID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ModuleScheduleSessionOpenedMessage, result)
}

func (ctrl *ModuleScheduleController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.GetSession(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleSessionFetchedMessage, result)
}

func (ctrl *ModuleScheduleController) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	index, err := utils.GetURLParamIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.ToggleSlot(ctx, sessionID, index)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleSlotToggledMessage, result)
}

func (ctrl *ModuleScheduleController) DeleteSlotTiming(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	index, err := utils.GetURLParamIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.DeleteSlotTiming(ctx, sessionID, index)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleSlotDeletedMessage, result)
}

func (ctrl *ModuleScheduleController) SetApplyToAll(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ApplyToAll)
	err = utils.ParseRequestBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.SetApplyToAll(ctx, sessionID, request)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleApplyToAllUpdatedMessage, result)
}

func (ctrl *ModuleScheduleController) SetSlotTime(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	index, err := utils.GetURLParamIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SetScheduleTime)
	err = utils.ParseRequestBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.SetSlotTime(ctx, sessionID, index, request)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleTimeUpdatedMessage, result)
}

func (ctrl *ModuleScheduleController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ModuleScheduleUsecase.Submit(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleSubmittedMessage, result)
}

func (ctrl *ModuleScheduleController) CancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.ModuleScheduleUsecase.CancelSession(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModuleScheduleSessionCancelledMessage, nil)
}

func (ctrl *ModuleScheduleController) buildError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
