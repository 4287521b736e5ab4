package batchschedules

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

type BatchScheduleController struct {
	Log                  *zap.Logger
	BatchScheduleUsecase contracts.BatchScheduleUsecase
	RequestTimeout       time.Duration
}

func NewBatchScheduleController(logger *zap.Logger, batchScheduleUsecase contracts.BatchScheduleUsecase, requestTimeout time.Duration) *BatchScheduleController {
	return &BatchScheduleController{
		Log:                  logger,
		BatchScheduleUsecase: batchScheduleUsecase,
		RequestTimeout:       requestTimeout,
	}
}

func (ctrl *BatchScheduleController) OpenSession(w http.ResponseWriter, r *http.Request) {
	batchID, err := utils.GetURLParam(r, constvars.URLParamBatchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.BatchScheduleUsecase.OpenSession(ctx, batchID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleSessionOpenedMessage, result)
}

func (ctrl *BatchScheduleController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.BatchScheduleUsecase.GetSession(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSessionFetchedMessage, result)
}

func (ctrl *BatchScheduleController) ToggleDay(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	dayID, err := utils.GetURLParam(r, constvars.URLParamDayID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ToggleScheduleDay)
	err = utils.ParseRequestBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.BatchScheduleUsecase.ToggleDay(ctx, sessionID, dayID, request)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleDayToggledMessage, result)
}

func (ctrl *BatchScheduleController) SetApplyToAll(w http.ResponseWriter, r *http.Request) {
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

	result, err := ctrl.BatchScheduleUsecase.SetApplyToAll(ctx, sessionID, request)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleApplyToAllUpdatedMessage, result)
}

func (ctrl *BatchScheduleController) SetTime(w http.ResponseWriter, r *http.Request) {
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

	result, err := ctrl.BatchScheduleUsecase.SetTime(ctx, sessionID, index, request)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleTimeUpdatedMessage, result)
}

func (ctrl *BatchScheduleController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.BatchScheduleUsecase.Submit(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSubmittedMessage, result)
}

func (ctrl *BatchScheduleController) CancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.GetURLParam(r, constvars.URLParamSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.BatchScheduleUsecase.CancelSession(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSessionCancelledMessage, nil)
}

func (ctrl *BatchScheduleController) buildError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
