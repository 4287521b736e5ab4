package contracts

import (
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/dto/requests"
	"batch-schedule-service/internal/pkg/dto/responses"
	"context"
)

type BatchScheduleUsecase interface {
	OpenSession(ctx context.Context, batchID string) (*responses.BatchScheduleSession, error)
	GetSession(ctx context.Context, sessionID string) (*responses.BatchScheduleSession, error)
	ToggleDay(ctx context.Context, sessionID, dayID string, request *requests.ToggleScheduleDay) (*responses.BatchScheduleSession, error)
	SetApplyToAll(ctx context.Context, sessionID string, request *requests.ApplyToAll) (*responses.BatchScheduleSession, error)
	SetTime(ctx context.Context, sessionID string, index int, request *requests.SetScheduleTime) (*responses.BatchScheduleSession, error)
	Submit(ctx context.Context, sessionID string) (*responses.SavedSchedule, error)
	CancelSession(ctx context.Context, sessionID string) error
}

type BatchScheduleRepository interface {
	FindByBatchID(ctx context.Context, batchID string) (*models.BatchSchedule, error)
	Upsert(ctx context.Context, schedule *models.BatchSchedule) error
}
