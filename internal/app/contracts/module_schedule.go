package contracts

import (
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/dto/requests"
	"batch-schedule-service/internal/pkg/dto/responses"
	"context"
)

type ModuleScheduleUsecase interface {
	OpenSession(ctx context.Context, batchID, moduleID string) (*responses.ModuleScheduleSession, error)
	GetSession(ctx context.Context, sessionID string) (*responses.ModuleScheduleSession, error)
	ToggleSlot(ctx context.Context, sessionID string, index int) (*responses.ModuleScheduleSession, error)
	DeleteSlotTiming(ctx context.Context, sessionID string, index int) (*responses.ModuleScheduleSession, error)
	SetApplyToAll(ctx context.Context, sessionID string, request *requests.ApplyToAll) (*responses.ModuleScheduleSession, error)
	SetSlotTime(ctx context.Context, sessionID string, index int, request *requests.SetScheduleTime) (*responses.ModuleScheduleSession, error)
	Submit(ctx context.Context, sessionID string) (*responses.SavedSchedule, error)
	CancelSession(ctx context.Context, sessionID string) error
}

type ModuleScheduleRepository interface {
	FindByModule(ctx context.Context, batchID, moduleID string) (*models.ModuleSchedule, error)
	Upsert(ctx context.Context, schedule *models.ModuleSchedule) error
}
