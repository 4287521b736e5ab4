package contracts

import (
	"batch-schedule-service/internal/app/models"
	"context"
)

type ScheduleEventPublisher interface {
	PublishScheduleSaved(ctx context.Context, event *models.ScheduleSavedEvent) error
}
