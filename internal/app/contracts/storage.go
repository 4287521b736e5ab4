package contracts

import (
	"batch-schedule-service/internal/app/models"
	"context"
)

// ScheduleArchive keeps an immutable JSON snapshot of every saved schedule.
type ScheduleArchive interface {
	ArchiveSnapshot(ctx context.Context, event *models.ScheduleSavedEvent) (string, error)
}
