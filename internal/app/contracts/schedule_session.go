package contracts

import (
	"batch-schedule-service/internal/app/models"
	"context"
)

// ScheduleSessionStore keeps open edit sessions in redis. Get methods return
// nil without error when the session does not exist or has expired.
type ScheduleSessionStore interface {
	SaveBatchSession(ctx context.Context, session *models.BatchScheduleSession) error
	GetBatchSession(ctx context.Context, sessionID string) (*models.BatchScheduleSession, error)
	DeleteBatchSession(ctx context.Context, sessionID string) error
	SaveModuleSession(ctx context.Context, session *models.ModuleScheduleSession) error
	GetModuleSession(ctx context.Context, sessionID string) (*models.ModuleScheduleSession, error)
	DeleteModuleSession(ctx context.Context, sessionID string) error
	// WithLock runs fn while holding the session's lock.
	WithLock(ctx context.Context, sessionID string, fn func() error) error
}
