package batchschedules

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/app/services/core/composer"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/dto/requests"
	"batch-schedule-service/internal/pkg/dto/responses"
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type batchScheduleUsecase struct {
	BatchScheduleRepository contracts.BatchScheduleRepository
	DayCatalogUsecase       contracts.DayCatalogUsecase
	SessionStore            contracts.ScheduleSessionStore
	EventPublisher          contracts.ScheduleEventPublisher
	ScheduleArchive         contracts.ScheduleArchive
	Log                     *zap.Logger
	Now                     func() time.Time
}

func NewBatchScheduleUsecase(
	batchScheduleRepository contracts.BatchScheduleRepository,
	dayCatalogUsecase contracts.DayCatalogUsecase,
	sessionStore contracts.ScheduleSessionStore,
	eventPublisher contracts.ScheduleEventPublisher,
	scheduleArchive contracts.ScheduleArchive,
	logger *zap.Logger,
) contracts.BatchScheduleUsecase {
	return &batchScheduleUsecase{
		BatchScheduleRepository: batchScheduleRepository,
		DayCatalogUsecase:       dayCatalogUsecase,
		SessionStore:            sessionStore,
		EventPublisher:          eventPublisher,
		ScheduleArchive:         scheduleArchive,
		Log:                     logger,
		Now:                     time.Now,
	}
}

// batchMutation edits the restored schedule. Returning an error discards every change.
type batchMutation func(c *composer.ScheduleComposer) error

func (uc *batchScheduleUsecase) OpenSession(ctx context.Context, batchID string) (*responses.BatchScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("batchScheduleUsecase.OpenSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchIDKey, batchID),
	)

	catalog, err := uc.DayCatalogUsecase.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	persisted, err := uc.BatchScheduleRepository.FindByBatchID(ctx, batchID)
	if err != nil {
		uc.Log.Error("batchScheduleUsecase.OpenSession error fetching persisted schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchIDKey, batchID),
			zap.Error(err),
		)
		return nil, err
	}

	schedule := composer.NewWeeklySchedule()
	if persisted != nil {
		windows, unknown := catalog.Resolve(persisted.Days)
		if len(unknown) > 0 {
			uc.Log.Warn("batchScheduleUsecase.OpenSession skipped days missing from catalog",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Strings(constvars.LoggingDayIDKey, unknown),
			)
		}
		schedule = composer.LoadWeeklySchedule(windows)
	}

	session := &models.BatchScheduleSession{
		ID:               utils.GenerateSessionID(),
		BatchID:          batchID,
		Entries:          schedule.Entries(),
		ApplyUniformTime: schedule.ApplyUniformTime(),
		OpenedAt:         uc.Now(),
	}
	err = uc.SessionStore.SaveBatchSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("batchScheduleUsecase.OpenSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int(constvars.LoggingEntryCountKey, schedule.Len()),
	)
	return buildSessionResponse(session, schedule, nil), nil
}

func (uc *batchScheduleUsecase) GetSession(ctx context.Context, sessionID string) (*responses.BatchScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("batchScheduleUsecase.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	schedule := composer.RestoreWeeklySchedule(session.Entries, session.ApplyUniformTime)
	return buildSessionResponse(session, schedule, nil), nil
}

func (uc *batchScheduleUsecase) ToggleDay(ctx context.Context, sessionID, dayID string, request *requests.ToggleScheduleDay) (*responses.BatchScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("batchScheduleUsecase.ToggleDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDayIDKey, dayID),
	)

	catalog, err := uc.DayCatalogUsecase.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	day, ok := catalog.Lookup(dayID)
	if !ok {
		return nil, exceptions.ErrDayNotInCatalog(dayID)
	}

	confirmer := composer.StaticConfirmer(request.Confirmed)
	return uc.mutate(ctx, sessionID, confirmer, func(c *composer.ScheduleComposer) error {
		err := c.ToggleDay(day)
		if errors.Is(err, composer.ErrUserRejected) {
			return exceptions.ErrRemovalNotConfirmed(err)
		}
		return err
	})
}

func (uc *batchScheduleUsecase) SetApplyToAll(ctx context.Context, sessionID string, request *requests.ApplyToAll) (*responses.BatchScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	enable := request.Enable != nil && *request.Enable
	uc.Log.Info("batchScheduleUsecase.SetApplyToAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Bool(constvars.LoggingEnableKey, enable),
	)

	return uc.mutate(ctx, sessionID, nil, func(c *composer.ScheduleComposer) error {
		err := c.SetApplyToAll(enable)
		if errors.Is(err, composer.ErrInvalidAnchorState) {
			return exceptions.ErrInvalidAnchorState(err)
		}
		return err
	})
}

func (uc *batchScheduleUsecase) SetTime(ctx context.Context, sessionID string, index int, request *requests.SetScheduleTime) (*responses.BatchScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("batchScheduleUsecase.SetTime called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingIndexKey, index),
		zap.String(constvars.LoggingFieldKey, request.Field),
	)

	field := models.TimeField(request.Field)
	value, err := models.ParseTimeOfDay(request.Value)
	if err != nil || !field.IsValid() {
		return nil, exceptions.ErrInputValidation(err)
	}

	return uc.mutate(ctx, sessionID, nil, func(c *composer.ScheduleComposer) error {
		entry, ok := c.Schedule().Entry(index)
		if !ok {
			return exceptions.ErrEntryIndexOutOfRange(index)
		}
		if !entry.Editable {
			return exceptions.ErrEntryLocked(index)
		}
		c.SetTime(index, field, value)
		return nil
	})
}

// Submit validates the schedule and persists it. The session survives a failed
// save so the operator can resubmit.
func (uc *batchScheduleUsecase) Submit(ctx context.Context, sessionID string) (*responses.SavedSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("batchScheduleUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var response *responses.SavedSchedule
	err := uc.SessionStore.WithLock(ctx, sessionID, func() error {
		session, err := uc.loadSession(ctx, sessionID)
		if err != nil {
			return err
		}

		schedule := composer.RestoreWeeklySchedule(session.Entries, session.ApplyUniformTime)
		if !schedule.IsValid() {
			return exceptions.ErrScheduleInvalid(nil)
		}

		windows := schedule.Entries()
		savedAt := uc.Now()
		document := &models.BatchSchedule{
			BatchID: session.BatchID,
			Days:    models.PrepareForPersistence(windows, uuid.NewString),
		}
		document.SetCreatedAtUpdatedAt()

		err = uc.BatchScheduleRepository.Upsert(ctx, document)
		if err != nil {
			uc.Log.Error("batchScheduleUsecase.Submit error saving schedule",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBatchIDKey, session.BatchID),
				zap.Error(err),
			)
			return err
		}

		event := &models.ScheduleSavedEvent{
			Kind:      constvars.ScheduleKindBatch,
			BatchID:   session.BatchID,
			SessionID: session.ID,
			Days:      document.Days,
			SavedAt:   savedAt,
		}
		uc.announce(ctx, event)

		err = uc.SessionStore.DeleteBatchSession(ctx, sessionID)
		if err != nil {
			uc.Log.Warn("batchScheduleUsecase.Submit error closing session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}

		saved := event.ConvertIntoResponse(windows)
		response = &saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("batchScheduleUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchIDKey, response.BatchID),
		zap.Int(constvars.LoggingEntryCountKey, len(response.Days)),
	)
	return response, nil
}

func (uc *batchScheduleUsecase) CancelSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("batchScheduleUsecase.CancelSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return uc.SessionStore.WithLock(ctx, sessionID, func() error {
		if _, err := uc.loadSession(ctx, sessionID); err != nil {
			return err
		}
		return uc.SessionStore.DeleteBatchSession(ctx, sessionID)
	})
}

// announce publishes and archives a saved schedule. The schedule is already
// persisted, so failures are logged and not returned.
func (uc *batchScheduleUsecase) announce(ctx context.Context, event *models.ScheduleSavedEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.EventPublisher.PublishScheduleSaved(ctx, event); err != nil {
		uc.Log.Error("batchScheduleUsecase.announce error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchIDKey, event.BatchID),
			zap.Error(err),
		)
	}

	objectName, err := uc.ScheduleArchive.ArchiveSnapshot(ctx, event)
	if err != nil {
		uc.Log.Error("batchScheduleUsecase.announce error archiving snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchIDKey, event.BatchID),
			zap.Error(err),
		)
		return
	}

	utils.LogBusinessEvent(uc.Log, "batch_schedule_saved", requestID,
		zap.String(constvars.LoggingBatchIDKey, event.BatchID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
}

func (uc *batchScheduleUsecase) mutate(ctx context.Context, sessionID string, confirmer composer.Confirmer, mutation batchMutation) (*responses.BatchScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var response *responses.BatchScheduleSession
	err := uc.SessionStore.WithLock(ctx, sessionID, func() error {
		session, err := uc.loadSession(ctx, sessionID)
		if err != nil {
			return err
		}

		alerts := &composer.AlertRecorder{}
		schedule := composer.RestoreWeeklySchedule(session.Entries, session.ApplyUniformTime)
		err = mutation(composer.NewScheduleComposer(schedule, confirmer, alerts))
		if len(alerts.Messages()) > 0 {
			uc.Log.Info("batchScheduleUsecase.mutate operator alerted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Strings(constvars.LoggingAlertMessagesKey, alerts.Messages()),
			)
		}
		if err != nil {
			return err
		}

		session.Entries = schedule.Entries()
		session.ApplyUniformTime = schedule.ApplyUniformTime()
		err = uc.SessionStore.SaveBatchSession(ctx, session)
		if err != nil {
			return err
		}

		response = buildSessionResponse(session, schedule, alerts.Messages())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("batchScheduleUsecase.mutate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingEntryCountKey, len(response.Entries)),
	)
	return response, nil
}

func (uc *batchScheduleUsecase) loadSession(ctx context.Context, sessionID string) (*models.BatchScheduleSession, error) {
	session, err := uc.SessionStore.GetBatchSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrScheduleSessionNotFound(sessionID)
	}
	return session, nil
}

func buildSessionResponse(session *models.BatchScheduleSession, schedule *composer.WeeklySchedule, alerts []string) *responses.BatchScheduleSession {
	entries := schedule.Entries()
	response := &responses.BatchScheduleSession{
		SessionID:        session.ID,
		BatchID:          session.BatchID,
		ApplyUniformTime: schedule.ApplyUniformTime(),
		Entries:          make([]responses.TimeWindow, len(entries)),
		IsValid:          schedule.IsValid(),
		Alerts:           alerts,
	}
	for i, entry := range entries {
		response.Entries[i] = entry.ConvertIntoResponse()
	}
	return response
}
