package moduleschedules

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

type moduleScheduleUsecase struct {
	ModuleScheduleRepository contracts.ModuleScheduleRepository
	DayCatalogUsecase        contracts.DayCatalogUsecase
	SessionStore             contracts.ScheduleSessionStore
	EventPublisher           contracts.ScheduleEventPublisher
	ScheduleArchive          contracts.ScheduleArchive
	Log                      *zap.Logger
	Now                      func() time.Time
}

func NewModuleScheduleUsecase(
	moduleScheduleRepository contracts.ModuleScheduleRepository,
	dayCatalogUsecase contracts.DayCatalogUsecase,
	sessionStore contracts.ScheduleSessionStore,
	eventPublisher contracts.ScheduleEventPublisher,
	scheduleArchive contracts.ScheduleArchive,
	logger *zap.Logger,
) contracts.ModuleScheduleUsecase {
	return &moduleScheduleUsecase{
		ModuleScheduleRepository: moduleScheduleRepository,
		DayCatalogUsecase:        dayCatalogUsecase,
		SessionStore:             sessionStore,
		EventPublisher:           eventPublisher,
		ScheduleArchive:          scheduleArchive,
		Log:                      logger,
		Now:                      time.Now,
	}
}

type overlayMutation func(o *composer.ModuleScheduleOverlay) error

func (uc *moduleScheduleUsecase) OpenSession(ctx context.Context, batchID, moduleID string) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.OpenSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchIDKey, batchID),
		zap.String(constvars.LoggingModuleIDKey, moduleID),
	)

	catalog, err := uc.DayCatalogUsecase.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	persisted, err := uc.ModuleScheduleRepository.FindByModule(ctx, batchID, moduleID)
	if err != nil {
		uc.Log.Error("moduleScheduleUsecase.OpenSession error fetching persisted overlay",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBatchIDKey, batchID),
			zap.String(constvars.LoggingModuleIDKey, moduleID),
			zap.Error(err),
		)
		return nil, err
	}

	overlay := composer.NewModuleScheduleOverlay(catalog, nil)
	if persisted != nil {
		windows, unknown := catalog.Resolve(persisted.Days)
		if len(unknown) > 0 {
			uc.Log.Warn("moduleScheduleUsecase.OpenSession skipped days missing from catalog",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Strings(constvars.LoggingDayIDKey, unknown),
			)
		}
		overlay.Patch(windows)
	}

	session := &models.ModuleScheduleSession{
		ID:               utils.GenerateSessionID(),
		BatchID:          batchID,
		ModuleID:         moduleID,
		Slots:            overlay.Snapshot(),
		ApplyUniformTime: overlay.ApplyUniformTime(),
		OpenedAt:         uc.Now(),
	}
	err = uc.SessionStore.SaveModuleSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("moduleScheduleUsecase.OpenSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int(constvars.LoggingMarkedCountKey, overlay.MarkedCount()),
	)
	return buildSessionResponse(session, overlay, nil), nil
}

func (uc *moduleScheduleUsecase) GetSession(ctx context.Context, sessionID string) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	catalog, err := uc.DayCatalogUsecase.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	overlay := composer.RestoreModuleScheduleOverlay(catalog, session.Slots, session.ApplyUniformTime, nil)
	return buildSessionResponse(session, overlay, nil), nil
}

func (uc *moduleScheduleUsecase) ToggleSlot(ctx context.Context, sessionID string, index int) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.ToggleSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingIndexKey, index),
	)

	return uc.mutate(ctx, sessionID, func(o *composer.ModuleScheduleOverlay) error {
		if _, ok := o.Slot(index); !ok {
			return exceptions.ErrEntryIndexOutOfRange(index)
		}
		o.OnSlotToggle(index)
		return nil
	})
}

// DeleteSlotTiming unmarks a slot. Deleting an unmarked slot changes nothing.
func (uc *moduleScheduleUsecase) DeleteSlotTiming(ctx context.Context, sessionID string, index int) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.DeleteSlotTiming called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingIndexKey, index),
	)

	return uc.mutate(ctx, sessionID, func(o *composer.ModuleScheduleOverlay) error {
		if _, ok := o.Slot(index); !ok {
			return exceptions.ErrEntryIndexOutOfRange(index)
		}
		o.DeleteSlotTiming(index)
		return nil
	})
}

func (uc *moduleScheduleUsecase) SetApplyToAll(ctx context.Context, sessionID string, request *requests.ApplyToAll) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	enable := request.Enable != nil && *request.Enable
	uc.Log.Info("moduleScheduleUsecase.SetApplyToAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Bool(constvars.LoggingEnableKey, enable),
	)

	return uc.mutate(ctx, sessionID, func(o *composer.ModuleScheduleOverlay) error {
		err := o.SetApplyToAll(enable)
		if errors.Is(err, composer.ErrInvalidAnchorState) {
			return exceptions.ErrInvalidAnchorState(err)
		}
		return err
	})
}

func (uc *moduleScheduleUsecase) SetSlotTime(ctx context.Context, sessionID string, index int, request *requests.SetScheduleTime) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.SetSlotTime called",
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

	return uc.mutate(ctx, sessionID, func(o *composer.ModuleScheduleOverlay) error {
		slot, ok := o.Slot(index)
		if !ok {
			return exceptions.ErrEntryIndexOutOfRange(index)
		}
		window, marked := slot.Window()
		if !marked {
			return exceptions.ErrModuleSlotNotMarked(index)
		}
		if !window.Editable {
			return exceptions.ErrEntryLocked(index)
		}
		o.SetSlotTime(index, field, value)
		return nil
	})
}

// Submit persists the marked slots in catalog order. Every marked slot needs a
// complete, non-degenerate window.
func (uc *moduleScheduleUsecase) Submit(ctx context.Context, sessionID string) (*responses.SavedSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	catalog, err := uc.DayCatalogUsecase.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	var response *responses.SavedSchedule
	err = uc.SessionStore.WithLock(ctx, sessionID, func() error {
		session, err := uc.loadSession(ctx, sessionID)
		if err != nil {
			return err
		}

		overlay := composer.RestoreModuleScheduleOverlay(catalog, session.Slots, session.ApplyUniformTime, nil)
		if !overlay.IsValid() {
			return exceptions.ErrModuleScheduleIncomplete(nil)
		}

		windows := overlay.MarkedWindows()
		savedAt := uc.Now()
		document := &models.ModuleSchedule{
			ID:       models.ModuleScheduleID(session.BatchID, session.ModuleID),
			BatchID:  session.BatchID,
			ModuleID: session.ModuleID,
			Days:     models.PrepareForPersistence(windows, uuid.NewString),
		}
		document.SetCreatedAtUpdatedAt()

		err = uc.ModuleScheduleRepository.Upsert(ctx, document)
		if err != nil {
			uc.Log.Error("moduleScheduleUsecase.Submit error saving overlay",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBatchIDKey, session.BatchID),
				zap.String(constvars.LoggingModuleIDKey, session.ModuleID),
				zap.Error(err),
			)
			return err
		}

		event := &models.ScheduleSavedEvent{
			Kind:      constvars.ScheduleKindModule,
			BatchID:   session.BatchID,
			ModuleID:  session.ModuleID,
			SessionID: session.ID,
			Days:      document.Days,
			SavedAt:   savedAt,
		}
		uc.announce(ctx, event)

		err = uc.SessionStore.DeleteModuleSession(ctx, sessionID)
		if err != nil {
			uc.Log.Warn("moduleScheduleUsecase.Submit error closing session",
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

	uc.Log.Info("moduleScheduleUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchIDKey, response.BatchID),
		zap.String(constvars.LoggingModuleIDKey, response.ModuleID),
		zap.Int(constvars.LoggingMarkedCountKey, len(response.Days)),
	)
	return response, nil
}

func (uc *moduleScheduleUsecase) CancelSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("moduleScheduleUsecase.CancelSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return uc.SessionStore.WithLock(ctx, sessionID, func() error {
		if _, err := uc.loadSession(ctx, sessionID); err != nil {
			return err
		}
		return uc.SessionStore.DeleteModuleSession(ctx, sessionID)
	})
}

func (uc *moduleScheduleUsecase) announce(ctx context.Context, event *models.ScheduleSavedEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.EventPublisher.PublishScheduleSaved(ctx, event); err != nil {
		uc.Log.Error("moduleScheduleUsecase.announce error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingModuleIDKey, event.ModuleID),
			zap.Error(err),
		)
	}

	objectName, err := uc.ScheduleArchive.ArchiveSnapshot(ctx, event)
	if err != nil {
		uc.Log.Error("moduleScheduleUsecase.announce error archiving snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingModuleIDKey, event.ModuleID),
			zap.Error(err),
		)
		return
	}

	utils.LogBusinessEvent(uc.Log, "module_schedule_saved", requestID,
		zap.String(constvars.LoggingBatchIDKey, event.BatchID),
		zap.String(constvars.LoggingModuleIDKey, event.ModuleID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
}

func (uc *moduleScheduleUsecase) mutate(ctx context.Context, sessionID string, mutation overlayMutation) (*responses.ModuleScheduleSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	catalog, err := uc.DayCatalogUsecase.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	var response *responses.ModuleScheduleSession
	err = uc.SessionStore.WithLock(ctx, sessionID, func() error {
		session, err := uc.loadSession(ctx, sessionID)
		if err != nil {
			return err
		}

		alerts := &composer.AlertRecorder{}
		overlay := composer.RestoreModuleScheduleOverlay(catalog, session.Slots, session.ApplyUniformTime, alerts)
		err = mutation(overlay)
		if len(alerts.Messages()) > 0 {
			uc.Log.Info("moduleScheduleUsecase.mutate operator alerted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Strings(constvars.LoggingAlertMessagesKey, alerts.Messages()),
			)
		}
		if err != nil {
			return err
		}

		session.Slots = overlay.Snapshot()
		session.ApplyUniformTime = overlay.ApplyUniformTime()
		err = uc.SessionStore.SaveModuleSession(ctx, session)
		if err != nil {
			return err
		}

		response = buildSessionResponse(session, overlay, alerts.Messages())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("moduleScheduleUsecase.mutate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingMarkedCountKey, response.MarkedCount),
	)
	return response, nil
}

func (uc *moduleScheduleUsecase) loadSession(ctx context.Context, sessionID string) (*models.ModuleScheduleSession, error) {
	session, err := uc.SessionStore.GetModuleSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrScheduleSessionNotFound(sessionID)
	}
	return session, nil
}

func buildSessionResponse(session *models.ModuleScheduleSession, overlay *composer.ModuleScheduleOverlay, alerts []string) *responses.ModuleScheduleSession {
	slots := overlay.Slots()
	response := &responses.ModuleScheduleSession{
		SessionID:        session.ID,
		BatchID:          session.BatchID,
		ModuleID:         session.ModuleID,
		ApplyUniformTime: overlay.ApplyUniformTime(),
		MarkedCount:      overlay.MarkedCount(),
		Slots:            make([]responses.OverlaySlot, len(slots)),
		IsValid:          overlay.IsValid(),
		Alerts:           alerts,
	}
	for i, slot := range slots {
		response.Slots[i] = responses.OverlaySlot{
			Index:    i,
			Day:      slot.Day().ConvertIntoResponse(),
			IsMarked: slot.IsMarked(),
		}
		if window, ok := slot.Window(); ok {
			converted := window.ConvertIntoResponse()
			response.Slots[i].Window = &converted
		}
	}
	return response
}
