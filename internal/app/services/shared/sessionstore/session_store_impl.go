package sessionstore

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type scheduleSessionStore struct {
	RedisRepository contracts.RedisRepository
	LockerService   contracts.LockerService
	SessionTTL      time.Duration
	LockTTL         time.Duration
	Log             *zap.Logger
}

// NewScheduleSessionStore keeps sessions for sessionTTL after their last write.
func NewScheduleSessionStore(
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	sessionTTL time.Duration,
	lockTTL time.Duration,
	logger *zap.Logger,
) contracts.ScheduleSessionStore {
	return &scheduleSessionStore{
		RedisRepository: redisRepository,
		LockerService:   lockerService,
		SessionTTL:      sessionTTL,
		LockTTL:         lockTTL,
		Log:             logger,
	}
}

func batchSessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyBatchScheduleSessionFormat, sessionID)
}

func moduleSessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyModuleScheduleSessionFormat, sessionID)
}

func lockKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyScheduleSessionLockFormat, sessionID)
}

func (s *scheduleSessionStore) SaveBatchSession(ctx context.Context, session *models.BatchScheduleSession) error {
	return s.save(ctx, "SaveBatchSession", batchSessionKey(session.ID), session)
}

func (s *scheduleSessionStore) GetBatchSession(ctx context.Context, sessionID string) (*models.BatchScheduleSession, error) {
	session := new(models.BatchScheduleSession)
	found, err := s.load(ctx, "GetBatchSession", batchSessionKey(sessionID), session)
	if err != nil || !found {
		return nil, err
	}
	return session, nil
}

func (s *scheduleSessionStore) DeleteBatchSession(ctx context.Context, sessionID string) error {
	return s.delete(ctx, "DeleteBatchSession", batchSessionKey(sessionID))
}

func (s *scheduleSessionStore) SaveModuleSession(ctx context.Context, session *models.ModuleScheduleSession) error {
	return s.save(ctx, "SaveModuleSession", moduleSessionKey(session.ID), session)
}

func (s *scheduleSessionStore) GetModuleSession(ctx context.Context, sessionID string) (*models.ModuleScheduleSession, error) {
	session := new(models.ModuleScheduleSession)
	found, err := s.load(ctx, "GetModuleSession", moduleSessionKey(sessionID), session)
	if err != nil || !found {
		return nil, err
	}
	return session, nil
}

func (s *scheduleSessionStore) DeleteModuleSession(ctx context.Context, sessionID string) error {
	return s.delete(ctx, "DeleteModuleSession", moduleSessionKey(sessionID))
}

func (s *scheduleSessionStore) WithLock(ctx context.Context, sessionID string, fn func() error) error {
	requestID := utils.GetRequestID(ctx)
	key := lockKey(sessionID)

	acquired, lockValue, err := s.LockerService.TryLock(ctx, key, s.LockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		s.Log.Warn("scheduleSessionStore.WithLock session is busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return exceptions.ErrScheduleSessionBusy(nil)
	}

	defer func() {
		// an unreleased lock expires after LockTTL
		if unlockErr := s.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue); unlockErr != nil {
			s.Log.Error("scheduleSessionStore.WithLock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(unlockErr),
			)
		}
	}()

	return fn()
}

func (s *scheduleSessionStore) save(ctx context.Context, operation, key string, value interface{}) error {
	requestID := utils.GetRequestID(ctx)
	err := s.RedisRepository.Set(ctx, key, value, s.SessionTTL)
	if err != nil {
		s.Log.Error("scheduleSessionStore."+operation+" error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *scheduleSessionStore) load(ctx context.Context, operation, key string, dest interface{}) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	found, err := s.RedisRepository.GetJSON(ctx, key, dest)
	if err != nil {
		s.Log.Error("scheduleSessionStore."+operation+" error loading session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, err
	}
	return found, nil
}

func (s *scheduleSessionStore) delete(ctx context.Context, operation, key string) error {
	requestID := utils.GetRequestID(ctx)
	err := s.RedisRepository.Delete(ctx, key)
	if err != nil {
		s.Log.Error("scheduleSessionStore."+operation+" error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}
