package sessionstore

import (
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	if session, ok := args.Get(0).(*models.BatchScheduleSession); ok {
		*(dest.(*models.BatchScheduleSession)) = *session
		return true, args.Error(1)
	}
	return false, args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func newTestStore(repo *MockRedisRepository, locker *MockLockerService) *scheduleSessionStore {
	return NewScheduleSessionStore(repo, locker, 30*time.Minute, 10*time.Second, zap.NewNop()).(*scheduleSessionStore)
}

func TestScheduleSessionStore_BatchSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("Save uses the session ttl", func(t *testing.T) {
		repo := new(MockRedisRepository)
		session := &models.BatchScheduleSession{ID: "s-1", BatchID: "b-1"}
		repo.On("Set", ctx, "schedule:session:batch:s-1", session, 30*time.Minute).Return(nil)
		store := newTestStore(repo, new(MockLockerService))

		assert.NoError(t, store.SaveBatchSession(ctx, session))
		repo.AssertExpectations(t)
	})

	t.Run("Get returns the stored session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		stored := &models.BatchScheduleSession{ID: "s-1", BatchID: "b-1", ApplyUniformTime: true}
		repo.On("GetJSON", ctx, "schedule:session:batch:s-1", mock.Anything).Return(stored, nil)
		store := newTestStore(repo, new(MockLockerService))

		session, err := store.GetBatchSession(ctx, "s-1")

		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "b-1", session.BatchID)
		assert.True(t, session.ApplyUniformTime)
	})

	t.Run("Get returns nil for an expired session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("GetJSON", ctx, "schedule:session:batch:gone", mock.Anything).Return(nil, nil)
		store := newTestStore(repo, new(MockLockerService))

		session, err := store.GetBatchSession(ctx, "gone")

		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Delete uses the module key for module sessions", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Delete", ctx, "schedule:session:module:m-1").Return(nil)
		store := newTestStore(repo, new(MockLockerService))

		assert.NoError(t, store.DeleteModuleSession(ctx, "m-1"))
		repo.AssertExpectations(t)
	})
}

func TestScheduleSessionStore_WithLock(t *testing.T) {
	ctx := context.Background()
	key := "schedule:session:lock:s-1"

	t.Run("Runs fn and releases the lock", func(t *testing.T) {
		locker := new(MockLockerService)
		locker.On("TryLock", ctx, key, 10*time.Second).Return(true, "owner", nil)
		locker.On("Unlock", mock.Anything, key, "owner").Return(nil)
		store := newTestStore(new(MockRedisRepository), locker)

		called := false
		err := store.WithLock(ctx, "s-1", func() error {
			called = true
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
		locker.AssertExpectations(t)
	})

	t.Run("Busy session returns conflict", func(t *testing.T) {
		locker := new(MockLockerService)
		locker.On("TryLock", ctx, key, 10*time.Second).Return(false, "", nil)
		store := newTestStore(new(MockRedisRepository), locker)

		err := store.WithLock(ctx, "s-1", func() error {
			t.Fatal("fn should not run without the lock")
			return nil
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Returns fn error and still unlocks", func(t *testing.T) {
		locker := new(MockLockerService)
		locker.On("TryLock", ctx, key, 10*time.Second).Return(true, "owner", nil)
		locker.On("Unlock", mock.Anything, key, "owner").Return(errors.New("redis down"))
		store := newTestStore(new(MockRedisRepository), locker)
		fnErr := errors.New("boom")

		err := store.WithLock(ctx, "s-1", func() error { return fnErr })

		assert.ErrorIs(t, err, fnErr)
		locker.AssertCalled(t, "Unlock", mock.Anything, key, "owner")
	})
}
