package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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
	if stored, ok := args.Get(0).(string); ok {
		*(dest.(*string)) = stored
		return true, args.Error(1)
	}
	return false, args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "schedule:session:lock:abc"

	t.Run("TryLock acquires with a fresh value", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.AnythingOfType("string"), 5*time.Second).Return(true, nil)
		service := NewLockService(repo, zap.NewNop())

		acquired, value, err := service.TryLock(ctx, key, 5*time.Second)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value, "lock value should be returned")
		repo.AssertExpectations(t)
	})

	t.Run("TryLock reports a held lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.Anything, time.Second).Return(false, nil)
		service := NewLockService(repo, zap.NewNop())

		acquired, value, err := service.TryLock(ctx, key, time.Second)

		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("TryLock surfaces redis errors", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.Anything, time.Second).Return(false, errors.New("connection refused"))
		service := NewLockService(repo, zap.NewNop())

		_, _, err := service.TryLock(ctx, key, time.Second)

		assert.Error(t, err)
	})

	t.Run("Unlock deletes an owned lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("GetJSON", ctx, key, mock.Anything).Return("owner-1", nil)
		repo.On("Delete", ctx, key).Return(nil)
		service := NewLockService(repo, zap.NewNop())

		err := service.Unlock(ctx, key, "owner-1")

		assert.NoError(t, err)
		repo.AssertCalled(t, "Delete", ctx, key)
	})

	t.Run("Unlock refuses a foreign lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("GetJSON", ctx, key, mock.Anything).Return("owner-2", nil)
		service := NewLockService(repo, zap.NewNop())

		err := service.Unlock(ctx, key, "owner-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unlock on expired lock is a no-op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("GetJSON", ctx, key, mock.Anything).Return(nil, nil)
		service := NewLockService(repo, zap.NewNop())

		assert.NoError(t, service.Unlock(ctx, key, "owner-1"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
