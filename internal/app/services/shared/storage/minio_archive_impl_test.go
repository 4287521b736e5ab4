package storage

import (
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockObjectPutter struct {
	mock.Mock
}

func (m *MockObjectPutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func TestMinioArchive_ArchiveSnapshot(t *testing.T) {
	savedAt := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

	t.Run("Module snapshots are keyed by batch and module", func(t *testing.T) {
		client := new(MockObjectPutter)
		client.On("PutObject", mock.Anything, "schedule-archive", "module/b-1:m-1/20240501_083000_s-1.json",
			mock.Anything, mock.AnythingOfType("int64"), minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON}).
			Return(minio.UploadInfo{}, nil)
		archive := NewMinioArchive(client, "schedule-archive", zap.NewNop())

		objectName, err := archive.ArchiveSnapshot(context.Background(), &models.ScheduleSavedEvent{
			Kind:      constvars.ScheduleKindModule,
			BatchID:   "b-1",
			ModuleID:  "m-1",
			SessionID: "s-1",
			SavedAt:   savedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, "module/b-1:m-1/20240501_083000_s-1.json", objectName)
		client.AssertExpectations(t)
	})

	t.Run("Put failures are wrapped", func(t *testing.T) {
		client := new(MockObjectPutter)
		client.On("PutObject", mock.Anything, "schedule-archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("bucket missing"))
		archive := NewMinioArchive(client, "schedule-archive", zap.NewNop())

		_, err := archive.ArchiveSnapshot(context.Background(), &models.ScheduleSavedEvent{
			Kind:    constvars.ScheduleKindBatch,
			BatchID: "b-1",
			SavedAt: savedAt,
		})

		assert.Error(t, err)
	})
}
