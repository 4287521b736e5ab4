package storage

import (
	"batch-schedule-service/internal/app/contracts"
	"batch-schedule-service/internal/app/models"
	"batch-schedule-service/internal/pkg/constvars"
	"batch-schedule-service/internal/pkg/exceptions"
	"batch-schedule-service/internal/pkg/utils"
	"bytes"
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectPutter is the part of *minio.Client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioArchive struct {
	MinioClient ObjectPutter
	BucketName  string
	Log         *zap.Logger
}

func NewMinioArchive(minioClient ObjectPutter, bucketName string, logger *zap.Logger) contracts.ScheduleArchive {
	return &minioArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// ArchiveSnapshot stores event as JSON and returns the object name.
func (m *minioArchive) ArchiveSnapshot(ctx context.Context, event *models.ScheduleSavedEvent) (string, error) {
	requestID := utils.GetRequestID(ctx)

	ownerID := event.BatchID
	if event.ModuleID != "" {
		ownerID = models.ModuleScheduleID(event.BatchID, event.ModuleID)
	}
	objectName := utils.GenerateSnapshotObjectName(event.Kind, ownerID, event.SessionID, event.SavedAt)

	m.Log.Info("minioArchive.ArchiveSnapshot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(body),
		int64(len(body)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		m.Log.Error("minioArchive.ArchiveSnapshot error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioArchive.ArchiveSnapshot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}
