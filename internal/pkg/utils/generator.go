package utils

import (
	"batch-schedule-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateSnapshotObjectName builds "<kind>/<owner>/<timestamp>_<session>.json".
func GenerateSnapshotObjectName(kind, ownerID, sessionID string, savedAt time.Time) string {
	name := fmt.Sprintf("%s_%s", savedAt.UTC().Format("20060102_150405"), sessionID)
	return fmt.Sprintf(constvars.ScheduleSnapshotObjectFormat, kind, ownerID, name)
}
