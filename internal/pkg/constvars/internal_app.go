package constvars

type ContextKey string

const (
	ResourceDays                  = "days"
	ResourceBatches               = "batches"
	ResourceScheduleSessions      = "schedule-sessions"
	ResourceModuleScheduleSession = "module-schedule-sessions"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "BTCH_SCHD_"
)

const (
	MongoCollectionWeekDays        = "week_days"
	MongoCollectionBatchSchedules  = "batch_schedules"
	MongoCollectionModuleSchedules = "module_schedules"
)

const (
	RedisKeyBatchScheduleSessionFormat  = "schedule:session:batch:%s"
	RedisKeyModuleScheduleSessionFormat = "schedule:session:module:%s"
	RedisKeyScheduleSessionLockFormat   = "schedule:session:lock:%s"
)

const (
	ScheduleSnapshotObjectFormat = "%s/%s/%s.json"
	ScheduleKindBatch            = "batch"
	ScheduleKindModule           = "module"
)

const (
	URLParamBatchID   = "batchID"
	URLParamModuleID  = "moduleID"
	URLParamSessionID = "sessionID"
	URLParamDayID     = "dayID"
	URLParamIndex     = "index"
)
