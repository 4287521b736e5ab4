package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
	LoggingLockExpiryKey    = "lock_expiration"
	LoggingLockStoredKey    = "lock_stored_value"
	LoggingLockExpectedKey  = "lock_expected_value"
	LoggingBatchIDKey       = "batch_id"
	LoggingModuleIDKey      = "module_id"
	LoggingSessionIDKey     = "session_id"
	LoggingDayIDKey         = "day_id"
	LoggingIndexKey         = "index"
	LoggingFieldKey         = "field"
	LoggingEnableKey        = "enable"
	LoggingEntryCountKey    = "entry_count"
	LoggingMarkedCountKey   = "marked_count"
	LoggingDayCountKey      = "day_count"
	LoggingQueueKey         = "queue"
	LoggingBucketKey        = "bucket"
	LoggingObjectNameKey    = "object_name"
	LoggingAlertMessagesKey = "alert_messages"
)
