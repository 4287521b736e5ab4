package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"min":         "must be at least %s",
	"max":         "maximum at %s",
	"oneof":       "must be one of %s",
	"time_of_day": "must be a time in HH:mm or HH:mm:ss format",
	"time_field":  "must be either fromTime or toTime",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientScheduleSessionNotFound       = "schedule session not found or already expired"
	ErrClientScheduleSessionBusy           = "schedule session is being modified, please retry"
	ErrClientDayNotFound                   = "day is not part of the day catalog"
	ErrClientEntryIndexOutOfRange          = "schedule entry does not exist"
	ErrClientEntryLocked                   = "this time is applied from the first day and cannot be edited"
	ErrClientRemovalNotConfirmed           = "removing a day requires confirmation"
	ErrClientInvalidAnchorState            = "please fill a valid time for the first day before applying it to all days"
	ErrClientScheduleInvalid               = "from and to time cannot be the same"
	ErrClientModuleScheduleIncomplete      = "from and to time are required for every selected day"
	ErrClientModuleSlotNotMarked           = "select the day before setting its time"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRequestBodyTooLarge           = "request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevURLParamValidation = "url param '%s' is invalid"

	// Database messages
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"

	// Redis messages
	ErrDevRedisGetNoData   = "no data found in redis for key %s"
	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data into redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevRedisLockNotHeld = "redis lock is held by another request"

	// Messaging and storage
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevMinioCreateObject      = "failed to create object in bucket %s"

	// Schedule messages
	ErrDevScheduleSessionNotFound  = "schedule session %s not found"
	ErrDevDayCatalogInvalid        = "day catalog is invalid"
	ErrDevDayNotInCatalog          = "day %s is not in the day catalog"
	ErrDevEntryIndexOutOfRange     = "entry index %d is out of range"
	ErrDevEntryLocked              = "entry %d is locked by uniform apply"
	ErrDevRemovalNotConfirmed      = "day removal declined by operator"
	ErrDevInvalidAnchorState       = "anchor window is missing or degenerate"
	ErrDevScheduleInvalid          = "schedule contains degenerate time window"
	ErrDevModuleScheduleIncomplete = "module schedule has marked slot without complete window"
	ErrDevModuleSlotNotMarked      = "slot %d is not marked"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerProcess            = "failed to process the request"
	ErrDevServerPanic              = "recovered from panic"
	ErrDevTooManyRequests          = "rate limit exceeded"
	ErrDevRequestBodyTooLarge      = "request body exceeds %d bytes"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
