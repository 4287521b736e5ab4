package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Schedule AppSchedule `mapstructure:"schedule"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Minio    AppMinio    `mapstructure:"minio"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

// AppSchedule controls the lifetime of edit sessions kept in redis.
type AppSchedule struct {
	SessionTTLInMinutes  int    `mapstructure:"session_ttl_in_minutes"`
	SessionLockInSeconds int    `mapstructure:"session_lock_in_seconds"`
	RedisKeyPrefix       string `mapstructure:"redis_key_prefix"`
}

type AppRabbitMQ struct {
	ScheduleSavedQueue string `mapstructure:"schedule_saved_queue"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
}
