package models

type Configuration struct {
	App       AppConfiguration       `mapstructure:"app"       validate:"required"`
	Database  DatabaseConfiguration  `mapstructure:"database"  validate:"required"`
	Cache     CacheConfiguration     `mapstructure:"cache"     validate:"required"`
	Telemetry TelemetryConfiguration `mapstructure:"telemetry"`
}

type AppConfiguration struct {
	JWTSecret             string   `mapstructure:"jwt_secret"              validate:"required"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"         validate:"required"`
	TrustedProxies        []string `mapstructure:"trusted_proxies"`
	LogLevel              string   `mapstructure:"log_level"               validate:"oneof=debug info warn error fatal panic"`
	Port                  int      `mapstructure:"port"                    validate:"gte=80,lte=65535"`
	RateLimitPerMinute    int      `mapstructure:"rate_limit_per_minute"   validate:"gte=1"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gte=1,lte=300"`
}

type DatabaseConfiguration struct {
	Type        string `mapstructure:"type"         validate:"required,oneof=postgres sqlite"`
	Host        string `mapstructure:"host"         validate:"required_if=Type postgres"`
	Port        int32  `mapstructure:"port"         validate:"gte=80,lte=65535"`
	User        string `mapstructure:"user"         validate:"required_if=Type postgres"`
	Password    string `mapstructure:"password"     validate:"required_if=Type postgres"`
	Name        string `mapstructure:"name"         validate:"required_if=Type postgres"`
	SSLMode     string `mapstructure:"sslmode"`
	Path        string `mapstructure:"path"         validate:"required_if=Type sqlite"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type CacheConfiguration struct {
	Type   string                    `mapstructure:"type"   validate:"required,oneof=none redis valkey"`
	Redis  *RedisCacheConfiguration  `mapstructure:"redis"  validate:"required_if=Type redis"`
	Valkey *ValkeyCacheConfiguration `mapstructure:"valkey" validate:"required_if=Type valkey"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ValkeyCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type TelemetryConfiguration struct {
	Tracing   TracingConfiguration   `mapstructure:"tracing"`
	Profiling ProfilingConfiguration `mapstructure:"profiling"`
}

// TracingConfiguration enables OTLP/HTTP span export.
// Endpoint is host:port without scheme, e.g. "otel-collector:4318".
type TracingConfiguration struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"     validate:"required_if=Enabled true"`
	Insecure    bool   `mapstructure:"insecure"`
	ServiceName string `mapstructure:"service_name"`
}

type ProfilingConfiguration struct {
	Enabled       bool   `mapstructure:"enabled"`
	ServerAddress string `mapstructure:"server_address" validate:"required_if=Enabled true"`
}
