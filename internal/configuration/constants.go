package configuration

const AppName = "analytics-api"

const (
	CacheAppRateLimitKey = "analytics:ratelimit:%s"
	RateLimitWindow      = 60
)

const (
	DatabaseTypePostgres = "postgres"
	DatabaseTypeSQLite   = "sqlite"
)

const (
	CacheTypeNone   = "none"
	CacheTypeRedis  = "redis"
	CacheTypeValkey = "valkey"
)

const (
	GrowthDefaultRangeDays = 30
	// GrowthMaxDailyRangeDays bounds daily series, which hold one point per day.
	GrowthMaxDailyRangeDays = 3660
)

var ArrayConfigFields = []string{
	"app.allowed_origins",
	"app.trusted_proxies",
	"cache.redis.hosts",
	"cache.valkey.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
