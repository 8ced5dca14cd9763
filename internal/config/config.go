package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Search    SearchConfig    `yaml:"search"`
	Listing   ListingConfig   `yaml:"listing"`
	Log       LogConfig       `yaml:"log"`
	Fluent    FluentConfig    `yaml:"fluent"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Events    EventsConfig    `yaml:"events"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"saudaghar-api"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"5s"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"saudaghar"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"12"`
}

// SearchConfig holds the result caps of the listings search.
type SearchConfig struct {
	// RecentLimit caps the unfiltered "recent listings" view.
	RecentLimit int `yaml:"recent_limit"    env:"SEARCH_RECENT_LIMIT"    env-default:"12"`
	// ResultLimit caps every filtered result set.
	ResultLimit int `yaml:"result_limit"    env:"SEARCH_RESULT_LIMIT"    env-default:"50"`
	// CandidateLimit is the location-filtered window fetched before text refinement.
	CandidateLimit int `yaml:"candidate_limit" env:"SEARCH_CANDIDATE_LIMIT" env-default:"200"`
}

// ListingConfig holds listing service settings.
type ListingConfig struct {
	FeaturedLimit int `yaml:"featured_limit" env:"LISTING_FEATURED_LIMIT" env-default:"6"`
	MaxImages     int `yaml:"max_images"     env:"LISTING_MAX_IMAGES"     env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// FluentConfig configures the optional Fluent Bit log sink.
type FluentConfig struct {
	Enabled bool   `yaml:"enabled" env:"FLUENT_ENABLED" env-default:"false"`
	Host    string `yaml:"host"    env:"FLUENT_HOST"    env-default:"localhost"`
	Port    int    `yaml:"port"    env:"FLUENT_PORT"    env-default:"24224"`
	Tag     string `yaml:"tag"     env:"FLUENT_TAG"     env-default:"saudaghar.api"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"120"`
	AuthPerMin      int           `yaml:"auth_per_min"     env:"RATE_LIMIT_AUTH_PER_MIN"     env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// EventsConfig configures the RabbitMQ domain event publisher.
type EventsConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"EVENTS_ENABLED"  env-default:"false"`
	URL      string `yaml:"url"      env:"EVENTS_URL"`
	Exchange string `yaml:"exchange" env:"EVENTS_EXCHANGE" env-default:"saudaghar.events"`
}

// SchedulerConfig holds in-process periodic jobs. Schedules use robfig/cron
// syntax, including descriptors such as "@every 1h".
type SchedulerConfig struct {
	Enabled      bool   `yaml:"enabled"       env:"SCHEDULER_ENABLED"       env-default:"true"`
	TokenCleanup string `yaml:"token_cleanup" env:"SCHEDULER_TOKEN_CLEANUP" env-default:"@every 1h"`
}
