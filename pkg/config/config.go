package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Upstream price provider
	Upstream UpstreamConfig

	// Caches
	Cache CacheConfig

	// Strategy thresholds (optional YAML override)
	StrategyFile string

	// Redis (optional shared throttle)
	Redis RedisConfig

	// Reference database (optional)
	Database DatabaseConfig

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string

	// Monitoring
	MetricsEnabled bool
	MetricsPath    string

	// Scheduler
	CacheReportSchedule string
}

// UpstreamConfig holds the daily price provider configuration
type UpstreamConfig struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64
	MaxRetries        int
	RetryDelay        time.Duration
	RequestTimeout    time.Duration

	// Batch fan-out
	BatchSize  int
	BatchPause time.Duration
}

// MinInterval returns the minimum spacing between two outbound requests
func (u UpstreamConfig) MinInterval() time.Duration {
	if u.RequestsPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / u.RequestsPerSecond)
}

// CacheConfig holds TTL and capacity per cache
type CacheConfig struct {
	PriceTTL        time.Duration
	PriceMaxEntries int
	PairsTTL        time.Duration
	PairsMaxEntries int
	CorrelationTTL  time.Duration
	CorrelationMax  int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// DatabaseConfig holds PostgreSQL configuration for reference data
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Enabled reports whether a reference database is configured
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Upstream: UpstreamConfig{
			BaseURL:           getEnv("UPSTREAM_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
			UserAgent:         getEnv("UPSTREAM_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
			RequestsPerSecond: getEnvAsFloat("UPSTREAM_REQUESTS_PER_SECOND", 5),
			MaxRetries:        getEnvAsInt("UPSTREAM_MAX_RETRIES", 3),
			RetryDelay:        getEnvAsDuration("UPSTREAM_RETRY_DELAY", "1s"),
			RequestTimeout:    getEnvAsDuration("UPSTREAM_REQUEST_TIMEOUT", "10s"),
			BatchSize:         getEnvAsInt("FETCH_BATCH_SIZE", 10),
			BatchPause:        getEnvAsDuration("FETCH_BATCH_PAUSE", "200ms"),
		},

		Cache: CacheConfig{
			PriceTTL:        getEnvAsDuration("CACHE_PRICE_TTL", "1h"),
			PriceMaxEntries: getEnvAsInt("CACHE_PRICE_MAX", 100),
			PairsTTL:        getEnvAsDuration("CACHE_PAIRS_TTL", "15m"),
			PairsMaxEntries: getEnvAsInt("CACHE_PAIRS_MAX", 10),
			CorrelationTTL:  getEnvAsDuration("CACHE_CORRELATION_TTL", "5m"),
			CorrelationMax:  getEnvAsInt("CACHE_CORRELATION_MAX", 10),
		},

		StrategyFile: getEnv("STRATEGY_FILE", ""),

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 5),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogFile:   getEnv("LOG_FILE", ""),

		// Monitoring
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		MetricsPath:    getEnv("METRICS_PATH", "/metrics"),

		CacheReportSchedule: getEnv("CACHE_REPORT_SCHEDULE", "0 */5 * * * *"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Upstream.RequestsPerSecond <= 0 {
		return fmt.Errorf("UPSTREAM_REQUESTS_PER_SECOND must be positive")
	}
	if c.Upstream.MaxRetries < 1 {
		return fmt.Errorf("UPSTREAM_MAX_RETRIES must be at least 1")
	}
	if c.Upstream.BatchSize < 1 {
		return fmt.Errorf("FETCH_BATCH_SIZE must be at least 1")
	}

	if c.Cache.PriceTTL <= 0 || c.Cache.PairsTTL <= 0 || c.Cache.CorrelationTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Cache.PriceMaxEntries < 1 || c.Cache.PairsMaxEntries < 1 || c.Cache.CorrelationMax < 1 {
		return fmt.Errorf("cache capacities must be at least 1")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env",         // Current directory
		"backend/.env", // From project root
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
