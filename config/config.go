package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	CatalogCSVPath string
	StoreDriver    string // csv, postgres or sqlite

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SQLitePath string

	HTTPAddr            string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
	CORSOrigins         []string

	BrandName       string
	ImageBaseURL    string
	PriceChartLimit int

	MaxConcurrency int
	MaxRetries     int

	ExportDir string
	ChromeBin string

	LogLevel  string
	LogFormat string
}

// Load reads the .env file (if any) and returns a populated Config struct.
// Extra env files are loaded first and take precedence over .env.
func Load(envFiles ...string) *Config {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("[config] Could not load env file %s: %v", f, err)
		}
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] .env not loaded: %v", err)
	}

	return &Config{
		CatalogCSVPath: getEnv("CATALOG_CSV_PATH", "./camponesa.csv"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", "csv")),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "pricing"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "pricing123"),
		PostgresDB:       getEnv("POSTGRES_DB", "pricing_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SQLitePath: getEnv("SQLITE_PATH", "./output/catalog.sqlite"),

		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		HTTPReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		HTTPWriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		HTTPShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigins:         getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		BrandName:       getEnv("BRAND_NAME", "camponesa"),
		ImageBaseURL:    getEnv("IMAGE_BASE_URL", "https://static.ifood-static.com.br/image/upload/t_low/pratos/"),
		PriceChartLimit: getEnvInt("PRICE_CHART_LIMIT", 150),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 4),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),

		ExportDir: getEnv("EXPORT_DIR", "./output"),
		ChromeBin: getEnv("CHROME_BIN", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
