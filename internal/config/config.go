package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret string
	Issuer    string
	TokenTTL  time.Duration

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	ServerPort   string
	IsProduction bool
	CorsOrigins  []string

	ReservedAdminUsername = "admin"
	ReservedAdminPassword string

	RedisURL        string
	NoticeTTL       time.Duration
	LoginRateLimit  int
	LoginRateWindow time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	SeedFile     string
	OtelEndpoint string
	ServiceName  string
	LogLevel     string

	AuditRetentionDays       = 30
	UsersPageSize            = 10
	MaxUploadBytes     int64 = 5 << 20
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "oasis")
	TokenTTL = getEnvDuration("TOKEN_TTL", 24*time.Hour)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "oasis")

	ServerPort = getEnv("SERVER_PORT", "8080")
	IsProduction, _ = strconv.ParseBool(getEnv("IS_PRODUCTION", "false"))
	CorsOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000"))

	ReservedAdminUsername = getEnv("RESERVED_ADMIN_USERNAME", "admin")
	ReservedAdminPassword = getEnv("RESERVED_ADMIN_PASSWORD", "")

	RedisURL = getEnv("REDIS_URL", "")
	NoticeTTL = getEnvDuration("NOTICE_TTL", 10*time.Minute)
	LoginRateLimit, _ = strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "10"))
	LoginRateWindow = getEnvDuration("LOGIN_RATE_WINDOW", time.Minute)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "oasis-media")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	SeedFile = getEnv("SEED_FILE", "")
	OtelEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	ServiceName = getEnv("SERVICE_NAME", "oasis-api")
	LogLevel = getEnv("LOG_LEVEL", "info")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid duration for %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
