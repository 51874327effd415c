package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Database
	DBUrl              string
	DBMaxConns         int
	DBStatementTimeout int // milliseconds
	DBSimpleProtocol   bool
	// Identity gate
	JWTSecret string
	JWKSURL   string
	// Uploads: "service" posts to the upload microservice, "s3" writes to a bucket
	UploadBackend        string
	UploadServiceURL     string
	UploadTimeoutSeconds int
	S3Region             string
	S3Bucket             string
	S3AccessKeyID        string
	S3SecretAccessKey    string
	S3Endpoint           string
	S3PublicBaseURL      string
	// ClamAVAddress enables malware scanning of uploads when set
	ClamAVAddress        string
	ClamAVTimeoutSeconds int
	// Notifications: "redis" publishes to a topic, "smtp" mails directly, "log" only logs
	NotifyBackend string
	RedisURL      string
	RedisPassword string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// HTTP
	CORSAllowedOrigins       []string
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	LogLevel                 string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBUrl:              getEnv("DATABASE_URL", ""),
		DBMaxConns:         getEnvInt("DB_MAX_CONNS", 25),
		DBStatementTimeout: getEnvInt("DB_STATEMENT_TIMEOUT_MS", 10000),
		DBSimpleProtocol:   getEnvBool("DB_SIMPLE_PROTOCOL", false),

		JWTSecret: getEnv("JWT_SECRET", getEnv("JWT_SEC", "")),
		JWKSURL:   getEnv("JWKS_URL", ""),

		UploadBackend: strings.ToLower(getEnv("UPLOAD_BACKEND", "service")),
		// Trim the trailing slash so ".../api/utils/upload" never doubles up.
		UploadServiceURL:     strings.TrimRight(getEnv("UPLOAD_SERVICE", "http://localhost:5001"), "/"),
		UploadTimeoutSeconds: getEnvInt("UPLOAD_TIMEOUT_SECONDS", 30),
		S3Region:             getEnv("S3_REGION", "us-east-1"),
		S3Bucket:             getEnv("S3_BUCKET", ""),
		S3AccessKeyID:        getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:           getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL:      strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		ClamAVAddress:        getEnv("CLAMAV_ADDRESS", ""),
		ClamAVTimeoutSeconds: getEnvInt("CLAMAV_TIMEOUT_SECONDS", 30),

		NotifyBackend: strings.ToLower(getEnv("NOTIFY_BACKEND", "redis")),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@jobportal.local"),

		CORSAllowedOrigins:       getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Println("WARNING: neither JWT_SECRET nor JWKS_URL is set. Every protected route will reject.")
	}
	if cfg.NotifyBackend == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Notifications will only be logged.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
