package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	LogLevel slog.Level

	JWTKey                []byte
	JWTExp                time.Duration
	EnforcePermissions    bool
	DirectoryFile         string
	RevokedTokenKeyPrefix string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBConnStr      string
	DBMaxOpenConns int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DashboardPort  string
	APIBaseURL     string // Empty means the dashboard runs against the response simulator
	SimulatorDelay time.Duration
	SessionKey     []byte
	CSRFKey        []byte
	CookieSecure   bool
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:               getEnv("API_PORT", "3000"),
		LogLevel:              parseLevel(getEnv("LOG_LEVEL", "info")),
		JWTKey:                []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:                time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 12)) * time.Hour,
		EnforcePermissions:    getEnvAsBool("API_ENFORCE_PERMISSIONS", false),
		DirectoryFile:         getEnv("DIRECTORY_FILE", ""),
		RevokedTokenKeyPrefix: getEnv("REVOKED_TOKEN_KEY_PREFIX", "relief:revoked:"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", "incident_management"),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:        getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		DashboardPort:         getEnv("DASHBOARD_PORT", "8080"),
		APIBaseURL:            strings.TrimRight(getEnv("API_BASE_URL", ""), "/"),
		SimulatorDelay:        time.Duration(getEnvAsInt("SIMULATOR_DELAY_MS", 500)) * time.Millisecond,
		SessionKey:            []byte(getEnv("SESSION_KEY", "dev-session-key-change-me-32byte")),
		CSRFKey:               []byte(getEnv("CSRF_KEY", "dev-csrf-key-change-me-32-bytes!")),
		CookieSecure:          getEnvAsBool("COOKIE_SECURE", false),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode

	if len(AppConfig.CSRFKey) != 32 {
		slog.Warn("CSRF_KEY should be exactly 32 bytes", "length", len(AppConfig.CSRFKey))
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
