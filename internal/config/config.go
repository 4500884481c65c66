package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env             string
	Port            string
	ShutdownTimeout time.Duration

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	JWTSecret string
	TokenTTL  time.Duration

	MongoURI      string
	MongoDatabase string

	MattermostURL       string
	MattermostToken     string
	MattermostChannelID string

	DefaultLocale string
	ConnRetries   int
}

// Load reads the environment. Call godotenv.Load before it when a .env file is used.
func Load() *Config {
	return &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "3000"),

		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "go_leave"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getDuration("JWT_TTL", time.Hour),

		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDatabase: getEnv("MONGODB_DATABASE", "go_leave"),

		MattermostURL:       strings.TrimRight(getEnv("MATTERMOST_URL", ""), "/"),
		MattermostToken:     getEnv("MATTERMOST_TOKEN", ""),
		MattermostChannelID: getEnv("MATTERMOST_CHANNEL_ID", ""),

		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		ConnRetries:   getInt("CONN_RETRIES", 5),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
