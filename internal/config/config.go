package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort string

	StorageBackend string
	StorageDir     string
	StorageKey     string

	RedisURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	AzureConnectionString string
	AzureTableName        string

	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Debug("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		StorageBackend:        getEnv("STORAGE_BACKEND", "file"),
		StorageDir:            getEnv("STORAGE_DIR", "data"),
		StorageKey:            getEnv("STORAGE_KEY", "kanban-storage"),
		RedisURL:              getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5431"),
		DBUser:                getEnv("DB_USER", "kanban_user"),
		DBPassword:            getEnv("DB_PASSWORD", "kanban_pass"),
		DBName:                getEnv("DB_NAME", "kanban_db"),
		AzureConnectionString: getEnv("AZURE_STORAGE_CONNECTION_STRING", ""),
		AzureTableName:        getEnv("AZURE_TABLE_NAME", "boards"),
		AnthropicAPIKey:       getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:        getEnv("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
		AnthropicBaseURL:      getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "text"),
	}
}

// PostgresDSN builds the connection string for the postgres backend.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
