package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the frontend needs from the environment. The
// backend base URL is a fixed constant per deployment; there is no service
// discovery.
type Config struct {
	Addr         string
	APIBaseURL   string
	SessionKey   string
	TemplatesDir string
	StaticDir    string
	MessagesPath string

	// UploadMaxBytes caps the parsed size of the multipart task form.
	UploadMaxBytes int64
}

func Load() Config {
	// .env is optional; real deployments set the variables directly.
	godotenv.Load()

	return Config{
		Addr:         getEnv("ADDR", ":8080"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:6565"),
		SessionKey:   getEnv("SESSION_KEY", "a-very-secret-key"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),
		StaticDir:    getEnv("STATIC_DIR", "web/static"),
		MessagesPath: getEnv("MESSAGES_PATH", "web/static/messages.txt"),

		UploadMaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
	}
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
