package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration, sourced from the environment.
type Config struct {
	Port         string
	GinMode      string
	LogLevel     string
	AllowOrigins []string

	// Gemini assistant. Empty APIKey runs the assistant in demo mode with
	// canned replies.
	GeminiAPIKey string
	GeminiModel  string

	// SMTP delivery of filing documents and reminders. Disabled unless
	// SMTPHost is set.
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SenderEmail string

	// Daily compliance reminder job.
	ReminderCron  string
	ReminderEmail string
}

// Load reads configs/.env when present and builds the config from the
// environment with development defaults.
func Load() *Config {
	_ = godotenv.Load("configs/.env")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "taxgo@localhost"),
		ReminderCron:  getEnv("REMINDER_CRON", "0 8 * * *"),
		ReminderEmail: getEnv("REMINDER_EMAIL", ""),
	}
}

// EmailEnabled reports whether outbound mail is configured.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
