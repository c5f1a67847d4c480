package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	TelegramBotToken string
	WebhookURL       string // empty => long polling

	GoogleCredentialsJSON string
	SpreadsheetID         string
	SheetsRange           string

	GeminiAPIKey string
	GeminiModel  string

	SpeechLanguage string

	BufferCapacity int
	AITimeout      time.Duration
	SessionIdleTTL time.Duration // 0 disables eviction
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s: not an integer: %q", k, v)
	}
	return n
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("env %s: not a duration: %q", k, v)
	}
	return d
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: mustEnv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),

		GoogleCredentialsJSON: mustEnv("GOOGLE_CREDENTIALS_JSON"),
		SpreadsheetID:         mustEnv("SHEETS_SPREADSHEET_ID"),
		SheetsRange:           getEnv("SHEETS_RANGE", "Tasks!A:F"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		SpeechLanguage: getEnv("SPEECH_LANGUAGE", "uk-UA"),

		BufferCapacity: getInt("BUFFER_CAPACITY", 3),
		AITimeout:      getDuration("AI_TIMEOUT", 20*time.Second),
		SessionIdleTTL: getDuration("SESSION_IDLE_TTL", 24*time.Hour),
	}
}
