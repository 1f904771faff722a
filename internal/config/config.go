package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string

	AssistantDBPath  string
	LessonsDBPath    string
	VocabularyDBPath string
	NotesDBPath      string

	// Habit reminders only fire while the user's local hour is inside
	// [ReminderStartHour, ReminderEndHour).
	ReminderStartHour int
	ReminderEndHour   int
	ReminderEnabled   bool

	DefaultTimezone string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		AssistantDBPath:    getEnv("DATABASE_PATH", "./assistant.db"),
		LessonsDBPath:      getEnv("LESSONS_DATABASE_PATH", "./lessons.db"),
		VocabularyDBPath:   getEnv("VOCABULARY_DATABASE_PATH", "./vocabulary.db"),
		NotesDBPath:        getEnv("NOTES_DATABASE_PATH", "./notes.db"),
		ReminderStartHour:  getEnvInt("REMINDER_START_HOUR", 8),
		ReminderEndHour:    getEnvInt("REMINDER_END_HOUR", 22),
		ReminderEnabled:    getEnvBool("REMINDER_ENABLED", true),
		DefaultTimezone:    getEnv("TIMEZONE", "Europe/Istanbul"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return defaultValue
}
