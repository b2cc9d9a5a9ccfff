package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config содержит конфигурацию приложения
type Config struct {
	BotToken     string
	AdminID      int64
	AccessCode   string // общий код доступа
	DatabasePath string

	// DeepSeek (генерация упражнений)
	DeepSeekAPIKey string

	// Расписание напоминаний в формате cron, пустое — напоминания выключены
	ReminderSchedule string
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() (*Config, error) {
	env, err := loadEnvFile(".env")
	if err != nil {
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	adminID, err := strconv.ParseInt(getEnv("ADMIN_ID", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("некорректный ADMIN_ID: %w", err)
	}

	cfg := &Config{
		BotToken:     getEnv("BOT_TOKEN", ""),
		AdminID:      adminID,
		AccessCode:   getEnv("ACCESS_CODE", "gym2024"),
		DatabasePath: getEnv("DATABASE_PATH", "gym_bot.db"),

		DeepSeekAPIKey: getEnv("DEEPSEEK_API_KEY", ""),

		ReminderSchedule: getEnv("REMINDER_SCHEDULE", ""),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN не задан")
	}

	return cfg, nil
}

// loadEnvFile читает .env файл
func loadEnvFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	env := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		env[key] = value
	}

	return env, scanner.Err()
}
