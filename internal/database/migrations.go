package database

import (
	"database/sql"
	"fmt"
	"time"
)

// migration одна миграция схемы. Скрипт выполняется в транзакции
// вместе с записью в schema_migrations.
type migration struct {
	version int
	name    string
	script  string
}

var migrations = []migration{
	{
		version: 1,
		name:    "базовые таблицы",
		script: `
CREATE TABLE IF NOT EXISTS programs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS days (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    program_id INTEGER NOT NULL,
    day_number INTEGER NOT NULL,
    name TEXT,
    FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE,
    UNIQUE(program_id, day_number)
);

-- Упражнения независимы от дней, связь через day_exercises
CREATE TABLE IF NOT EXISTS exercises (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    image_file_id TEXT,
    weight_type INTEGER NOT NULL DEFAULT 10
);

CREATE TABLE IF NOT EXISTS day_exercises (
    day_id INTEGER NOT NULL,
    exercise_id INTEGER NOT NULL,
    order_num INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (day_id) REFERENCES days(id) ON DELETE CASCADE,
    FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
    UNIQUE(day_id, exercise_id)
);

CREATE TABLE IF NOT EXISTS workout_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    exercise_id INTEGER NOT NULL,
    weight REAL NOT NULL,
    reps INTEGER NOT NULL,
    set_num INTEGER NOT NULL DEFAULT 1,
    date TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS custom_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    weight REAL NOT NULL DEFAULT 0,
    reps INTEGER NOT NULL DEFAULT 0,
    duration_minutes INTEGER NOT NULL DEFAULT 0,
    set_num INTEGER NOT NULL DEFAULT 1,
    date TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_progress (
    user_id INTEGER PRIMARY KEY,
    program_id INTEGER,
    current_day_num INTEGER NOT NULL DEFAULT 1,
    last_completed_date TEXT,
    is_finished INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS allowed_users (
    user_id INTEGER PRIMARY KEY,
    username TEXT,
    full_name TEXT,
    approved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_workout_logs_user_exercise ON workout_logs(user_id, exercise_id, date);
CREATE INDEX IF NOT EXISTS idx_custom_logs_user_date ON custom_logs(user_id, date);
CREATE INDEX IF NOT EXISTS idx_day_exercises_day ON day_exercises(day_id, order_num);
`,
	},
	{
		version: 2,
		name:    "теги упражнений",
		script: `
CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS exercise_tags (
    exercise_id INTEGER NOT NULL,
    tag_id INTEGER NOT NULL,
    FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE,
    UNIQUE(exercise_id, tag_id)
);

CREATE INDEX IF NOT EXISTS idx_exercise_tags_tag ON exercise_tags(tag_id);
`,
	},
	{
		version: 3,
		name:    "одноразовые коды доступа",
		script: `
CREATE TABLE IF NOT EXISTS access_codes (
    code TEXT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    used_by INTEGER,
    used_at TIMESTAMP
);
`,
	},
}

// Migrate применяет недостающие миграции по порядку. Повторный запуск
// ничего не меняет: применённые версии записаны в schema_migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("не удалось создать schema_migrations: %w", err)
	}

	for _, m := range migrations {
		applied, err := isApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}

		if _, err := tx.Exec(m.script); err != nil {
			tx.Rollback()
			return fmt.Errorf("миграция %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
			m.version, m.name, time.Now(),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("миграция %d: запись версии: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
	}

	return nil
}

func isApplied(db *sql.DB, version int) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("проверка миграции %d: %w", version, err)
	}
	return count > 0, nil
}
