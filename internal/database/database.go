package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open открывает базу данных SQLite по указанному пути и применяет миграции.
// Прагмы передаются в DSN, чтобы каждое новое соединение драйвера
// получало их заново: состояние PRAGMA в SQLite живёт на уровне соединения.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу данных: %w", err)
	}

	// SQLite лучше работает с одним писателем
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("база данных недоступна: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
