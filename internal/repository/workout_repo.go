package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/amzubkov/tg-gym/internal/models"
)

// WorkoutRepository работает с логами тренировок: подходами по упражнениям
// из библиотеки и по своим (custom) упражнениям
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository создаёт репозиторий логов тренировок
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// LogSets записывает sets одинаковых подходов одной транзакцией.
// set_num продолжает нумерацию подходов за этот день: count + 1, count + 2, ...
// После удаления подходы не перенумеровываются, пропуски в номерах остаются.
func (r *WorkoutRepository) LogSets(userID, exerciseID int64, weight float64, reps, sets int, date string) error {
	if sets < 1 {
		return fmt.Errorf("некорректное число подходов: %d", sets)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM workout_logs
		 WHERE user_id = ? AND exercise_id = ? AND date = ?`,
		userID, exerciseID, date,
	).Scan(&count); err != nil {
		return err
	}

	for i := 0; i < sets; i++ {
		if _, err := tx.Exec(
			`INSERT INTO workout_logs (user_id, exercise_id, weight, reps, set_num, date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			userID, exerciseID, weight, reps, count+i+1, date,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetHistory возвращает последние подходы по упражнению, свежие даты первыми
func (r *WorkoutRepository) GetHistory(userID, exerciseID int64, limit int) ([]models.WorkoutLog, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, exercise_id, weight, reps, set_num, date, created_at
		 FROM workout_logs
		 WHERE user_id = ? AND exercise_id = ?
		 ORDER BY date DESC, set_num
		 LIMIT ?`,
		userID, exerciseID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkoutLogs(rows)
}

// GetLastWorkout возвращает все подходы последней тренировки по упражнению
func (r *WorkoutRepository) GetLastWorkout(userID, exerciseID int64) ([]models.WorkoutLog, error) {
	var lastDate string
	err := r.db.QueryRow(
		`SELECT date FROM workout_logs
		 WHERE user_id = ? AND exercise_id = ?
		 ORDER BY date DESC LIMIT 1`,
		userID, exerciseID,
	).Scan(&lastDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		`SELECT id, user_id, exercise_id, weight, reps, set_num, date, created_at
		 FROM workout_logs
		 WHERE user_id = ? AND exercise_id = ? AND date = ?
		 ORDER BY set_num`,
		userID, exerciseID, lastDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkoutLogs(rows)
}

// DeleteLog удаляет запись о подходе. Пользователь может удалять только свои.
func (r *WorkoutRepository) DeleteLog(logID, userID int64) error {
	res, err := r.db.Exec(
		"DELETE FROM workout_logs WHERE id = ? AND user_id = ?",
		logID, userID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetUserStats возвращает статистику: уникальные дни и число подходов,
// включая свои упражнения
func (r *WorkoutRepository) GetUserStats(userID int64) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.db.QueryRow(
		`SELECT COUNT(DISTINCT date) FROM (
			SELECT date FROM workout_logs WHERE user_id = ?
			UNION ALL
			SELECT date FROM custom_logs WHERE user_id = ?
		)`, userID, userID,
	).Scan(&stats.TotalWorkouts)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(
		`SELECT (SELECT COUNT(*) FROM workout_logs WHERE user_id = ?)
		      + (SELECT COUNT(*) FROM custom_logs WHERE user_id = ?)`,
		userID, userID,
	).Scan(&stats.TotalSets)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// ==================== СВОИ УПРАЖНЕНИЯ ====================

// LogCustomSets записывает подходы своего упражнения. Нумерация подходов
// ведётся по нормализованному названию за день.
func (r *WorkoutRepository) LogCustomSets(userID int64, name string, weight float64, reps, sets int, date string) error {
	if sets < 1 {
		return fmt.Errorf("некорректное число подходов: %d", sets)
	}
	name = strings.TrimSpace(name)

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM custom_logs
		 WHERE user_id = ? AND LOWER(name) = LOWER(?) AND date = ?`,
		userID, name, date,
	).Scan(&count); err != nil {
		return err
	}

	for i := 0; i < sets; i++ {
		if _, err := tx.Exec(
			`INSERT INTO custom_logs (user_id, name, weight, reps, set_num, date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			userID, name, weight, reps, count+i+1, date,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LogCustomCardio записывает кардио по длительности
func (r *WorkoutRepository) LogCustomCardio(userID int64, name string, durationMinutes int, date string) error {
	_, err := r.db.Exec(
		`INSERT INTO custom_logs (user_id, name, duration_minutes, date)
		 VALUES (?, ?, ?, ?)`,
		userID, strings.TrimSpace(name), durationMinutes, date,
	)
	return err
}

// GetTodayCustom возвращает записи своих упражнений за день
func (r *WorkoutRepository) GetTodayCustom(userID int64, date string) ([]models.CustomLog, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, weight, reps, duration_minutes, set_num, date, created_at
		 FROM custom_logs
		 WHERE user_id = ? AND date = ?
		 ORDER BY created_at, id`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomLogs(rows)
}

// GetCustomHistory возвращает последние записи своих упражнений
func (r *WorkoutRepository) GetCustomHistory(userID int64, limit int) ([]models.CustomLog, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, weight, reps, duration_minutes, set_num, date, created_at
		 FROM custom_logs
		 WHERE user_id = ?
		 ORDER BY date DESC, created_at DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomLogs(rows)
}

func scanWorkoutLogs(rows *sql.Rows) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	for rows.Next() {
		var l models.WorkoutLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ExerciseID, &l.Weight, &l.Reps,
			&l.SetNum, &l.Date, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func scanCustomLogs(rows *sql.Rows) ([]models.CustomLog, error) {
	var logs []models.CustomLog
	for rows.Next() {
		var l models.CustomLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Weight, &l.Reps,
			&l.DurationMinutes, &l.SetNum, &l.Date, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
