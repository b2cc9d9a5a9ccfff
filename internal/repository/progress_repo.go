package repository

import (
	"database/sql"
	"errors"

	"github.com/amzubkov/tg-gym/internal/models"
)

// ProgressRepository хранит прогресс пользователей по программам.
// Это единственный конечный автомат в системе: нет программы → идёт
// программа → программа завершена. Всё состояние лежит в строке
// user_progress, в памяти ничего не кэшируется.
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository создаёт репозиторий прогресса
func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// SetProgram выбирает программу и сбрасывает прогресс на день 1.
// Повторный выбор (в том числе той же программы) начинает её заново.
// Возвращает ErrNoDays, если в программе нет ни одного дня.
func (r *ProgressRepository) SetProgram(userID, programID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM programs WHERE id = ?", programID,
	).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	var days int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM days WHERE program_id = ?", programID,
	).Scan(&days); err != nil {
		return err
	}
	if days == 0 {
		return ErrNoDays
	}

	if _, err := tx.Exec(
		`INSERT INTO user_progress (user_id, program_id, current_day_num, last_completed_date, is_finished)
		 VALUES (?, ?, 1, NULL, 0)
		 ON CONFLICT(user_id) DO UPDATE SET
		     program_id = excluded.program_id,
		     current_day_num = 1,
		     last_completed_date = NULL,
		     is_finished = 0`,
		userID, programID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// CompleteDay завершает текущий день. Прогресс и число дней читаются
// в одной транзакции, чтобы не шагнуть за программу, изменившуюся
// параллельно. Если программа исчезла — строка прогресса удаляется
// и пользователь считается без программы.
func (r *ProgressRepository) CompleteDay(userID int64, date string) (models.CompleteDayStatus, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return models.CompleteDayNoProgram, err
	}
	defer tx.Rollback()

	var programID sql.NullInt64
	var currentDay int
	var isFinished bool
	err = tx.QueryRow(
		`SELECT program_id, current_day_num, is_finished
		 FROM user_progress WHERE user_id = ?`, userID,
	).Scan(&programID, &currentDay, &isFinished)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CompleteDayNoProgram, nil
	}
	if err != nil {
		return models.CompleteDayNoProgram, err
	}

	if !programID.Valid || isFinished {
		return models.CompleteDayNoProgram, nil
	}

	var totalDays int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM days WHERE program_id = ?", programID.Int64,
	).Scan(&totalDays); err != nil {
		return models.CompleteDayNoProgram, err
	}
	if totalDays == 0 {
		// программу удалили или выпотрошили из-под пользователя
		if _, err := tx.Exec(
			"DELETE FROM user_progress WHERE user_id = ?", userID,
		); err != nil {
			return models.CompleteDayNoProgram, err
		}
		if err := tx.Commit(); err != nil {
			return models.CompleteDayNoProgram, err
		}
		return models.CompleteDayNoProgram, nil
	}

	status := models.CompleteDayAdvanced
	if currentDay+1 > totalDays {
		status = models.CompleteDayFinished
		_, err = tx.Exec(
			`UPDATE user_progress
			 SET is_finished = 1, last_completed_date = ?
			 WHERE user_id = ?`, date, userID,
		)
	} else {
		_, err = tx.Exec(
			`UPDATE user_progress
			 SET current_day_num = current_day_num + 1, last_completed_date = ?
			 WHERE user_id = ?`, date, userID,
		)
	}
	if err != nil {
		return models.CompleteDayNoProgram, err
	}

	if err := tx.Commit(); err != nil {
		return models.CompleteDayNoProgram, err
	}
	return status, nil
}

// Get возвращает текущее состояние прогресса пользователя.
// Если активная программа удалена, пользователь считается без программы.
func (r *ProgressRepository) Get(userID int64) (*models.Progress, error) {
	var programID sql.NullInt64
	var currentDay int
	var lastCompleted sql.NullString
	var isFinished bool
	err := r.db.QueryRow(
		`SELECT program_id, current_day_num, last_completed_date, is_finished
		 FROM user_progress WHERE user_id = ?`, userID,
	).Scan(&programID, &currentDay, &lastCompleted, &isFinished)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.Progress{State: models.ProgressNone}, nil
	}
	if err != nil {
		return nil, err
	}
	if !programID.Valid {
		return &models.Progress{State: models.ProgressNone}, nil
	}

	var program models.Program
	err = r.db.QueryRow(
		"SELECT id, name FROM programs WHERE id = ?", programID.Int64,
	).Scan(&program.ID, &program.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.Progress{State: models.ProgressNone}, nil
	}
	if err != nil {
		return nil, err
	}

	var totalDays int
	if err := r.db.QueryRow(
		"SELECT COUNT(*) FROM days WHERE program_id = ?", programID.Int64,
	).Scan(&totalDays); err != nil {
		return nil, err
	}

	p := &models.Progress{
		Program:           &program,
		CurrentDayNum:     currentDay,
		TotalDays:         totalDays,
		LastCompletedDate: lastCompleted.String,
	}
	if isFinished {
		p.State = models.ProgressFinished
	} else {
		p.State = models.ProgressInProgress
	}
	return p, nil
}

// Clear сбрасывает прогресс: строка удаляется, а не чинится
func (r *ProgressRepository) Clear(userID int64) error {
	_, err := r.db.Exec("DELETE FROM user_progress WHERE user_id = ?", userID)
	return err
}
