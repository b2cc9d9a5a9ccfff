package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/amzubkov/tg-gym/internal/models"
)

// ProgramRepository репозиторий для работы с программами и днями
type ProgramRepository struct {
	db *sql.DB
}

// NewProgramRepository создаёт новый репозиторий программ
func NewProgramRepository(db *sql.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create создаёт программу тренировок
func (r *ProgramRepository) Create(name string) (int64, error) {
	res, err := r.db.Exec("INSERT INTO programs (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("создание программы: %w", err)
	}
	return res.LastInsertId()
}

// GetAll возвращает все программы
func (r *ProgramRepository) GetAll() ([]models.Program, error) {
	rows, err := r.db.Query("SELECT id, name FROM programs ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// GetByID возвращает программу по ID
func (r *ProgramRepository) GetByID(programID int64) (*models.Program, error) {
	var p models.Program
	err := r.db.QueryRow("SELECT id, name FROM programs WHERE id = ?", programID).
		Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete удаляет программу вместе с днями (каскадом)
func (r *ProgramRepository) Delete(programID int64) error {
	res, err := r.db.Exec("DELETE FROM programs WHERE id = ?", programID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateDay создаёт день в программе
func (r *ProgramRepository) CreateDay(programID int64, dayNumber int, name string) (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO days (program_id, day_number, name) VALUES (?, ?, ?)",
		programID, dayNumber, name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("создание дня: %w", err)
	}
	return res.LastInsertId()
}

// GetDays возвращает все дни программы по порядку
func (r *ProgramRepository) GetDays(programID int64) ([]models.Day, error) {
	rows, err := r.db.Query(
		`SELECT id, program_id, day_number, COALESCE(name, '')
		 FROM days WHERE program_id = ? ORDER BY day_number`,
		programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.Day
	for rows.Next() {
		var d models.Day
		if err := rows.Scan(&d.ID, &d.ProgramID, &d.DayNumber, &d.Name); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// GetDay возвращает день по ID
func (r *ProgramRepository) GetDay(dayID int64) (*models.Day, error) {
	var d models.Day
	err := r.db.QueryRow(
		`SELECT id, program_id, day_number, COALESCE(name, '')
		 FROM days WHERE id = ?`, dayID,
	).Scan(&d.ID, &d.ProgramID, &d.DayNumber, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDayByNumber возвращает день программы по его номеру
func (r *ProgramRepository) GetDayByNumber(programID int64, dayNumber int) (*models.Day, error) {
	var d models.Day
	err := r.db.QueryRow(
		`SELECT id, program_id, day_number, COALESCE(name, '')
		 FROM days WHERE program_id = ? AND day_number = ?`,
		programID, dayNumber,
	).Scan(&d.ID, &d.ProgramID, &d.DayNumber, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CountDays возвращает число дней в программе
func (r *ProgramRepository) CountDays(programID int64) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM days WHERE program_id = ?", programID,
	).Scan(&count)
	return count, err
}

// DeleteDay удаляет день вместе со связями упражнений (каскадом)
func (r *ProgramRepository) DeleteDay(dayID int64) error {
	res, err := r.db.Exec("DELETE FROM days WHERE id = ?", dayID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
