package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// Ошибки уровня хранилища. Обработчики переводят их в сообщения
// пользователю, до процесса они никогда не долетают.
var (
	ErrNotFound  = errors.New("запись не найдена")
	ErrDuplicate = errors.New("запись уже существует")
	ErrNoDays    = errors.New("в программе нет дней")
)

// Repository содержит все репозитории
type Repository struct {
	Program  *ProgramRepository
	Exercise *ExerciseRepository
	Workout  *WorkoutRepository
	Progress *ProgressRepository
	User     *UserRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		Program:  NewProgramRepository(db),
		Exercise: NewExerciseRepository(db),
		Workout:  NewWorkoutRepository(db),
		Progress: NewProgressRepository(db),
		User:     NewUserRepository(db),
	}
}

// isUniqueViolation проверяет, что ошибка — нарушение UNIQUE ограничения SQLite
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE")
}
