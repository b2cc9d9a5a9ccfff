package models

import "time"

// WeightType тип веса упражнения, определяет диапазон быстрого выбора
type WeightType int

const (
	WeightTypeNone     WeightType = 0   // без веса (своим весом)
	WeightTypeDumbbell WeightType = 10  // гантели
	WeightTypeBarbell  WeightType = 100 // штанга
)

// Program программа тренировок (например, "Зубкова", "PPL")
type Program struct {
	ID   int64
	Name string
}

// Day день в программе тренировок
type Day struct {
	ID        int64
	ProgramID int64
	DayNumber int
	Name      string // пустая строка — "День N"
}

// Exercise упражнение из библиотеки, не привязано к конкретному дню
type Exercise struct {
	ID          int64
	Name        string
	Description string
	ImageFileID string // file_id картинки в Telegram
	WeightType  WeightType
}

// WorkoutLog один выполненный подход упражнения из библиотеки
type WorkoutLog struct {
	ID         int64
	UserID     int64
	ExerciseID int64
	Weight     float64
	Reps       int
	SetNum     int
	Date       string // календарный день в формате 2006-01-02
	CreatedAt  time.Time
}

// CustomLog подход своего упражнения (по названию, не из библиотеки).
// Для кардио заполняется DurationMinutes, для силовых — Weight и Reps.
type CustomLog struct {
	ID              int64
	UserID          int64
	Name            string
	Weight          float64
	Reps            int
	DurationMinutes int
	SetNum          int
	Date            string
	CreatedAt       time.Time
}

// Tag тег упражнения (группа мышц)
type Tag struct {
	ID            int64
	Name          string
	ExerciseCount int
}

// AllowedUser пользователь из списка доступа
type AllowedUser struct {
	UserID     int64
	Username   string
	FullName   string
	ApprovedAt time.Time
}

// InviteCode одноразовый код доступа, выданный админом
type InviteCode struct {
	Code      string
	CreatedAt time.Time
	UsedBy    int64
	UsedAt    *time.Time
}

// UserStats сводная статистика пользователя
type UserStats struct {
	TotalWorkouts int // уникальных дней с записями
	TotalSets     int // всего подходов (включая свои упражнения)
}

// ProgressState состояние прогресса по программе
type ProgressState int

const (
	ProgressNone       ProgressState = iota // программа не выбрана
	ProgressInProgress                      // идёт по программе
	ProgressFinished                        // программа закончена
)

// Progress прогресс пользователя по активной программе
type Progress struct {
	State             ProgressState
	Program           *Program
	CurrentDayNum     int
	TotalDays         int
	LastCompletedDate string
}

// CompleteDayStatus результат завершения дня
type CompleteDayStatus int

const (
	CompleteDayNoProgram CompleteDayStatus = iota // нет активной программы
	CompleteDayAdvanced                           // переход к следующему дню
	CompleteDayFinished                           // программа завершена
)
