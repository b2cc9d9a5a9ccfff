package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/amzubkov/tg-gym/internal/models"
)

// Направление перемещения упражнения внутри дня
const (
	MoveUp   = -1
	MoveDown = 1
)

// ExerciseRepository работает с библиотекой упражнений, их привязкой
// к дням и тегами
type ExerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository создаёт репозиторий упражнений
func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Create создаёт упражнение в библиотеке
func (r *ExerciseRepository) Create(name, description, imageFileID string, weightType models.WeightType) (int64, error) {
	res, err := r.db.Exec(
		`INSERT INTO exercises (name, description, image_file_id, weight_type)
		 VALUES (?, ?, ?, ?)`,
		name, description, imageFileID, int(weightType),
	)
	if err != nil {
		return 0, fmt.Errorf("создание упражнения: %w", err)
	}
	return res.LastInsertId()
}

// GetByID возвращает упражнение по ID
func (r *ExerciseRepository) GetByID(exerciseID int64) (*models.Exercise, error) {
	var e models.Exercise
	var weightType int
	err := r.db.QueryRow(
		`SELECT id, name, COALESCE(description, ''), COALESCE(image_file_id, ''), weight_type
		 FROM exercises WHERE id = ?`, exerciseID,
	).Scan(&e.ID, &e.Name, &e.Description, &e.ImageFileID, &weightType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e.WeightType = models.WeightType(weightType)
	return &e, nil
}

// GetByDay возвращает упражнения дня в заданном порядке
func (r *ExerciseRepository) GetByDay(dayID int64) ([]models.Exercise, error) {
	rows, err := r.db.Query(
		`SELECT e.id, e.name, COALESCE(e.description, ''), COALESCE(e.image_file_id, ''), e.weight_type
		 FROM exercises e
		 JOIN day_exercises de ON de.exercise_id = e.id
		 WHERE de.day_id = ?
		 ORDER BY de.order_num, e.id`, dayID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

// GetAll возвращает все упражнения библиотеки
func (r *ExerciseRepository) GetAll() ([]models.Exercise, error) {
	rows, err := r.db.Query(
		`SELECT id, name, COALESCE(description, ''), COALESCE(image_file_id, ''), weight_type
		 FROM exercises ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

// UpdateDescription обновляет описание упражнения
func (r *ExerciseRepository) UpdateDescription(exerciseID int64, description string) error {
	return r.exec("UPDATE exercises SET description = ? WHERE id = ?", description, exerciseID)
}

// UpdateImage обновляет картинку упражнения
func (r *ExerciseRepository) UpdateImage(exerciseID int64, imageFileID string) error {
	return r.exec("UPDATE exercises SET image_file_id = ? WHERE id = ?", imageFileID, exerciseID)
}

// UpdateWeightType обновляет тип веса упражнения
func (r *ExerciseRepository) UpdateWeightType(exerciseID int64, weightType models.WeightType) error {
	return r.exec("UPDATE exercises SET weight_type = ? WHERE id = ?", int(weightType), exerciseID)
}

// Delete удаляет упражнение. Связи с днями, теги и логи тренировок
// удаляются каскадом.
func (r *ExerciseRepository) Delete(exerciseID int64) error {
	return r.exec("DELETE FROM exercises WHERE id = ?", exerciseID)
}

func (r *ExerciseRepository) exec(query string, args ...any) error {
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== СВЯЗИ С ДНЯМИ ====================

// AddToDay привязывает упражнение к дню в конец списка
func (r *ExerciseRepository) AddToDay(exerciseID, dayID int64) error {
	var maxOrder sql.NullInt64
	err := r.db.QueryRow(
		"SELECT MAX(order_num) FROM day_exercises WHERE day_id = ?", dayID,
	).Scan(&maxOrder)
	if err != nil {
		return err
	}

	order := int64(0)
	if maxOrder.Valid {
		order = maxOrder.Int64 + 10
	}

	_, err = r.db.Exec(
		"INSERT INTO day_exercises (day_id, exercise_id, order_num) VALUES (?, ?, ?)",
		dayID, exerciseID, order,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// RemoveFromDay отвязывает упражнение от дня
func (r *ExerciseRepository) RemoveFromDay(exerciseID, dayID int64) error {
	return r.exec(
		"DELETE FROM day_exercises WHERE day_id = ? AND exercise_id = ?",
		dayID, exerciseID,
	)
}

// GetDays возвращает дни, к которым привязано упражнение
func (r *ExerciseRepository) GetDays(exerciseID int64) ([]models.Day, error) {
	rows, err := r.db.Query(
		`SELECT d.id, d.program_id, d.day_number, COALESCE(d.name, '')
		 FROM days d
		 JOIN day_exercises de ON de.day_id = d.id
		 WHERE de.exercise_id = ?
		 ORDER BY d.program_id, d.day_number`, exerciseID,
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

// MoveInDay перемещает упражнение внутри дня на одну позицию вверх или вниз.
// Порядок перенумеровывается с шагом 10, затем меняются местами значения
// упражнения и его соседа. На границах списка — no-op. Всё в одной транзакции.
func (r *ExerciseRepository) MoveInDay(exerciseID, dayID int64, direction int) error {
	if direction != MoveUp && direction != MoveDown {
		return fmt.Errorf("некорректное направление: %d", direction)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.Query(
		`SELECT exercise_id FROM day_exercises
		 WHERE day_id = ? ORDER BY order_num, exercise_id`, dayID,
	)
	if err != nil {
		return err
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	pos := -1
	for i, id := range ids {
		if id == exerciseID {
			pos = i
			break
		}
	}
	if pos == -1 {
		return ErrNotFound
	}

	neighbor := pos + direction
	if neighbor < 0 || neighbor >= len(ids) {
		// граница списка, двигать некуда
		return nil
	}

	ids[pos], ids[neighbor] = ids[neighbor], ids[pos]

	for i, id := range ids {
		if _, err := tx.Exec(
			"UPDATE day_exercises SET order_num = ? WHERE day_id = ? AND exercise_id = ?",
			i*10, dayID, id,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ==================== ТЕГИ ====================

// SetTags заменяет набор тегов упражнения. Имена приводятся к нижнему
// регистру, недостающие теги создаются, осиротевшие удаляются.
func (r *ExerciseRepository) SetTags(exerciseID int64, names []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM exercise_tags WHERE exercise_id = ?", exerciseID,
	); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if _, err := tx.Exec(
			"INSERT INTO tags (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name,
		); err != nil {
			return err
		}

		var tagID int64
		if err := tx.QueryRow(
			"SELECT id FROM tags WHERE name = ?", name,
		).Scan(&tagID); err != nil {
			return err
		}

		if _, err := tx.Exec(
			"INSERT INTO exercise_tags (exercise_id, tag_id) VALUES (?, ?)",
			exerciseID, tagID,
		); err != nil {
			return err
		}
	}

	// Убираем теги, на которые больше никто не ссылается
	if _, err := tx.Exec(
		`DELETE FROM tags WHERE id NOT IN (SELECT DISTINCT tag_id FROM exercise_tags)`,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetTags возвращает теги упражнения
func (r *ExerciseRepository) GetTags(exerciseID int64) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT t.name FROM tags t
		 JOIN exercise_tags et ON et.tag_id = t.id
		 WHERE et.exercise_id = ?
		 ORDER BY t.name`, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// GetAllTags возвращает все теги с числом упражнений
func (r *ExerciseRepository) GetAllTags() ([]models.Tag, error) {
	rows, err := r.db.Query(
		`SELECT t.id, t.name, COUNT(et.exercise_id)
		 FROM tags t
		 LEFT JOIN exercise_tags et ON et.tag_id = t.id
		 GROUP BY t.id, t.name
		 ORDER BY t.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.ExerciseCount); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetByTag возвращает упражнения с заданным тегом (точное совпадение имени)
func (r *ExerciseRepository) GetByTag(tagName string) ([]models.Exercise, error) {
	rows, err := r.db.Query(
		`SELECT e.id, e.name, COALESCE(e.description, ''), COALESCE(e.image_file_id, ''), e.weight_type
		 FROM exercises e
		 JOIN exercise_tags et ON et.exercise_id = e.id
		 JOIN tags t ON t.id = et.tag_id
		 WHERE t.name = ?
		 ORDER BY e.name`, strings.ToLower(strings.TrimSpace(tagName)),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

func scanExercises(rows *sql.Rows) ([]models.Exercise, error) {
	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		var weightType int
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.ImageFileID, &weightType); err != nil {
			return nil, err
		}
		e.WeightType = models.WeightType(weightType)
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
