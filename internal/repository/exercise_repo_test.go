package repository

import (
	"testing"
)

// makeDayWithExercises создаёт программу с одним днём и n упражнениями,
// возвращает ID дня и упражнений в исходном порядке
func makeDayWithExercises(t *testing.T, repo *Repository, n int) (int64, []int64) {
	t.Helper()

	programID := makeProgram(t, repo, "PPL", 1)
	days, err := repo.Program.GetDays(programID)
	if err != nil {
		t.Fatalf("GetDays: %v", err)
	}
	dayID := days[0].ID

	names := []string{"Жим лежа", "Присед", "Тяга", "Подтягивания", "Отжимания"}
	var ids []int64
	for i := 0; i < n; i++ {
		id := makeExercise(t, repo, names[i])
		if err := repo.Exercise.AddToDay(id, dayID); err != nil {
			t.Fatalf("AddToDay: %v", err)
		}
		ids = append(ids, id)
	}
	return dayID, ids
}

func assertOrder(t *testing.T, repo *Repository, dayID int64, want []int64) {
	t.Helper()

	exercises, err := repo.Exercise.GetByDay(dayID)
	if err != nil {
		t.Fatalf("GetByDay: %v", err)
	}
	if len(exercises) != len(want) {
		t.Fatalf("в дне %d упражнений, ожидалось %d", len(exercises), len(want))
	}
	for i, e := range exercises {
		if e.ID != want[i] {
			t.Errorf("позиция %d: упражнение %d, ожидалось %d", i, e.ID, want[i])
		}
	}
}

func TestExerciseGetAll(t *testing.T) {
	repo := New(setupTestDB(t))
	_, ids := makeDayWithExercises(t, repo, 2)

	// Упражнение без привязки к дню тоже попадает в библиотеку
	orphanID := makeExercise(t, repo, "Планка")

	exercises, err := repo.Exercise.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(exercises) != 3 {
		t.Fatalf("в библиотеке %d упражнений, ожидалось 3", len(exercises))
	}

	found := make(map[int64]bool)
	for _, e := range exercises {
		found[e.ID] = true
	}
	for _, id := range append(ids, orphanID) {
		if !found[id] {
			t.Errorf("упражнение %d отсутствует в списке", id)
		}
	}
}

func TestMoveInDay(t *testing.T) {
	repo := New(setupTestDB(t))
	dayID, ids := makeDayWithExercises(t, repo, 3)

	// Первое вверх — no-op
	if err := repo.Exercise.MoveInDay(ids[0], dayID, MoveUp); err != nil {
		t.Fatalf("MoveInDay вверх: %v", err)
	}
	assertOrder(t, repo, dayID, []int64{ids[0], ids[1], ids[2]})

	// Первое вниз — меняется со вторым
	if err := repo.Exercise.MoveInDay(ids[0], dayID, MoveDown); err != nil {
		t.Fatalf("MoveInDay вниз: %v", err)
	}
	assertOrder(t, repo, dayID, []int64{ids[1], ids[0], ids[2]})

	// Последнее вниз — no-op
	if err := repo.Exercise.MoveInDay(ids[2], dayID, MoveDown); err != nil {
		t.Fatalf("MoveInDay последнего вниз: %v", err)
	}
	assertOrder(t, repo, dayID, []int64{ids[1], ids[0], ids[2]})
}

func TestMoveInDay_NotLinked(t *testing.T) {
	repo := New(setupTestDB(t))
	dayID, _ := makeDayWithExercises(t, repo, 2)
	stray := makeExercise(t, repo, "Бёрпи")

	if err := repo.Exercise.MoveInDay(stray, dayID, MoveDown); err != ErrNotFound {
		t.Errorf("перемещение непривязанного: err = %v, ожидался ErrNotFound", err)
	}
}

func TestAddToDay_Duplicate(t *testing.T) {
	repo := New(setupTestDB(t))
	dayID, ids := makeDayWithExercises(t, repo, 1)

	if err := repo.Exercise.AddToDay(ids[0], dayID); err != ErrDuplicate {
		t.Errorf("повторная привязка: err = %v, ожидался ErrDuplicate", err)
	}
}

func TestExerciseInMultipleDays(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 2)
	days, _ := repo.Program.GetDays(programID)
	exerciseID := makeExercise(t, repo, "Жим")

	for _, d := range days {
		if err := repo.Exercise.AddToDay(exerciseID, d.ID); err != nil {
			t.Fatalf("AddToDay %d: %v", d.DayNumber, err)
		}
	}

	linked, err := repo.Exercise.GetDays(exerciseID)
	if err != nil {
		t.Fatalf("GetDays: %v", err)
	}
	if len(linked) != 2 {
		t.Errorf("упражнение в %d днях, ожидалось 2", len(linked))
	}

	// Отвязка от одного дня не трогает другой
	if err := repo.Exercise.RemoveFromDay(exerciseID, days[0].ID); err != nil {
		t.Fatalf("RemoveFromDay: %v", err)
	}
	linked, _ = repo.Exercise.GetDays(exerciseID)
	if len(linked) != 1 || linked[0].ID != days[1].ID {
		t.Errorf("после отвязки осталось %d связей", len(linked))
	}
}

func TestTags(t *testing.T) {
	repo := New(setupTestDB(t))
	benchID := makeExercise(t, repo, "Жим лежа")
	curlID := makeExercise(t, repo, "Подъём на бицепс")

	if err := repo.Exercise.SetTags(benchID, []string{"Грудь", "трицепс"}); err != nil {
		t.Fatalf("SetTags: %v", err)
	}
	if err := repo.Exercise.SetTags(curlID, []string{"бицепс"}); err != nil {
		t.Fatalf("SetTags: %v", err)
	}

	// Имена нормализуются к нижнему регистру
	tags, err := repo.Exercise.GetTags(benchID)
	if err != nil {
		t.Fatalf("GetTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != "грудь" || tags[1] != "трицепс" {
		t.Errorf("теги = %v, ожидались [грудь трицепс]", tags)
	}

	// Точное совпадение: "бицепс" не находит "трицепс"
	byTag, err := repo.Exercise.GetByTag("бицепс")
	if err != nil {
		t.Fatalf("GetByTag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].ID != curlID {
		t.Errorf("по тегу бицепс найдено %d упражнений, ожидалось 1", len(byTag))
	}

	// Замена тегов удаляет осиротевшие
	if err := repo.Exercise.SetTags(benchID, []string{"грудь"}); err != nil {
		t.Fatalf("SetTags: %v", err)
	}
	all, err := repo.Exercise.GetAllTags()
	if err != nil {
		t.Fatalf("GetAllTags: %v", err)
	}
	names := make(map[string]int)
	for _, tag := range all {
		names[tag.Name] = tag.ExerciseCount
	}
	if len(all) != 2 {
		t.Errorf("тегов %d (%v), ожидалось 2 — трицепс осиротел", len(all), names)
	}
	if names["грудь"] != 1 || names["бицепс"] != 1 {
		t.Errorf("счётчики тегов: %v", names)
	}
}

func TestSetTags_ClearAll(t *testing.T) {
	repo := New(setupTestDB(t))
	exerciseID := makeExercise(t, repo, "Жим")

	if err := repo.Exercise.SetTags(exerciseID, []string{"грудь"}); err != nil {
		t.Fatalf("SetTags: %v", err)
	}
	if err := repo.Exercise.SetTags(exerciseID, nil); err != nil {
		t.Fatalf("сброс тегов: %v", err)
	}

	tags, err := repo.Exercise.GetTags(exerciseID)
	if err != nil {
		t.Fatalf("GetTags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("теги = %v, ожидался пустой список", tags)
	}
}
