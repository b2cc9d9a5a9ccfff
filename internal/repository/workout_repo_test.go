package repository

import (
	"testing"
)

// makeExercise создаёт упражнение и привязывает его к дню программы
func makeExercise(t *testing.T, repo *Repository, name string) int64 {
	t.Helper()

	exerciseID, err := repo.Exercise.Create(name, "", "", 10)
	if err != nil {
		t.Fatalf("создание упражнения: %v", err)
	}
	return exerciseID
}

func TestLogSets_Numbering(t *testing.T) {
	repo := New(setupTestDB(t))
	exerciseID := makeExercise(t, repo, "Жим лежа")

	// Три подхода в пустой день получают номера 1, 2, 3
	if err := repo.Workout.LogSets(testUserID, exerciseID, 90, 15, 3, "2026-08-01"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}

	logs, err := repo.Workout.GetLastWorkout(testUserID, exerciseID)
	if err != nil {
		t.Fatalf("GetLastWorkout: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("записано %d подходов, ожидалось 3", len(logs))
	}
	for i, log := range logs {
		if log.SetNum != i+1 {
			t.Errorf("подход %d: set_num = %d, ожидался %d", i, log.SetNum, i+1)
		}
		if log.Weight != 90 || log.Reps != 15 {
			t.Errorf("подход %d: %v кг × %d, ожидалось 90 × 15", i, log.Weight, log.Reps)
		}
	}

	// Следующая запись в тот же день продолжает нумерацию
	if err := repo.Workout.LogSets(testUserID, exerciseID, 95, 12, 1, "2026-08-01"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}
	logs, err = repo.Workout.GetLastWorkout(testUserID, exerciseID)
	if err != nil {
		t.Fatalf("GetLastWorkout: %v", err)
	}
	if len(logs) != 4 || logs[3].SetNum != 4 {
		t.Errorf("после дозаписи %d подходов, последний set_num = %d, ожидалось 4 и 4",
			len(logs), logs[len(logs)-1].SetNum)
	}
}

func TestLogSets_GapsAfterDelete(t *testing.T) {
	repo := New(setupTestDB(t))
	exerciseID := makeExercise(t, repo, "Присед")

	if err := repo.Workout.LogSets(testUserID, exerciseID, 100, 5, 3, "2026-08-01"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}

	logs, err := repo.Workout.GetLastWorkout(testUserID, exerciseID)
	if err != nil {
		t.Fatalf("GetLastWorkout: %v", err)
	}

	// Удаляем второй подход: оставшиеся не перенумеровываются
	if err := repo.Workout.DeleteLog(logs[1].ID, testUserID); err != nil {
		t.Fatalf("DeleteLog: %v", err)
	}

	logs, err = repo.Workout.GetLastWorkout(testUserID, exerciseID)
	if err != nil {
		t.Fatalf("GetLastWorkout: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("осталось %d подходов, ожидалось 2", len(logs))
	}
	if logs[0].SetNum != 1 || logs[1].SetNum != 3 {
		t.Errorf("номера подходов %d, %d — ожидались 1, 3 (пропуск сохраняется)",
			logs[0].SetNum, logs[1].SetNum)
	}
}

func TestDeleteLog_OnlyOwnRows(t *testing.T) {
	repo := New(setupTestDB(t))
	exerciseID := makeExercise(t, repo, "Тяга")

	if err := repo.Workout.LogSets(testUserID, exerciseID, 80, 10, 1, "2026-08-01"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}
	logs, err := repo.Workout.GetLastWorkout(testUserID, exerciseID)
	if err != nil {
		t.Fatalf("GetLastWorkout: %v", err)
	}

	otherUser := testUserID + 1
	if err := repo.Workout.DeleteLog(logs[0].ID, otherUser); err != ErrNotFound {
		t.Errorf("удаление чужой записи: err = %v, ожидался ErrNotFound", err)
	}
}

func TestExerciseDelete_CascadesLogs(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 1)
	days, _ := repo.Program.GetDays(programID)
	exerciseID := makeExercise(t, repo, "Жим")

	if err := repo.Exercise.AddToDay(exerciseID, days[0].ID); err != nil {
		t.Fatalf("AddToDay: %v", err)
	}
	if err := repo.Workout.LogSets(testUserID, exerciseID, 60, 10, 2, "2026-08-01"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}

	if err := repo.Exercise.Delete(exerciseID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.Exercise.GetByID(exerciseID); err != ErrNotFound {
		t.Errorf("GetByID удалённого упражнения: err = %v, ожидался ErrNotFound", err)
	}

	dayExercises, err := repo.Exercise.GetByDay(days[0].ID)
	if err != nil {
		t.Fatalf("GetByDay: %v", err)
	}
	if len(dayExercises) != 0 {
		t.Errorf("в дне осталось %d упражнений, ожидалось 0", len(dayExercises))
	}

	history, err := repo.Workout.GetHistory(testUserID, exerciseID, 10)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("осталось %d логов удалённого упражнения", len(history))
	}
}

func TestCustomLogs(t *testing.T) {
	repo := New(setupTestDB(t))

	if err := repo.Workout.LogCustomSets(testUserID, "жим лежа", 90, 15, 4, "2026-08-01"); err != nil {
		t.Fatalf("LogCustomSets: %v", err)
	}
	if err := repo.Workout.LogCustomCardio(testUserID, "бег", 50, "2026-08-01"); err != nil {
		t.Fatalf("LogCustomCardio: %v", err)
	}

	logs, err := repo.Workout.GetTodayCustom(testUserID, "2026-08-01")
	if err != nil {
		t.Fatalf("GetTodayCustom: %v", err)
	}
	if len(logs) != 5 {
		t.Fatalf("записей за день %d, ожидалось 5", len(logs))
	}

	// Нумерация силовых подходов идёт по названию
	for i := 0; i < 4; i++ {
		if logs[i].SetNum != i+1 {
			t.Errorf("подход %d: set_num = %d, ожидался %d", i, logs[i].SetNum, i+1)
		}
	}

	cardio := logs[4]
	if cardio.Name != "бег" || cardio.DurationMinutes != 50 {
		t.Errorf("кардио = %q %d мин, ожидалось бег 50 мин", cardio.Name, cardio.DurationMinutes)
	}
}

func TestGetCustomHistory(t *testing.T) {
	repo := New(setupTestDB(t))

	if err := repo.Workout.LogCustomSets(testUserID, "жим лежа", 90, 15, 1, "2026-08-01"); err != nil {
		t.Fatalf("LogCustomSets: %v", err)
	}
	if err := repo.Workout.LogCustomCardio(testUserID, "бег", 50, "2026-08-02"); err != nil {
		t.Fatalf("LogCustomCardio: %v", err)
	}
	// Чужие записи в историю не попадают
	if err := repo.Workout.LogCustomCardio(testUserID+1, "ходьба", 30, "2026-08-02"); err != nil {
		t.Fatalf("LogCustomCardio: %v", err)
	}

	logs, err := repo.Workout.GetCustomHistory(testUserID, 50)
	if err != nil {
		t.Fatalf("GetCustomHistory: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("записей %d, ожидалось 2", len(logs))
	}

	// Свежие даты первыми
	if logs[0].Name != "бег" || logs[0].Date != "2026-08-02" {
		t.Errorf("первая запись %q %s, ожидался бег 2026-08-02", logs[0].Name, logs[0].Date)
	}
	if logs[1].Name != "жим лежа" {
		t.Errorf("вторая запись %q, ожидался жим лежа", logs[1].Name)
	}

	logs, err = repo.Workout.GetCustomHistory(testUserID, 1)
	if err != nil {
		t.Fatalf("GetCustomHistory с лимитом: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("записей с лимитом 1: %d", len(logs))
	}
}

func TestUserStats(t *testing.T) {
	repo := New(setupTestDB(t))
	exerciseID := makeExercise(t, repo, "Жим")

	if err := repo.Workout.LogSets(testUserID, exerciseID, 60, 10, 2, "2026-08-01"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}
	if err := repo.Workout.LogSets(testUserID, exerciseID, 60, 10, 1, "2026-08-02"); err != nil {
		t.Fatalf("LogSets: %v", err)
	}
	if err := repo.Workout.LogCustomCardio(testUserID, "бег", 30, "2026-08-02"); err != nil {
		t.Fatalf("LogCustomCardio: %v", err)
	}

	stats, err := repo.Workout.GetUserStats(testUserID)
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, ожидалось 2 (уникальные дни)", stats.TotalWorkouts)
	}
	if stats.TotalSets != 4 {
		t.Errorf("TotalSets = %d, ожидалось 4", stats.TotalSets)
	}
}
