package repository

import (
	"testing"

	"github.com/amzubkov/tg-gym/internal/models"
)

const testUserID = int64(100500)

func TestSetProgram_ResetsProgress(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 3)

	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("SetProgram: %v", err)
	}

	// Продвигаемся на день вперёд, потом выбираем программу заново
	if _, err := repo.Progress.CompleteDay(testUserID, "2026-08-01"); err != nil {
		t.Fatalf("CompleteDay: %v", err)
	}
	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("повторный SetProgram: %v", err)
	}

	p, err := repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressInProgress {
		t.Errorf("State = %v, ожидался InProgress", p.State)
	}
	if p.CurrentDayNum != 1 {
		t.Errorf("CurrentDayNum = %d, ожидался 1", p.CurrentDayNum)
	}
	if p.LastCompletedDate != "" {
		t.Errorf("LastCompletedDate = %q, ожидалась пустая", p.LastCompletedDate)
	}
}

func TestSetProgram_EmptyProgram(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "Пустая", 0)

	if err := repo.Progress.SetProgram(testUserID, programID); err != ErrNoDays {
		t.Errorf("SetProgram пустой программы: err = %v, ожидался ErrNoDays", err)
	}

	p, err := repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressNone {
		t.Errorf("State = %v, ожидался None", p.State)
	}
}

func TestCompleteDay_FullCycle(t *testing.T) {
	const days = 3
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", days)

	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("SetProgram: %v", err)
	}

	// N-1 завершений оставляют пользователя на последнем дне
	for i := 0; i < days-1; i++ {
		status, err := repo.Progress.CompleteDay(testUserID, "2026-08-01")
		if err != nil {
			t.Fatalf("CompleteDay %d: %v", i+1, err)
		}
		if status != models.CompleteDayAdvanced {
			t.Fatalf("CompleteDay %d: status = %v, ожидался Advanced", i+1, status)
		}
	}

	p, err := repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressInProgress || p.CurrentDayNum != days {
		t.Errorf("после N-1 завершений: state = %v, день %d, ожидался InProgress день %d",
			p.State, p.CurrentDayNum, days)
	}

	// N-е завершение заканчивает программу
	status, err := repo.Progress.CompleteDay(testUserID, "2026-08-02")
	if err != nil {
		t.Fatalf("последний CompleteDay: %v", err)
	}
	if status != models.CompleteDayFinished {
		t.Errorf("status = %v, ожидался Finished", status)
	}

	p, err = repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressFinished {
		t.Errorf("State = %v, ожидался Finished", p.State)
	}
	if p.LastCompletedDate != "2026-08-02" {
		t.Errorf("LastCompletedDate = %q, ожидалась 2026-08-02", p.LastCompletedDate)
	}

	// Дальше двигаться некуда
	status, err = repo.Progress.CompleteDay(testUserID, "2026-08-03")
	if err != nil {
		t.Fatalf("CompleteDay после финиша: %v", err)
	}
	if status != models.CompleteDayNoProgram {
		t.Errorf("после финиша status = %v, ожидался NoProgram", status)
	}
}

func TestCompleteDay_NoProgram(t *testing.T) {
	repo := New(setupTestDB(t))

	status, err := repo.Progress.CompleteDay(testUserID, "2026-08-01")
	if err != nil {
		t.Fatalf("CompleteDay: %v", err)
	}
	if status != models.CompleteDayNoProgram {
		t.Errorf("status = %v, ожидался NoProgram", status)
	}
}

func TestCompleteDay_ProgramDeletedUnderneath(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 3)

	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("SetProgram: %v", err)
	}
	if err := repo.Program.Delete(programID); err != nil {
		t.Fatalf("удаление программы: %v", err)
	}

	// Программа исчезла — пользователь без программы, не падаем
	status, err := repo.Progress.CompleteDay(testUserID, "2026-08-01")
	if err != nil {
		t.Fatalf("CompleteDay: %v", err)
	}
	if status != models.CompleteDayNoProgram {
		t.Errorf("status = %v, ожидался NoProgram", status)
	}

	p, err := repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressNone {
		t.Errorf("State = %v, ожидался None", p.State)
	}
}

func TestSetProgram_RestartAfterFinish(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 1)

	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("SetProgram: %v", err)
	}
	if _, err := repo.Progress.CompleteDay(testUserID, "2026-08-01"); err != nil {
		t.Fatalf("CompleteDay: %v", err)
	}

	// Перевыбор той же программы начинает её заново
	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("перевыбор программы: %v", err)
	}

	p, err := repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressInProgress || p.CurrentDayNum != 1 {
		t.Errorf("state = %v, день %d, ожидался InProgress день 1", p.State, p.CurrentDayNum)
	}
}

func TestClearProgress(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 2)

	if err := repo.Progress.SetProgram(testUserID, programID); err != nil {
		t.Fatalf("SetProgram: %v", err)
	}
	if err := repo.Progress.Clear(testUserID); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	p, err := repo.Progress.Get(testUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.State != models.ProgressNone {
		t.Errorf("State = %v, ожидался None", p.State)
	}
}
