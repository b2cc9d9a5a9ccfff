package repository

import (
	"database/sql"
	"testing"

	"github.com/amzubkov/tg-gym/internal/database"
)

// setupTestDB открывает временную базу с применёнными миграциями
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("не удалось открыть тестовую базу: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// makeProgram создаёт программу с dayCount днями и возвращает её ID
func makeProgram(t *testing.T, repo *Repository, name string, dayCount int) int64 {
	t.Helper()

	programID, err := repo.Program.Create(name)
	if err != nil {
		t.Fatalf("создание программы: %v", err)
	}
	for i := 1; i <= dayCount; i++ {
		if _, err := repo.Program.CreateDay(programID, i, ""); err != nil {
			t.Fatalf("создание дня %d: %v", i, err)
		}
	}
	return programID
}

func TestProgramCreate_Duplicate(t *testing.T) {
	repo := New(setupTestDB(t))

	if _, err := repo.Program.Create("PPL"); err != nil {
		t.Fatalf("создание программы: %v", err)
	}
	if _, err := repo.Program.Create("PPL"); err != ErrDuplicate {
		t.Errorf("повторное создание: err = %v, ожидался ErrDuplicate", err)
	}
}

func TestDayCreate_DuplicateNumber(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 1)

	if _, err := repo.Program.CreateDay(programID, 1, "Push"); err != ErrDuplicate {
		t.Errorf("день с тем же номером: err = %v, ожидался ErrDuplicate", err)
	}

	// В другой программе тот же номер допустим
	otherID := makeProgram(t, repo, "Full Body", 0)
	if _, err := repo.Program.CreateDay(otherID, 1, ""); err != nil {
		t.Errorf("день 1 в другой программе: %v", err)
	}
}

func TestProgramDelete_CascadesDays(t *testing.T) {
	repo := New(setupTestDB(t))
	programID := makeProgram(t, repo, "PPL", 3)

	if err := repo.Program.Delete(programID); err != nil {
		t.Fatalf("удаление программы: %v", err)
	}

	days, err := repo.Program.GetDays(programID)
	if err != nil {
		t.Fatalf("чтение дней: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("после удаления программы осталось %d дней", len(days))
	}

	if _, err := repo.Program.GetByID(programID); err != ErrNotFound {
		t.Errorf("GetByID удалённой программы: err = %v, ожидался ErrNotFound", err)
	}
}
