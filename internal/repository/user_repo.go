package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amzubkov/tg-gym/internal/models"
)

// UserRepository работает со списком доступа и одноразовыми кодами
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт репозиторий пользователей
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// IsAllowed проверяет, есть ли пользователь в списке доступа
func (r *UserRepository) IsAllowed(userID int64) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM allowed_users WHERE user_id = ?", userID,
	).Scan(&count)
	return count > 0, err
}

// Add добавляет пользователя в список доступа
func (r *UserRepository) Add(userID int64, username, fullName string) error {
	_, err := r.db.Exec(
		`INSERT INTO allowed_users (user_id, username, full_name)
		 VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET username = excluded.username, full_name = excluded.full_name`,
		userID, username, fullName,
	)
	return err
}

// Remove убирает пользователя из списка доступа
func (r *UserRepository) Remove(userID int64) error {
	res, err := r.db.Exec("DELETE FROM allowed_users WHERE user_id = ?", userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAll возвращает всех одобренных пользователей
func (r *UserRepository) GetAll() ([]models.AllowedUser, error) {
	rows, err := r.db.Query(
		`SELECT user_id, COALESCE(username, ''), COALESCE(full_name, ''), approved_at
		 FROM allowed_users ORDER BY approved_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.AllowedUser
	for rows.Next() {
		var u models.AllowedUser
		if err := rows.Scan(&u.UserID, &u.Username, &u.FullName, &u.ApprovedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateInviteCode создаёт одноразовый код доступа
func (r *UserRepository) CreateInviteCode() (string, error) {
	// первых восьми знаков uuid достаточно, код вводится руками
	code := strings.Split(uuid.New().String(), "-")[0]
	_, err := r.db.Exec("INSERT INTO access_codes (code) VALUES (?)", code)
	if err != nil {
		return "", err
	}
	return code, nil
}

// RedeemInviteCode погашает одноразовый код. Возвращает ErrNotFound,
// если кода нет или он уже использован.
func (r *UserRepository) RedeemInviteCode(code string, userID int64) error {
	res, err := r.db.Exec(
		`UPDATE access_codes SET used_by = ?, used_at = ?
		 WHERE code = ? AND used_by IS NULL`,
		userID, time.Now(), strings.TrimSpace(code),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetUnusedInviteCodes возвращает непогашенные коды с датами выдачи
func (r *UserRepository) GetUnusedInviteCodes() ([]models.InviteCode, error) {
	rows, err := r.db.Query(
		"SELECT code, created_at FROM access_codes WHERE used_by IS NULL ORDER BY created_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []models.InviteCode
	for rows.Next() {
		var c models.InviteCode
		if err := rows.Scan(&c.Code, &c.CreatedAt); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// GetUser возвращает пользователя из списка доступа
func (r *UserRepository) GetUser(userID int64) (*models.AllowedUser, error) {
	var u models.AllowedUser
	err := r.db.QueryRow(
		`SELECT user_id, COALESCE(username, ''), COALESCE(full_name, ''), approved_at
		 FROM allowed_users WHERE user_id = ?`, userID,
	).Scan(&u.UserID, &u.Username, &u.FullName, &u.ApprovedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
