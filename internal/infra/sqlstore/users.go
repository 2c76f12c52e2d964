package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nydiokar/Gary/internal/domain"
)

type userRepo struct {
	tx *sql.Tx
}

func (r *userRepo) Get(id string) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.tx.QueryRow(`SELECT user_id, name, role, created_at FROM Users WHERE user_id = ?`, id).
		Scan(&u.ID, &u.Name, &role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user %s: %w", id, err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}

func (r *userRepo) Create(user *domain.User) error {
	_, err := r.tx.Exec(`INSERT INTO Users (user_id, name, role, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Name, string(user.Role), utc(user.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.ID, err)
	}
	return nil
}
