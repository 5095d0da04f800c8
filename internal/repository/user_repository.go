package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pollishmaster/travel-photobook/internal/model"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert создает пользователя или обновляет email и имя существующего.
// Вызывается при первом аутентифицированном действии пользователя.
func (r *UserRepository) Upsert(user *model.User) error {
	_, err := r.db.Exec(`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)
	                     ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name`,
		user.ID, user.Email, user.Name)
	if err != nil {
		return fmt.Errorf("не удалось сохранить пользователя: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
