package service

import (
	"github.com/pollishmaster/travel-photobook/internal/model"
	"github.com/pollishmaster/travel-photobook/internal/repository"
)

// AuthService отвечает за сопоставление внешней личности (subject провайдера
// аутентификации) с записью пользователя в нашей базе.
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// EnsureUser создает запись пользователя при первом обращении или обновляет
// email и имя существующей. Возвращает актуального пользователя.
func (s *AuthService) EnsureUser(id, email, name string) (*model.User, error) {
	user := &model.User{ID: id, Email: email, Name: name}
	if err := s.userRepo.Upsert(user); err != nil {
		return nil, err
	}
	return user, nil
}
