package models

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// TokenResponse ответ с access-токеном
type TokenResponse struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// UserResponse пользователь в ответе сервиса
type UserResponse struct {
	ID        int64
	Name      string
	Email     string
	RoleID    domain.RoleID
	CreatedAt time.Time
}

// FromDomainUser конвертирует доменную модель в ответ сервиса
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
}
