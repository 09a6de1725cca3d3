package register

import (
	"context"

	"github.com/kmosk/space-reservation-service/internal/service/auth/models"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
