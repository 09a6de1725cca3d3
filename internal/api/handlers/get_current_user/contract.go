package get_current_user

import (
	"context"

	"github.com/kmosk/space-reservation-service/internal/service/auth/models"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	CurrentUser(ctx context.Context, userID int64) (*models.UserResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
