package get_space

import (
	"context"

	"github.com/kmosk/space-reservation-service/internal/service/spaces/models"
)

// SpaceService интерфейс сервиса помещений
type SpaceService interface {
	GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
