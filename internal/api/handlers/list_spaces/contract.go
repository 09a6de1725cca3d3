package list_spaces

import (
	"context"

	"github.com/kmosk/space-reservation-service/internal/service/spaces/models"
)

// SpaceService интерфейс сервиса помещений
type SpaceService interface {
	List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
