package spaces

import (
	"context"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, filter domain.SpacesFilter) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) (*domain.Space, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
