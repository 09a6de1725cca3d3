package get_available_slots

import (
	"context"
	"time"

	"github.com/kmosk/space-reservation-service/internal/availability"
	"github.com/kmosk/space-reservation-service/internal/domain"
)

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// AvailabilityEngine интерфейс движка разрешения доступности
type AvailabilityEngine interface {
	ListAvailableSlots(ctx context.Context, spaceID int64, slotDurationMinutes int, horizonStart, horizonEnd time.Time) ([]availability.DaySlots, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
