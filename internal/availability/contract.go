package availability

import (
	"context"
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// RuleStore интерфейс репозитория правил расписания.
// Реализация обязана выполнять двухуровневый поиск: сначала правило
// конкретного помещения, затем правило по умолчанию (space_id IS NULL).
// Если правил нет, возвращает rule.ErrRuleNotFound.
type RuleStore interface {
	FindActiveRule(ctx context.Context, spaceID int64, dayOfWeek int) (*domain.AvailabilityRule, error)
}

// ExceptionStore интерфейс репозитория исключений расписания.
// Тот же двухуровневый приоритет, что и у правил.
// Если исключений нет, возвращает exception.ErrExceptionNotFound.
type ExceptionStore interface {
	FindForDate(ctx context.Context, spaceID int64, date time.Time) (*domain.DateException, error)
}

// ReservationStore интерфейс репозитория бронирований
type ReservationStore interface {
	ExistsOverlap(ctx context.Context, spaceID int64, start, end time.Time, excludeID *int64) (bool, error)
}

// Logger интерфейс логгера
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
