package availability

import (
	"context"
	"fmt"
	"time"
)

// Engine движок разрешения доступности.
// Stateless, безопасен для конкурентных вызовов. Движок не даёт
// транзакционной гарантии между проверкой и записью бронирования:
// авторитетная защита от двойного бронирования - exclusion constraint
// в БД, проверка движка нужна для человекочитаемых отказов.
type Engine struct {
	rules        RuleStore
	exceptions   ExceptionStore
	reservations ReservationStore
	logger       Logger
}

// NewEngine создает новый экземпляр движка доступности
func NewEngine(rules RuleStore, exceptions ExceptionStore, reservations ReservationStore, logger Logger) *Engine {
	return &Engine{
		rules:        rules,
		exceptions:   exceptions,
		reservations: reservations,
		logger:       logger,
	}
}

// CheckAvailability решает, можно ли забронировать помещение на интервал
// [start, end). excludeID исключает из проверки пересечений само
// обновляемое бронирование.
//
// Окно привязывается к календарной дате start и сравнивается полными
// instants, поэтому окна через полночь (открытие 22:00, закрытие 03:00)
// обрабатываются корректно: запрос 23:00-01:00 проходит.
func (e *Engine) CheckAvailability(ctx context.Context, spaceID int64, start, end time.Time, excludeID *int64) (*Decision, error) {
	hours, err := e.ResolveOperatingHours(ctx, spaceID, start)
	if err != nil {
		e.logger.Error("CheckAvailability - resolve operating hours failed: space %d: %v", spaceID, err)
		return nil, fmt.Errorf("check availability: %w", err)
	}

	switch hours.Resolution {
	case ResolutionClosed:
		return notAvailable(MsgClosedByException, CategoryUnprocessable), nil
	case ResolutionNotDefined:
		return notAvailable(MsgNoRulesDefined, CategoryUnprocessable), nil
	}

	openAt, closeAt, err := hours.windowInstants(start)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	if start.Before(openAt) || end.After(closeAt) {
		if hours.FromException {
			return notAvailable(MsgOutsideSpecialHours, CategoryUnprocessable), nil
		}
		return notAvailable(MsgOutsideOperatingHours, CategoryUnprocessable), nil
	}

	overlaps, err := e.reservations.ExistsOverlap(ctx, spaceID, start, end, excludeID)
	if err != nil {
		e.logger.Error("CheckAvailability - overlap lookup failed: space %d: %v", spaceID, err)
		return nil, fmt.Errorf("check availability: exists overlap: %w", err)
	}
	if overlaps {
		return notAvailable(MsgAlreadyBooked, CategoryConflict), nil
	}

	return available(), nil
}
