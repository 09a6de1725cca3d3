package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	exceptionrepo "github.com/kmosk/space-reservation-service/internal/infra/storage/exception"
	rulerepo "github.com/kmosk/space-reservation-service/internal/infra/storage/rule"
	"github.com/kmosk/space-reservation-service/pkg/types"
)

// Resolution исход разрешения рабочих часов на дату
type Resolution int

const (
	// ResolutionOpen помещение открыто, окно задано в Open/Close
	ResolutionOpen Resolution = iota
	// ResolutionClosed помещение закрыто исключением на эту дату
	ResolutionClosed
	// ResolutionNotDefined расписание на этот день не задано
	ResolutionNotDefined
)

// OperatingHours разрешённое рабочее окно помещения на конкретную дату.
// FromException == true означает, что окно пришло из override-исключения,
// а не из недельного правила (влияет на текст отказа).
type OperatingHours struct {
	Resolution    Resolution
	Open          types.TimeString
	Close         types.TimeString
	FromException bool
}

// ResolveOperatingHours разрешает рабочие часы помещения на дату.
// Порядок приоритета строгий:
//  1. исключение на дату (своё помещение выше дефолтного): закрыто - стоп;
//     оба override-времени заданы - окно из них, недельные правила
//     не читаются вообще
//  2. инертное исключение (не закрыто, без полного окна) проваливается
//     к недельным правилам
//  3. активное недельное правило (своё помещение выше дефолтного)
//  4. ничего не найдено - NotDefined
func (e *Engine) ResolveOperatingHours(ctx context.Context, spaceID int64, date time.Time) (*OperatingHours, error) {
	exc, err := e.exceptions.FindForDate(ctx, spaceID, date)
	if err != nil && !errors.Is(err, exceptionrepo.ErrExceptionNotFound) {
		return nil, fmt.Errorf("resolve operating hours: find exception: %w", err)
	}

	if exc != nil {
		if exc.IsClosed {
			return &OperatingHours{Resolution: ResolutionClosed, FromException: true}, nil
		}
		if exc.HasOverrideWindow() {
			return &OperatingHours{
				Resolution:    ResolutionOpen,
				Open:          *exc.OverrideOpenTime,
				Close:         *exc.OverrideCloseTime,
				FromException: true,
			}, nil
		}
		// инертное исключение, идём к недельным правилам
	}

	rule, err := e.rules.FindActiveRule(ctx, spaceID, dayOfWeek(date))
	if errors.Is(err, rulerepo.ErrRuleNotFound) {
		return &OperatingHours{Resolution: ResolutionNotDefined}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve operating hours: find rule: %w", err)
	}

	return &OperatingHours{
		Resolution: ResolutionOpen,
		Open:       rule.OpenTime,
		Close:      rule.CloseTime,
	}, nil
}

// dayOfWeek возвращает день недели в нумерации расписания (воскресенье = 0)
func dayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// windowInstants привязывает окно к календарной дате, возвращая полные
// instants открытия и закрытия. Если закрытие не позже открытия, окно
// считается переходящим через полночь и закрытие сдвигается на следующий день.
func (h *OperatingHours) windowInstants(date time.Time) (openAt, closeAt time.Time, err error) {
	openAt, err = h.Open.AtDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window open time: %w", err)
	}
	closeAt, err = h.Close.AtDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window close time: %w", err)
	}
	if !closeAt.After(openAt) {
		closeAt = closeAt.AddDate(0, 0, 1)
	}
	return openAt, closeAt, nil
}
