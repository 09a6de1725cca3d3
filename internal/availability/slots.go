package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/kmosk/space-reservation-service/pkg/types"
)

// Slot свободный слот бронирования
type Slot struct {
	Start     time.Time
	End       time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DaySlots свободные слоты одного календарного дня.
// Дни без единого свободного слота в выдачу не попадают.
type DaySlots struct {
	Date      time.Time
	DayOfWeek int
	Slots     []Slot
}

// ListAvailableSlots перечисляет свободные слоты помещения по дням
// горизонта [horizonStart, horizonEnd] (обе даты включительно).
//
// Для каждого дня рабочее окно разрешается один раз; закрытые дни и дни
// без расписания пропускаются целиком. Слоты нарезаются от открытия с
// шагом slotDurationMinutes; неполный хвостовой слот, вылезающий за
// закрытие, не выдаётся. Попадание в окно гарантировано самой нарезкой,
// поэтому на слот остаётся только проверка пересечений. Окно через
// полночь нарезается целиком от даты своего открытия: слоты после
// полуночи принадлежат дню открытия, расписание следующего дня на них
// не влияет.
//
// Стоимость - O(дней × слотов в дне) запросов пересечений; для горизонта
// в месяц приемлемо. TODO: при расширении горизонта выбирать бронирования
// одним запросом на весь диапазон и пересекать в памяти.
func (e *Engine) ListAvailableSlots(ctx context.Context, spaceID int64, slotDurationMinutes int, horizonStart, horizonEnd time.Time) ([]DaySlots, error) {
	if slotDurationMinutes <= 0 {
		return nil, fmt.Errorf("list available slots: non-positive slot duration %d", slotDurationMinutes)
	}

	slotDuration := time.Duration(slotDurationMinutes) * time.Minute
	startDay := truncateToDay(horizonStart)
	endDay := truncateToDay(horizonEnd)

	days := make([]DaySlots, 0)
	for date := startDay; !date.After(endDay); date = date.AddDate(0, 0, 1) {
		hours, err := e.ResolveOperatingHours(ctx, spaceID, date)
		if err != nil {
			return nil, fmt.Errorf("list available slots: %w", err)
		}
		if hours.Resolution != ResolutionOpen {
			continue
		}

		openAt, closeAt, err := hours.windowInstants(date)
		if err != nil {
			return nil, fmt.Errorf("list available slots: %w", err)
		}

		slots := make([]Slot, 0)
		for current := openAt; current.Before(closeAt); current = current.Add(slotDuration) {
			slotEnd := current.Add(slotDuration)
			if slotEnd.After(closeAt) {
				break
			}

			overlaps, err := e.reservations.ExistsOverlap(ctx, spaceID, current, slotEnd, nil)
			if err != nil {
				e.logger.Error("ListAvailableSlots - overlap lookup failed: space %d: %v", spaceID, err)
				return nil, fmt.Errorf("list available slots: exists overlap: %w", err)
			}
			if overlaps {
				continue
			}

			slots = append(slots, Slot{
				Start:     current,
				End:       slotEnd,
				StartTime: types.NewTimeString(current),
				EndTime:   types.NewTimeString(slotEnd),
			})
		}

		if len(slots) == 0 {
			continue
		}

		days = append(days, DaySlots{
			Date:      date,
			DayOfWeek: dayOfWeek(date),
			Slots:     slots,
		})
	}

	return days, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
