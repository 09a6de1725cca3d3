package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmosk/space-reservation-service/internal/domain"
	"github.com/kmosk/space-reservation-service/pkg/ptr"
	"github.com/kmosk/space-reservation-service/pkg/types"
)

func TestListAvailableSlots_SingleDay(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "12:00")},
		nil, nil,
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, monday)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, monday, days[0].Date)
	assert.Equal(t, 1, days[0].DayOfWeek)
	require.Len(t, days[0].Slots, 4)
	assert.Equal(t, types.TimeString("08:00"), days[0].Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), days[0].Slots[0].EndTime)
	assert.Equal(t, at(monday, 8, 0), days[0].Slots[0].Start)
	assert.Equal(t, types.TimeString("11:00"), days[0].Slots[3].StartTime)
	assert.Equal(t, types.TimeString("12:00"), days[0].Slots[3].EndTime)
}

func TestListAvailableSlots_NoPartialTrailingSlot(t *testing.T) {
	// окно 08:00-12:30, слоты по 60 минут: хвостовые полчаса не выдаются
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "12:30")},
		nil, nil,
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, monday)

	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 4)
	last := days[0].Slots[3]
	assert.Equal(t, types.TimeString("12:00"), last.EndTime)
	closeAt := at(monday, 12, 30)
	for _, slot := range days[0].Slots {
		assert.False(t, slot.End.After(closeAt))
	}
}

func TestListAvailableSlots_BookedSlotsFiltered(t *testing.T) {
	existing := &domain.Reservation{
		ID:       1,
		SpaceID:  1,
		StartsAt: at(monday, 9, 0),
		EndsAt:   at(monday, 10, 0),
		Type:     domain.TypeClient,
	}
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "12:00")},
		nil,
		[]*domain.Reservation{existing},
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, monday)

	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 3)
	starts := []types.TimeString{
		days[0].Slots[0].StartTime,
		days[0].Slots[1].StartTime,
		days[0].Slots[2].StartTime,
	}
	assert.Equal(t, []types.TimeString{"08:00", "10:00", "11:00"}, starts)
}

func TestListAvailableSlots_FullyBookedDayOmitted(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	existing := &domain.Reservation{
		ID:       1,
		SpaceID:  1,
		StartsAt: at(monday, 8, 0),
		EndsAt:   at(monday, 10, 0),
		Type:     domain.TypeBlock,
	}
	engine := newTestEngine(
		[]*domain.AvailabilityRule{
			weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "10:00"),
			weeklyRule(ptr.Ptr(int64(1)), 2, "08:00", "10:00"),
		},
		nil,
		[]*domain.Reservation{existing},
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, tuesday)

	require.NoError(t, err)
	// понедельник полностью занят и не попадает в выдачу
	require.Len(t, days, 1)
	assert.Equal(t, tuesday, days[0].Date)
}

func TestListAvailableSlots_ClosedAndUndefinedDaysSkipped(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)
	engine := newTestEngine(
		[]*domain.AvailabilityRule{
			weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "10:00"),
			weeklyRule(ptr.Ptr(int64(1)), 2, "08:00", "10:00"),
			// на среду (3) правила нет
		},
		[]*domain.DateException{{SpaceID: ptr.Ptr(int64(1)), Date: tuesday, IsClosed: true}},
		nil,
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, wednesday)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, monday, days[0].Date)
}

func TestListAvailableSlots_OverrideWindowUsed(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		[]*domain.DateException{{
			SpaceID:           ptr.Ptr(int64(1)),
			Date:              monday,
			OverrideOpenTime:  ptr.Ptr(types.TimeString("09:00")),
			OverrideCloseTime: ptr.Ptr(types.TimeString("11:00")),
		}},
		nil,
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, monday)

	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), days[0].Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), days[0].Slots[1].EndTime)
}

func TestListAvailableSlots_MidnightSpanningWindow(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "22:00", "02:00")},
		nil, nil,
	)

	days, err := engine.ListAvailableSlots(context.Background(), 1, 60, monday, monday)

	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 4)
	assert.Equal(t, types.TimeString("22:00"), days[0].Slots[0].StartTime)
	// последний слот переваливает через полночь на следующий календарный день
	last := days[0].Slots[3]
	assert.Equal(t, types.TimeString("01:00"), last.StartTime)
	assert.Equal(t, types.TimeString("02:00"), last.EndTime)
	assert.Equal(t, monday.Day()+1, last.End.Day())
}

func TestListAvailableSlots_InvalidDuration(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	_, err := engine.ListAvailableSlots(context.Background(), 1, 0, monday, monday)

	assert.Error(t, err)
}
