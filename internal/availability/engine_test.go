package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmosk/space-reservation-service/internal/domain"
	exceptionrepo "github.com/kmosk/space-reservation-service/internal/infra/storage/exception"
	rulerepo "github.com/kmosk/space-reservation-service/internal/infra/storage/rule"
	"github.com/kmosk/space-reservation-service/pkg/ptr"
	"github.com/kmosk/space-reservation-service/pkg/types"
)

// fakeRuleStore in-memory реализация RuleStore с тем же двухуровневым
// приоритетом, что и у настоящего репозитория
type fakeRuleStore struct {
	rules []*domain.AvailabilityRule
}

func (s *fakeRuleStore) FindActiveRule(_ context.Context, spaceID int64, dayOfWeek int) (*domain.AvailabilityRule, error) {
	for _, r := range s.rules {
		if r.IsActive && r.DayOfWeek == dayOfWeek && r.SpaceID != nil && *r.SpaceID == spaceID {
			return r, nil
		}
	}
	for _, r := range s.rules {
		if r.IsActive && r.DayOfWeek == dayOfWeek && r.SpaceID == nil {
			return r, nil
		}
	}
	return nil, rulerepo.ErrRuleNotFound
}

type fakeExceptionStore struct {
	exceptions []*domain.DateException
}

func (s *fakeExceptionStore) FindForDate(_ context.Context, spaceID int64, date time.Time) (*domain.DateException, error) {
	sameDate := func(e *domain.DateException) bool {
		return e.Date.Format(domain.DateFormat) == date.Format(domain.DateFormat)
	}
	for _, e := range s.exceptions {
		if sameDate(e) && e.SpaceID != nil && *e.SpaceID == spaceID {
			return e, nil
		}
	}
	for _, e := range s.exceptions {
		if sameDate(e) && e.SpaceID == nil {
			return e, nil
		}
	}
	return nil, exceptionrepo.ErrExceptionNotFound
}

type fakeReservationStore struct {
	reservations []*domain.Reservation
}

func (s *fakeReservationStore) ExistsOverlap(_ context.Context, spaceID int64, start, end time.Time, excludeID *int64) (bool, error) {
	for _, r := range s.reservations {
		if r.SpaceID != spaceID {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestEngine(rules []*domain.AvailabilityRule, exceptions []*domain.DateException, reservations []*domain.Reservation) *Engine {
	return NewEngine(
		&fakeRuleStore{rules: rules},
		&fakeExceptionStore{exceptions: exceptions},
		&fakeReservationStore{reservations: reservations},
		nopLogger{},
	)
}

// monday 2026-09-07 - понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func weeklyRule(spaceID *int64, dayOfWeek int, open, close types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		SpaceID:   spaceID,
		DayOfWeek: dayOfWeek,
		OpenTime:  open,
		CloseTime: close,
		IsActive:  true,
	}
}

func TestCheckAvailability_NoRulesDefined(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 12, 0), nil)

	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgNoRulesDefined, decision.Message)
	assert.Equal(t, CategoryUnprocessable, decision.Category)
}

func TestCheckAvailability_WithinOperatingHours(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		nil, nil,
	)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 12, 0), nil)

	require.NoError(t, err)
	assert.True(t, decision.Available)
	assert.Equal(t, CategoryOK, decision.Category)
	assert.Empty(t, decision.Message)
}

func TestCheckAvailability_OutsideOperatingHours(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "10:00")},
		nil, nil,
	)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 9, 0), at(monday, 11, 0), nil)

	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgOutsideOperatingHours, decision.Message)
	assert.Equal(t, CategoryUnprocessable, decision.Category)
}

func TestCheckAvailability_ClosedExceptionWinsOverRule(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		[]*domain.DateException{{SpaceID: ptr.Ptr(int64(1)), Date: monday, IsClosed: true}},
		nil,
	)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 12, 0), nil)

	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgClosedByException, decision.Message)
	assert.Equal(t, CategoryUnprocessable, decision.Category)
}

func TestCheckAvailability_OverrideWindowSkipsRuleLookup(t *testing.T) {
	// недельное правило шире окна исключения и не должно читаться вообще
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		[]*domain.DateException{{
			SpaceID:           ptr.Ptr(int64(1)),
			Date:              monday,
			OverrideOpenTime:  ptr.Ptr(types.TimeString("09:00")),
			OverrideCloseTime: ptr.Ptr(types.TimeString("13:00")),
		}},
		nil,
	)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 12, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Available)

	decision, err = engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 14, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgOutsideSpecialHours, decision.Message)
	assert.Equal(t, CategoryUnprocessable, decision.Category)
}

func TestCheckAvailability_InertExceptionFallsThroughToRules(t *testing.T) {
	// исключение без закрытия и без полного окна инертно
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		[]*domain.DateException{{SpaceID: ptr.Ptr(int64(1)), Date: monday}},
		nil,
	)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 12, 0), nil)

	require.NoError(t, err)
	assert.True(t, decision.Available)
}

func TestCheckAvailability_SpaceRuleOverridesDefault(t *testing.T) {
	// дефолтное правило открыто весь день, правило помещения короче
	engine := newTestEngine(
		[]*domain.AvailabilityRule{
			weeklyRule(nil, 1, "00:00", "23:59"),
			weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "10:00"),
		},
		nil, nil,
	)

	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 11, 0), at(monday, 12, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgOutsideOperatingHours, decision.Message)

	// другое помещение без своего правила получает дефолтное
	decision, err = engine.CheckAvailability(context.Background(), 2, at(monday, 11, 0), at(monday, 12, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Available)
}

func TestCheckAvailability_SpaceExceptionOverridesDefault(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(nil, 1, "08:00", "18:00")},
		[]*domain.DateException{
			{SpaceID: nil, Date: monday, IsClosed: true},
			{SpaceID: ptr.Ptr(int64(1)), Date: monday,
				OverrideOpenTime:  ptr.Ptr(types.TimeString("09:00")),
				OverrideCloseTime: ptr.Ptr(types.TimeString("13:00"))},
		},
		nil,
	)

	// помещение 1 работает по своему исключению, несмотря на дефолтное закрытие
	decision, err := engine.CheckAvailability(context.Background(), 1, at(monday, 10, 0), at(monday, 12, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Available)

	// помещение 2 закрыто дефолтным исключением
	decision, err = engine.CheckAvailability(context.Background(), 2, at(monday, 10, 0), at(monday, 12, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgClosedByException, decision.Message)
}

func TestCheckAvailability_HalfOpenOverlap(t *testing.T) {
	existing := &domain.Reservation{
		ID:       10,
		SpaceID:  1,
		StartsAt: at(monday, 10, 0),
		EndsAt:   at(monday, 12, 0),
		Type:     domain.TypeClient,
	}
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		nil,
		[]*domain.Reservation{existing},
	)
	ctx := context.Background()

	// стык концов не считается пересечением
	decision, err := engine.CheckAvailability(ctx, 1, at(monday, 12, 0), at(monday, 14, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Available)

	decision, err = engine.CheckAvailability(ctx, 1, at(monday, 8, 0), at(monday, 10, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Available)

	// сдвиг на минуту внутрь даёт конфликт
	decision, err = engine.CheckAvailability(ctx, 1, at(monday, 11, 59), at(monday, 14, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgAlreadyBooked, decision.Message)
	assert.Equal(t, CategoryConflict, decision.Category)

	decision, err = engine.CheckAvailability(ctx, 1, at(monday, 11, 0), at(monday, 13, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, CategoryConflict, decision.Category)
}

func TestCheckAvailability_ExcludeReservationID(t *testing.T) {
	existing := &domain.Reservation{
		ID:       10,
		SpaceID:  1,
		StartsAt: at(monday, 10, 0),
		EndsAt:   at(monday, 12, 0),
		Type:     domain.TypeClient,
	}
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		nil,
		[]*domain.Reservation{existing},
	)
	ctx := context.Background()

	// обновление бронирования на сдвинутый интервал не конфликтует с самим собой
	decision, err := engine.CheckAvailability(ctx, 1, at(monday, 11, 0), at(monday, 13, 0), ptr.Ptr(int64(10)))
	require.NoError(t, err)
	assert.True(t, decision.Available)

	// но без исключения тот же интервал конфликтует
	decision, err = engine.CheckAvailability(ctx, 1, at(monday, 11, 0), at(monday, 13, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
}

func TestCheckAvailability_WindowSpansMidnight(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "22:00", "03:00")},
		nil, nil,
	)
	ctx := context.Background()

	// интервал через полночь внутри окна
	decision, err := engine.CheckAvailability(ctx, 1, at(monday, 23, 0), at(monday, 25, 0), nil)
	require.NoError(t, err)
	assert.True(t, decision.Available)

	// конец вылезает за закрытие следующего дня
	decision, err = engine.CheckAvailability(ctx, 1, at(monday, 23, 0), at(monday, 28, 0), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
	assert.Equal(t, MsgOutsideOperatingHours, decision.Message)

	// запрос ранним утром разрешается по окну своей даты: окно понедельника
	// начинается в 22:00, поэтому 00:30-01:30 понедельника вне окна
	decision, err = engine.CheckAvailability(ctx, 1, at(monday, 0, 30), at(monday, 1, 30), nil)
	require.NoError(t, err)
	assert.False(t, decision.Available)
}

func TestResolveOperatingHours_ClosedDefaultException(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(nil, 1, "08:00", "18:00")},
		[]*domain.DateException{{SpaceID: nil, Date: monday, IsClosed: true}},
		nil,
	)

	hours, err := engine.ResolveOperatingHours(context.Background(), 5, monday)

	require.NoError(t, err)
	assert.Equal(t, ResolutionClosed, hours.Resolution)
	assert.True(t, hours.FromException)
}

func TestResolveOperatingHours_FromRule(t *testing.T) {
	engine := newTestEngine(
		[]*domain.AvailabilityRule{weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")},
		nil, nil,
	)

	hours, err := engine.ResolveOperatingHours(context.Background(), 1, monday)

	require.NoError(t, err)
	assert.Equal(t, ResolutionOpen, hours.Resolution)
	assert.Equal(t, types.TimeString("08:00"), hours.Open)
	assert.Equal(t, types.TimeString("18:00"), hours.Close)
	assert.False(t, hours.FromException)
}

func TestResolveOperatingHours_InactiveRuleIgnored(t *testing.T) {
	inactive := weeklyRule(ptr.Ptr(int64(1)), 1, "08:00", "18:00")
	inactive.IsActive = false
	engine := newTestEngine([]*domain.AvailabilityRule{inactive}, nil, nil)

	hours, err := engine.ResolveOperatingHours(context.Background(), 1, monday)

	require.NoError(t, err)
	assert.Equal(t, ResolutionNotDefined, hours.Resolution)
}
