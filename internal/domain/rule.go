package domain

import (
	"time"

	"github.com/kmosk/space-reservation-service/pkg/types"
)

// AvailabilityRule weekly recurring operating-hours rule.
// SpaceID == nil means the rule is a default applying to every space that has
// no space-specific rule for the same day of week.
// CloseTime numerically earlier than OpenTime means the window spans midnight
// into the next calendar day (open 22:00, close 03:00).
type AvailabilityRule struct {
	ID        int64
	SpaceID   *int64
	DayOfWeek int // 0-6, воскресенье = 0
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDefault returns true if the rule applies to all spaces
func (r *AvailabilityRule) IsDefault() bool {
	return r.SpaceID == nil
}

// DateException date-specific override of the weekly schedule.
// SpaceID == nil means the exception applies to every space without its own
// exception for the same date. A closed exception wins over everything;
// an exception with both override times set fully replaces the day's window
// and weekly rules are not consulted at all; an exception with neither flag
// nor override times is inert and falls through to the weekly rules.
type DateException struct {
	ID                int64
	SpaceID           *int64
	Date              time.Time // только календарная дата, время игнорируется
	IsClosed          bool
	OverrideOpenTime  *types.TimeString
	OverrideCloseTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDefault returns true if the exception applies to all spaces
func (e *DateException) IsDefault() bool {
	return e.SpaceID == nil
}

// HasOverrideWindow returns true if both override times are set
func (e *DateException) HasOverrideWindow() bool {
	return e.OverrideOpenTime != nil && e.OverrideCloseTime != nil
}
