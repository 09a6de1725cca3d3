package domain

import "time"

// ReservationType тип бронирования
type ReservationType string

const (
	// TypeClient обычное клиентское бронирование
	TypeClient ReservationType = "client"
	// TypeBlock административная блокировка помещения (ремонт, обслуживание)
	TypeBlock ReservationType = "block"
)

// IsValid returns true if the reservation type is one of the known values
func (t ReservationType) IsValid() bool {
	return t == TypeClient || t == TypeBlock
}

// Reservation represents a committed reservation of a space for a time interval.
// Intervals are half-open [StartsAt, EndsAt): a reservation ending exactly when
// another starts does not conflict with it.
type Reservation struct {
	ID        int64
	UserID    int64
	SpaceID   int64
	StartsAt  time.Time
	EndsAt    time.Time
	Type      ReservationType
	EventName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps returns true if the reservation interval strictly overlaps [start, end)
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartsAt.Before(end) && r.EndsAt.After(start)
}

// ReservationsFilter фильтр для получения списка бронирований
type ReservationsFilter struct {
	UserID  *int64           // nil - без фильтра по пользователю
	SpaceID *int64           // nil - все помещения
	From    *time.Time       // начало периода (по start)
	To      *time.Time       // конец периода (по start)
	Type    *ReservationType // nil - все типы
	Limit   int
	Offset  int
}
