package update_reservation

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// Request модель запроса на обновление бронирования.
// Nil-поля не изменяются (частичное обновление).
type Request struct {
	ID        int64         // ID обновляемого бронирования
	UserID    int64         // ID запрашивающего пользователя
	RoleID    domain.RoleID // Роль запрашивающего
	StartsAt  *time.Time    // Новое начало интервала (опционально)
	EndsAt    *time.Time    // Новый конец интервала (опционально)
	EventName *string       // Новое название события (опционально)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID        int64
	UserID    int64
	SpaceID   int64
	StartsAt  time.Time
	EndsAt    time.Time
	Type      domain.ReservationType
	EventName *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:        r.ID,
		UserID:    r.UserID,
		SpaceID:   r.SpaceID,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Type:      r.Type,
		EventName: r.EventName,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
