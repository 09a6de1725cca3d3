package create_reservation

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64                  // ID пользователя, от имени которого создаётся бронирование
	RoleID    domain.RoleID          // Роль запрашивающего
	SpaceID   int64                  // ID помещения
	StartsAt  time.Time              // Начало интервала
	EndsAt    time.Time              // Конец интервала (не входит в интервал)
	Type      domain.ReservationType // Тип бронирования (client или block)
	EventName *string                // Название события (опционально)
}

// Response модель ответа с созданным бронированием
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
