package models

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// ListReservationsRequest запрос списка бронирований
type ListReservationsRequest struct {
	UserID  int64         // ID запрашивающего пользователя
	RoleID  domain.RoleID // Роль запрашивающего
	SpaceID *int64                  // Фильтр по помещению (опционально)
	From    *time.Time              // Фильтр по началу периода (опционально)
	To      *time.Time              // Фильтр по концу периода (опционально)
	Type    *domain.ReservationType // Фильтр по типу (опционально)
	Limit   int
	Offset  int
}

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID        int64
	UserID    int64
	SpaceID   int64
	StartsAt  time.Time
	EndsAt    time.Time
	Type      string
	EventName *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
	Total        int
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		SpaceID:   r.SpaceID,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Type:      string(r.Type),
		EventName: r.EventName,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных моделей
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}
	resp.Total = len(resp.Reservations)
	return resp
}
