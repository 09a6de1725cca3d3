package create_reservation

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
	createReservation "github.com/kmosk/space-reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID   int64   `json:"space_id"`
	StartsAt  string  `json:"starts_at"` // "2026-09-07 10:00:00"
	EndsAt    string  `json:"ends_at"`   // "2026-09-07 12:00:00"
	Type      *string `json:"type,omitempty"`
	EventName *string `json:"event_name,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	SpaceID   int64   `json:"space_id"`
	StartsAt  string  `json:"starts_at"`
	EndsAt    string  `json:"ends_at"`
	Type      string  `json:"type"`
	EventName *string `json:"event_name,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64, roleID domain.RoleID) (*createReservation.Request, error) {
	startsAt, err := time.Parse(domain.DateTimeFormat, r.StartsAt)
	if err != nil {
		return nil, err
	}
	endsAt, err := time.Parse(domain.DateTimeFormat, r.EndsAt)
	if err != nil {
		return nil, err
	}

	// тип по умолчанию - обычное клиентское бронирование
	reservationType := domain.TypeClient
	if r.Type != nil {
		reservationType = domain.ReservationType(*r.Type)
	}

	return &createReservation.Request{
		UserID:    userID,
		RoleID:    roleID,
		SpaceID:   r.SpaceID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Type:      reservationType,
		EventName: r.EventName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		SpaceID:   resp.SpaceID,
		StartsAt:  resp.StartsAt.Format(domain.DateTimeFormat),
		EndsAt:    resp.EndsAt.Format(domain.DateTimeFormat),
		Type:      string(resp.Type),
		EventName: resp.EventName,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
