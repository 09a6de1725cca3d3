package update_reservation

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
	updateReservation "github.com/kmosk/space-reservation-service/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model, nil-поля не изменяются
type UpdateReservationRequest struct {
	StartsAt  *string `json:"starts_at,omitempty"` // "2026-09-07 10:00:00"
	EndsAt    *string `json:"ends_at,omitempty"`   // "2026-09-07 12:00:00"
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
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, userID int64, roleID domain.RoleID) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ID:        reservationID,
		UserID:    userID,
		RoleID:    roleID,
		EventName: r.EventName,
	}

	if r.StartsAt != nil {
		startsAt, err := time.Parse(domain.DateTimeFormat, *r.StartsAt)
		if err != nil {
			return nil, err
		}
		req.StartsAt = &startsAt
	}
	if r.EndsAt != nil {
		endsAt, err := time.Parse(domain.DateTimeFormat, *r.EndsAt)
		if err != nil {
			return nil, err
		}
		req.EndsAt = &endsAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
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
