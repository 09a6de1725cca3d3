package update_reservation

import (
	"fmt"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StartsAt == nil && req.EndsAt == nil && req.EventName == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.EventName != nil && len(*req.EventName) > domain.MaxEventNameLength {
		return fmt.Errorf("%w: eventName must be at most %d characters", ErrInvalidInput, domain.MaxEventNameLength)
	}

	return nil
}

// validateMerged проверяет интервал после слияния с текущими значениями
func validateMerged(r *domain.Reservation) error {
	if !r.EndsAt.After(r.StartsAt) {
		return fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidInput)
	}
	return nil
}

// validateOwnership обновлять бронирование может владелец или администратор
func validateOwnership(r *domain.Reservation, userID int64, roleID domain.RoleID) error {
	if r.UserID != userID && roleID != domain.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
