package create_reservation

import (
	"fmt"
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return fmt.Errorf("%w: startsAt and endsAt are required", ErrInvalidInput)
	}

	if !req.EndsAt.After(req.StartsAt) {
		return fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidInput)
	}

	if !req.StartsAt.After(now) {
		return fmt.Errorf("%w: startsAt must be in the future", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}

	if req.EventName != nil && len(*req.EventName) > domain.MaxEventNameLength {
		return fmt.Errorf("%w: eventName must be at most %d characters", ErrInvalidInput, domain.MaxEventNameLength)
	}

	return nil
}

// validateRole блокировки (type=block) доступны только администраторам
func validateRole(req *Request) error {
	if req.Type == domain.TypeBlock && req.RoleID != domain.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
