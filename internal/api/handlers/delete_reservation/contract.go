package delete_reservation

import (
	"context"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// ReservationService интерфейс сервиса бронирований
type ReservationService interface {
	Delete(ctx context.Context, id int64, userID int64, roleID domain.RoleID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
