package update_reservation

import (
	"errors"

	"github.com/kmosk/space-reservation-service/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrForbidden возвращается, когда пользователь не владелец и не администратор
	ErrForbidden = errors.New("update_reservation: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)

// NotAvailableError возвращается, когда новый интервал недоступен.
// Несёт решение движка, чтобы хендлер мог выбрать HTTP-статус по категории
// и отдать сообщение дословно.
type NotAvailableError struct {
	Decision *availability.Decision
}

func (e *NotAvailableError) Error() string {
	return "update_reservation: " + e.Decision.Message
}
