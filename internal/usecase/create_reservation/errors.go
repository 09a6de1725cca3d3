package create_reservation

import (
	"errors"

	"github.com/kmosk/space-reservation-service/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrForbidden возвращается, когда у пользователя нет прав на операцию
	ErrForbidden = errors.New("create_reservation: operation is not allowed for this role")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// NotAvailableError возвращается, когда бронирование невозможно.
// Несёт решение движка, чтобы хендлер мог выбрать HTTP-статус по категории
// и отдать сообщение дословно.
type NotAvailableError struct {
	Decision *availability.Decision
}

func (e *NotAvailableError) Error() string {
	return "create_reservation: " + e.Decision.Message
}
