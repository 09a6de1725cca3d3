package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/kmosk/space-reservation-service/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase интерфейс use case получения свободных слотов
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
