package create_reservation

import (
	"context"

	createReservation "github.com/kmosk/space-reservation-service/internal/usecase/create_reservation"
)

// CreateReservationUseCase интерфейс use case создания бронирования
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
