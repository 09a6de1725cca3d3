package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmosk/space-reservation-service/internal/availability"
	"github.com/kmosk/space-reservation-service/internal/domain"
	reservationRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/reservation"
)

// UseCase use case для обновления бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	engine          AvailabilityEngine
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	engine AvailabilityEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		engine:          engine,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования.
// Интервал после слияния проверяется движком с исключением самого
// бронирования, чтобы оно не конфликтовало само с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, user=%d", req.ID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Чтение, проверка и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3. Обновлять может владелец или администратор
		if err := validateOwnership(existing, req.UserID, req.RoleID); err != nil {
			uc.logger.Warn("UpdateReservation: user=%d denied access to reservation id=%d", req.UserID, req.ID)
			return err
		}

		// 4. Частичное слияние
		if req.StartsAt != nil {
			existing.StartsAt = *req.StartsAt
		}
		if req.EndsAt != nil {
			existing.EndsAt = *req.EndsAt
		}
		if req.EventName != nil {
			existing.EventName = req.EventName
		}

		if err := validateMerged(existing); err != nil {
			uc.logger.Warn("UpdateReservation: merged interval invalid: %v", err)
			return err
		}

		// 5. Проверка доступности нового интервала, исключая само бронирование
		decision, err := uc.engine.CheckAvailability(txCtx, existing.SpaceID, existing.StartsAt, existing.EndsAt, &existing.ID)
		if err != nil {
			uc.logger.Error("UpdateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !decision.Available {
			uc.logger.Info("UpdateReservation: space=%d not available: %s", existing.SpaceID, decision.Message)
			return &NotAvailableError{Decision: decision}
		}

		result, err = uc.reservationRepo.Update(txCtx, existing)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlapConflict) {
				uc.logger.Warn("UpdateReservation: concurrent overlap on space=%d", existing.SpaceID)
				return &NotAvailableError{Decision: &availability.Decision{
					Message:  availability.MsgAlreadyBooked,
					Category: availability.CategoryConflict,
				}}
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: updated reservation id=%d", result.ID)
	return toResponse(result), nil
}
