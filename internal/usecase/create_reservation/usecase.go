package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmosk/space-reservation-service/internal/availability"
	"github.com/kmosk/space-reservation-service/internal/domain"
	reservationRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/reservation"
	spaceRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/space"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	engine          AvailabilityEngine
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	engine AvailabilityEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		engine:          engine,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции;
// финальная защита от гонки - exclusion constraint в БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, space=%d, interval=[%s, %s), type=%s",
		req.UserID, req.SpaceID,
		req.StartsAt.Format(domain.DateTimeFormat), req.EndsAt.Format(domain.DateTimeFormat), req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокировки доступны только администраторам
	if err := validateRole(req); err != nil {
		uc.logger.Warn("CreateReservation: user=%d role=%d cannot create %s reservation",
			req.UserID, req.RoleID, req.Type)
		return nil, err
	}

	// 3. Проверяем существование помещения
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateReservation: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 4. Проверка доступности и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		decision, err := uc.engine.CheckAvailability(txCtx, req.SpaceID, req.StartsAt, req.EndsAt, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !decision.Available {
			uc.logger.Info("CreateReservation: space=%d not available: %s", req.SpaceID, decision.Message)
			return &NotAvailableError{Decision: decision}
		}

		reservation := &domain.Reservation{
			UserID:    req.UserID,
			SpaceID:   req.SpaceID,
			StartsAt:  req.StartsAt,
			EndsAt:    req.EndsAt,
			Type:      req.Type,
			EventName: req.EventName,
		}

		result, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// конкурентная вставка успела раньше и сработал exclusion constraint
			if errors.Is(err, reservationRepo.ErrOverlapConflict) {
				uc.logger.Warn("CreateReservation: concurrent overlap on space=%d", req.SpaceID)
				return &NotAvailableError{Decision: &availability.Decision{
					Message:  availability.MsgAlreadyBooked,
					Category: availability.CategoryConflict,
				}}
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d for user=%d", result.ID, req.UserID)
	return toResponse(result), nil
}
