package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	spaceRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/space"
)

// UseCase use case для получения свободных слотов помещения
type UseCase struct {
	spaceRepo     SpaceRepository
	engine        AvailabilityEngine
	timeProvider  TimeProvider
	horizonMonths int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	engine AvailabilityEngine,
	horizonMonths int,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:     spaceRepo,
		engine:        engine,
		timeProvider:  &RealTimeProvider{},
		horizonMonths: horizonMonths,
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Горизонт - от начала сегодняшнего дня до конца месяца,
// отстоящего на horizonMonths вперёд.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: space=%d, slotDuration=%d", req.SpaceID, req.SlotDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование помещения
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetAvailableSlots: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 3. Горизонт перечисления
	now := uc.timeProvider.Now()
	horizonStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizonEnd := endOfMonth(horizonStart.AddDate(0, uc.horizonMonths, 0))

	// 4. Перечисление слотов
	days, err := uc.engine.ListAvailableSlots(ctx, req.SpaceID, req.SlotDurationMinutes, horizonStart, horizonEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: enumeration failed: %v", err)
		return nil, fmt.Errorf("%w: list available slots: %v", ErrInternal, err)
	}

	resp := toResponse(days)
	uc.logger.Info("GetAvailableSlots: space=%d, days=%d, slots=%d", req.SpaceID, resp.TotalDays, resp.TotalSlots)
	return resp, nil
}

// endOfMonth возвращает последний день месяца даты t (время 00:00)
func endOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
