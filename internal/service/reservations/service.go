package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmosk/space-reservation-service/internal/domain"
	reservationRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/reservation"
	"github.com/kmosk/space-reservation-service/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, roleID domain.RoleID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(reservation, userID, roleID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает список бронирований с фильтрацией.
// Клиент всегда получает только свои бронирования; администратор может
// смотреть чужие и фильтровать по помещению и периоду.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%d", req.UserID)

	filter := domain.ReservationsFilter{
		SpaceID: req.SpaceID,
		From:    req.From,
		To:      req.To,
		Type:    req.Type,
		Limit:   req.Limit,
		Offset:  req.Offset,
	}
	if req.RoleID != domain.RoleAdmin {
		filter.UserID = &req.UserID
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронирование
// Удалять может владелец или администратор
func (s *Service) Delete(ctx context.Context, id int64, userID int64, roleID domain.RoleID) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(reservation, userID, roleID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to reservation id=%d", userID, id)
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted reservation id=%d", id)
	return nil
}

// checkAccess владелец или администратор
func checkAccess(r *domain.Reservation, userID int64, roleID domain.RoleID) error {
	if r.UserID != userID && roleID != domain.RoleAdmin {
		return ErrAccessDenied
	}
	return nil
}
