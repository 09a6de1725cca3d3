package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmosk/space-reservation-service/internal/domain"
	spaceRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/space"
	"github.com/kmosk/space-reservation-service/internal/service/spaces/models"
)

// Service сервис для работы с помещениями
type Service struct {
	spaceRepo SpaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса помещений
func NewService(spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// Create создает новое помещение
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%q", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	space := &domain.Space{
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
		Images:       req.Images,
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает помещение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	s.logger.Info("GetByID: fetching space id=%d", id)

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetByID: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetByID: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// List получает список помещений с пагинацией
func (s *Service) List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	s.logger.Info("List: fetching spaces, limit=%d, offset=%d", req.Limit, req.Offset)

	spaces, err := s.spaceRepo.List(ctx, domain.SpacesFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d spaces", len(spaces))
	return models.FromDomainSpaceList(spaces), nil
}

// Update обновляет помещение (частичное обновление)
func (s *Service) Update(ctx context.Context, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d", req.ID)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	space, err := s.spaceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Update: space id=%d not found", req.ID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		space.Name = *req.Name
	}
	if req.Description != nil {
		space.Description = *req.Description
	}
	if req.PricePerHour != nil {
		space.PricePerHour = *req.PricePerHour
	}
	if req.Capacity != nil {
		space.Capacity = *req.Capacity
	}
	if req.Images != nil {
		space.Images = req.Images
	}

	updated, err := s.spaceRepo.Update(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated space id=%d", updated.ID)
	return models.FromDomainSpace(updated), nil
}

// Delete удаляет помещение
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting space id=%d", id)

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Delete: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("Delete: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted space id=%d", id)
	return nil
}

func validateCreateRequest(req *models.CreateSpaceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxSpaceNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxSpaceNameLength)
	}
	if req.PricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if len(req.Images) > domain.MaxSpaceImagesCount {
		return fmt.Errorf("%w: at most %d images allowed", ErrInvalidInput, domain.MaxSpaceImagesCount)
	}
	return nil
}

func validateUpdateRequest(req *models.UpdateSpaceRequest) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: space id must be positive", ErrInvalidInput)
	}
	if req.Name != nil && (*req.Name == "" || len(*req.Name) > domain.MaxSpaceNameLength) {
		return fmt.Errorf("%w: name must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxSpaceNameLength)
	}
	if req.PricePerHour != nil && *req.PricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if len(req.Images) > domain.MaxSpaceImagesCount {
		return fmt.Errorf("%w: at most %d images allowed", ErrInvalidInput, domain.MaxSpaceImagesCount)
	}
	return nil
}
