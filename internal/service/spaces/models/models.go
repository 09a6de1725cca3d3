package models

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/domain"
)

// CreateSpaceRequest запрос на создание помещения
type CreateSpaceRequest struct {
	Name         string
	Description  string
	PricePerHour float64
	Capacity     int
	Images       []string
}

// UpdateSpaceRequest запрос на обновление помещения.
// Nil-поля не изменяются (частичное обновление).
type UpdateSpaceRequest struct {
	ID           int64
	Name         *string
	Description  *string
	PricePerHour *float64
	Capacity     *int
	Images       []string // nil - не менять, пустой список - очистить
}

// ListSpacesRequest запрос списка помещений
type ListSpacesRequest struct {
	Limit  int
	Offset int
}

// SpaceResponse помещение в ответе сервиса
type SpaceResponse struct {
	ID           int64
	Name         string
	Description  string
	PricePerHour float64
	Capacity     int
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SpaceListResponse список помещений
type SpaceListResponse struct {
	Spaces []*SpaceResponse
	Total  int
}

// FromDomainSpace конвертирует доменную модель в ответ сервиса
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	return &SpaceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		PricePerHour: s.PricePerHour,
		Capacity:     s.Capacity,
		Images:       s.Images,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список доменных моделей
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]*SpaceResponse, 0, len(spaces)),
	}
	for _, s := range spaces {
		resp.Spaces = append(resp.Spaces, FromDomainSpace(s))
	}
	resp.Total = len(resp.Spaces)
	return resp
}
