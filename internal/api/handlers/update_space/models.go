package update_space

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/service/spaces/models"
)

// UpdateSpaceRequest HTTP request model, nil-поля не изменяются
type UpdateSpaceRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	Images       []string `json:"images,omitempty"`
}

// SpaceResponse HTTP response model
type SpaceResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	PricePerHour float64  `json:"price_per_hour"`
	Capacity     int      `json:"capacity"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSpaceRequest) ToServiceRequest(spaceID int64) *models.UpdateSpaceRequest {
	return &models.UpdateSpaceRequest{
		ID:           spaceID,
		Name:         r.Name,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		Capacity:     r.Capacity,
		Images:       r.Images,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SpaceResponse) *SpaceResponse {
	images := resp.Images
	if images == nil {
		images = []string{}
	}
	return &SpaceResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		Description:  resp.Description,
		PricePerHour: resp.PricePerHour,
		Capacity:     resp.Capacity,
		Images:       images,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
