package register

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/service/auth/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      int    `json:"role"`
	CreatedAt string `json:"created_at"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.UserResponse) *UserResponse {
	return &UserResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      int(resp.RoleID),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
