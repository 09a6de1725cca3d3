package list_reservations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kmosk/space-reservation-service/internal/api/handlers"
	"github.com/kmosk/space-reservation-service/internal/api/middleware"
	"github.com/kmosk/space-reservation-service/internal/domain"
	"github.com/kmosk/space-reservation-service/internal/service/reservations/models"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidFilter   = "некорректные параметры фильтрации"
	msgInvalidDateTime = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM:SS"
)

// ReservationItem элемент списка бронирований
type ReservationItem struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	SpaceID   int64   `json:"space_id"`
	StartsAt  string  `json:"starts_at"`
	EndsAt    string  `json:"ends_at"`
	Type      string  `json:"type"`
	EventName *string `json:"event_name,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Data []*ReservationItem `json:"data"`
	Meta Meta               `json:"meta"`
}

// Meta метаданные списка
type Meta struct {
	Total int `json:"total"`
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reservations?space_id=&from=&to=&type=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	roleID, _ := middleware.GetRoleID(r.Context())

	req := &models.ListReservationsRequest{
		UserID: userID,
		RoleID: roleID,
	}

	query := r.URL.Query()
	if v := query.Get("space_id"); v != "" {
		spaceID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || spaceID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.SpaceID = &spaceID
	}
	if v := query.Get("from"); v != "" {
		from, err := time.Parse(domain.DateTimeFormat, v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDateTime)
			return
		}
		req.From = &from
	}
	if v := query.Get("to"); v != "" {
		to, err := time.Parse(domain.DateTimeFormat, v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDateTime)
			return
		}
		req.To = &to
	}
	if v := query.Get("type"); v != "" {
		reservationType := domain.ReservationType(v)
		if !reservationType.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Type = &reservationType
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Limit = limit
	}
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /reservations - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.ReservationListResponse) *ListResponse {
	out := &ListResponse{
		Data: make([]*ReservationItem, 0, len(resp.Reservations)),
		Meta: Meta{Total: resp.Total},
	}
	for _, item := range resp.Reservations {
		out.Data = append(out.Data, &ReservationItem{
			ID:        item.ID,
			UserID:    item.UserID,
			SpaceID:   item.SpaceID,
			StartsAt:  item.StartsAt.Format(domain.DateTimeFormat),
			EndsAt:    item.EndsAt.Format(domain.DateTimeFormat),
			Type:      item.Type,
			EventName: item.EventName,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
			UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
