package list_spaces

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kmosk/space-reservation-service/internal/api/handlers"
	"github.com/kmosk/space-reservation-service/internal/service/spaces/models"
)

const msgInvalidFilter = "некорректные параметры пагинации"

// SpaceItem элемент списка помещений
type SpaceItem struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	PricePerHour float64  `json:"price_per_hour"`
	Capacity     int      `json:"capacity"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Data []*SpaceItem `json:"data"`
	Meta Meta         `json:"meta"`
}

// Meta метаданные списка
type Meta struct {
	Total int `json:"total"`
}

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/spaces?limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSpacesRequest{}

	query := r.URL.Query()
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
		h.logger.Error("GET /spaces - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.SpaceListResponse) *ListResponse {
	out := &ListResponse{
		Data: make([]*SpaceItem, 0, len(resp.Spaces)),
		Meta: Meta{Total: resp.Total},
	}
	for _, item := range resp.Spaces {
		images := item.Images
		if images == nil {
			images = []string{}
		}
		out.Data = append(out.Data, &SpaceItem{
			ID:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			PricePerHour: item.PricePerHour,
			Capacity:     item.Capacity,
			Images:       images,
			CreatedAt:    item.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    item.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
