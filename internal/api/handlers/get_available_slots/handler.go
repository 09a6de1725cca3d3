package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmosk/space-reservation-service/internal/api/handlers"
	"github.com/kmosk/space-reservation-service/internal/domain"
	getAvailableSlots "github.com/kmosk/space-reservation-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpaceID      = "некорректный ID помещения"
	msgInvalidSlotDuration = "некорректная длительность слота, ожидается 15-480 минут"
	msgSpaceNotFound       = "помещение не найдено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/spaces/{spaceId}/available-slots?slot_duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/available-slots - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	slotDuration := domain.DefaultSlotDurationMinutes
	if v := r.URL.Query().Get("slot_duration"); v != "" {
		slotDuration, err = strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /spaces/{id}/available-slots - Invalid slot duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		SpaceID:             spaceID,
		SlotDurationMinutes: slotDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/available-slots - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)

		default:
			h.logger.Error("GET /spaces/{id}/available-slots - Failed: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/available-slots - space_id=%d, days=%d, slots=%d",
		spaceID, result.TotalDays, result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
