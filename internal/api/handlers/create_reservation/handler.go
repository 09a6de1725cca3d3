package create_reservation

import (
	"errors"
	"net/http"

	"github.com/kmosk/space-reservation-service/internal/api/handlers"
	"github.com/kmosk/space-reservation-service/internal/api/middleware"
	"github.com/kmosk/space-reservation-service/internal/availability"
	createReservation "github.com/kmosk/space-reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM:SS"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSpaceNotFound      = "помещение не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	roleID, _ := middleware.GetRoleID(r.Context())

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, roleID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var notAvailable *createReservation.NotAvailableError
		switch {
		case errors.As(err, &notAvailable):
			// сообщение движка отдаётся дословно, статус - по категории
			h.logger.Warn("POST /reservations - Not available: user_id=%d, space_id=%d: %s",
				userID, req.SpaceID, notAvailable.Decision.Message)
			if notAvailable.Decision.Category == availability.CategoryConflict {
				handlers.RespondConflict(w, notAvailable.Decision.Message)
			} else {
				handlers.RespondUnprocessable(w, notAvailable.Decision.Message)
			}

		case errors.Is(err, createReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /reservations - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createReservation.ErrForbidden):
			h.logger.Warn("POST /reservations - Forbidden: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
