package my_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings"
)

const (
	msgMissingPhone = "не указан номер телефона"
	msgInvalidPhone = "некорректный номер телефона"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my?phone=0812345678
// Телефон выступает идентификатором: возвращаются все бронирования
// с этим контактным номером
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /bookings/my - Missing phone parameter")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.GetByPhone(r.Context(), phone)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/my - Invalid phone number")
			handlers.RespondBadRequest(w, msgInvalidPhone)
			return
		}
		h.logger.Error("GET /bookings/my - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/my - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
