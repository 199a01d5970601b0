package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MRS-RoomBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast    = "дата уже прошла"
	msgRoomNotFound  = "комната не найдена"
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

// Handle GET /api/v1/rooms/{roomId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/slots - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	req, err := ToUseCaseRequest(roomID, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/slots - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /rooms/{id}/slots - Date in the past: room_id=%d, date=%s", roomID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/slots - Invalid input: room_id=%d: %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/{id}/slots - Failed to get slots: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/slots - Returned %d slots: room_id=%d, date=%s",
		len(result.Slots), roomID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
