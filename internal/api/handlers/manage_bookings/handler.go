package manage_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings"
	bookingModels "github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgBookingNotFound    = "бронирование не найдено"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidStatus      = "недопустимый статус бронирования"
	msgInvalidBookingData = "некорректные данные бронирования"
	msgSlotNotAvailable   = "временной интервал уже занят"
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

// HandleList GET /api/v1/admin/bookings?roomId=&date=&status=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := ParseListFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/admin/bookings/{bookingId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r, "GET /admin/bookings/{id}")
	if !ok {
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /admin/bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleUpdate PUT /api/v1/admin/bookings/{bookingId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r, "PUT /admin/bookings/{id}")
	if !ok {
		return
	}

	var req bookingModels.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("PUT /admin/bookings/{id} - Room not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PUT /admin/bookings/{id} - Slot not available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PUT /admin/bookings/{id} - Invalid status: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTimeRange), errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/bookings/{id} - Invalid booking data: booking_id=%d: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingData)

		default:
			h.logger.Error("PUT /admin/bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleUpdateStatus PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r, "PATCH /admin/bookings/{id}/status")
	if !ok {
		return
	}

	var req bookingModels.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status=%s: booking_id=%d", req.Status, bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated successfully: booking_id=%d, status=%s",
		bookingID, req.Status)
	handlers.RespondNoContent(w)
}

// HandleDelete DELETE /api/v1/admin/bookings/{bookingId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.bookingID(w, r, "DELETE /admin/bookings/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted successfully: booking_id=%d", bookingID)
	handlers.RespondNoContent(w)
}

// bookingID извлекает и валидирует ID бронирования из URL
func (h *Handler) bookingID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return 0, false
	}
	return bookingID, true
}
