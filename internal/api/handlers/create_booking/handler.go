package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/MRS-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "комната не найдена"
	msgEmptySelection     = "не выбран ни один временной слот"
	msgSlotNotInCatalog   = "выбранное время не входит в расписание"
	msgSlotsNotAdjacent   = "выбранные слоты должны идти подряд"
	msgSlotInPast         = "выбранное время уже прошло"
	msgDateInPast         = "дата бронирования уже прошла"
	msgInvalidPhone       = "некорректный номер телефона"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: room_id=%d, date=%s", req.RoomID, req.BookingDate)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty slot selection: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createBooking.ErrSlotNotInCatalog):
			h.logger.Warn("POST /bookings - Slot not in catalog: room_id=%d, slots=%v", req.RoomID, req.TimeSlots)
			handlers.RespondBadRequest(w, msgSlotNotInCatalog)

		case errors.Is(err, createBooking.ErrSlotsNotAdjacent):
			h.logger.Warn("POST /bookings - Slots not adjacent: room_id=%d, slots=%v", req.RoomID, req.TimeSlots)
			handlers.RespondBadRequest(w, msgSlotsNotAdjacent)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in the past: room_id=%d, date=%s", req.RoomID, req.BookingDate)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: room_id=%d, date=%s", req.RoomID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: room_id=%d: %v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, date=%s, error=%v",
				req.RoomID, req.BookingDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, date=%s",
		result.ID, req.RoomID, req.BookingDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
