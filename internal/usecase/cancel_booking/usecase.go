package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/MRS-RoomBookingService/pkg/phone"
)

// UseCase use case для отмены бронирования владельцем
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
// Право на отмену подтверждается совпадением номера телефона
// с контактным номером бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: booking id=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("CancelBooking: invalid booking id=%d", req.BookingID)
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if !phone.Validate(req.Phone) {
		uc.logger.Warn("CancelBooking: invalid phone for booking id=%d", req.BookingID)
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	// 2. Проверяем существование бронирования
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Сверяем контактный номер
	if !phone.Equal(booking.Phone, req.Phone) {
		uc.logger.Warn("CancelBooking: phone mismatch for booking id=%d", req.BookingID)
		return ErrAccessDenied
	}

	// 4. Удаляем бронирование
	if err := uc.bookingRepo.Delete(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled", req.BookingID)
	return nil
}
