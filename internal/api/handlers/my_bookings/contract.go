package my_bookings

import (
	"context"

	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByPhone(ctx context.Context, rawPhone string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
