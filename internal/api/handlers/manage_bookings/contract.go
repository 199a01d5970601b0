package manage_bookings

import (
	"context"

	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingResponse, error)
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
