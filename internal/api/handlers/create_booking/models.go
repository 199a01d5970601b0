package create_booking

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/MRS-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// TimeSlots - начала выбранных слотов каталога, например ["09:00", "10:00"]
type CreateBookingRequest struct {
	RoomID      int64    `json:"roomId"`
	BookingDate string   `json:"bookingDate"` // "2025-10-15"
	TimeSlots   []string `json:"timeSlots"`
	Title       string   `json:"title"`
	Department  *string  `json:"department,omitempty"`
	BookedBy    string   `json:"bookedBy"`
	Phone       string   `json:"phone"`
	Attendees   int      `json:"attendees"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"roomId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Title       string  `json:"title"`
	Department  *string `json:"department,omitempty"`
	BookedBy    string  `json:"bookedBy"`
	Phone       string  `json:"phone"`
	Attendees   int     `json:"attendees"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, len(r.TimeSlots))
	for _, s := range r.TimeSlots {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return &createBooking.Request{
		RoomID:     r.RoomID,
		Date:       bookingDate,
		TimeSlots:  slots,
		Title:      r.Title,
		Department: r.Department,
		BookedBy:   r.BookedBy,
		Phone:      r.Phone,
		Attendees:  r.Attendees,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Title:       resp.Title,
		Department:  resp.Department,
		BookedBy:    resp.BookedBy,
		Phone:       resp.Phone,
		Attendees:   resp.Attendees,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
