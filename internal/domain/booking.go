package domain

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a meeting room booking
// StartTime/EndTime are wall-clock "HH:MM" values within BookingDate,
// the occupied interval is [StartTime, EndTime)
type Booking struct {
	ID          int64
	RoomID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Title       string
	Department  *string
	BookedBy    string
	Phone       string // нормализованный номер, 10 цифр без дефисов
	Attendees   int
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Overlaps returns true if the booking interval intersects [start, end)
// Touching boundaries do not count as an overlap
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// IsValidStatus reports whether s is one of the known booking statuses
func IsValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID *int64         // Фильтр по комнате (опционально)
	Date   *time.Time     // Фильтр по дате (опционально)
	Status *BookingStatus // Фильтр по статусу (опционально)
	Phone  *string        // Фильтр по нормализованному номеру телефона (опционально)
}
