package models

import (
	"errors"
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/pkg/phone"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований с фильтрацией
type ListBookingsRequest struct {
	RoomID *int64     `json:"roomId,omitempty"` // Фильтр по комнате (опционально)
	Date   *time.Time `json:"date,omitempty"`   // Фильтр по дате (опционально)
	Status *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID: r.RoomID,
		Date:   r.Date,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на обновление бронирования администратором
type UpdateBookingRequest struct {
	RoomID      int64   `json:"roomId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "12:00"
	Title       string  `json:"title"`
	Department  *string `json:"department,omitempty"`
	BookedBy    string  `json:"bookedBy"`
	Phone       string  `json:"phone"`
	Attendees   int     `json:"attendees"`
	Status      string  `json:"status"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"roomId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "12:00"
	Title       string  `json:"title"`
	Department  *string `json:"department,omitempty"`
	BookedBy    string  `json:"bookedBy"`
	Phone       string  `json:"phone"` // канонический вид с дефисами 3-3-4
	Attendees   int     `json:"attendees"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse ответ со сводной статистикой для дашборда
type StatsResponse struct {
	TotalBookings  int64        `json:"totalBookings"`
	TodayBookings  int64        `json:"todayBookings"`
	ConfirmedCount int64        `json:"confirmedCount"`
	PendingCount   int64        `json:"pendingCount"`
	Daily          []DailyCount `json:"daily"`   // последние 7 дней, по возрастанию даты
	Monthly        []MonthCount `json:"monthly"` // последние 6 месяцев, по возрастанию
}

// DailyCount количество бронирований за календарный день
type DailyCount struct {
	Date  string `json:"date"` // "2025-10-15"
	Count int64  `json:"count"`
}

// MonthCount количество бронирований за календарный месяц
type MonthCount struct {
	Month string `json:"month"` // "2025-10"
	Count int64  `json:"count"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Title:       b.Title,
		Department:  b.Department,
		BookedBy:    b.BookedBy,
		Phone:       phone.Format(b.Phone),
		Attendees:   b.Attendees,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
