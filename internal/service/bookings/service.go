package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/MRS-RoomBookingService/pkg/phone"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// Service сервис для работы с бронированиями (админка и личный кабинет)
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByPhone получает бронирования по контактному номеру телефона
// Используется страницей "мои бронирования": телефон выступает идентификатором
func (s *Service) GetByPhone(ctx context.Context, rawPhone string) (*models.BookingListResponse, error) {
	normalized, err := phone.Normalize(rawPhone)
	if err != nil {
		s.logger.Warn("GetByPhone: invalid phone number")
		return nil, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	s.logger.Info("GetByPhone: fetching bookings for phone=%s", phone.Format(normalized))

	bookings, err := s.bookingRepo.GetByPhone(ctx, normalized)
	if err != nil {
		s.logger.Error("GetByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPhone: found %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// List получает список бронирований с фильтрацией по комнате, дате и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, roomID=%v, date=%v, status=%v",
		req.RoomID, req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update обновляет бронирование целиком (админка)
// Проверка пересечений и запись выполняются в одной serializable-транзакции
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	booking, err := s.toDomainBooking(id, req)
	if err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, err)
		return nil, err
	}

	if _, err := s.roomRepo.GetByID(ctx, booking.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", booking.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: failed to get room id=%d: %v", booking.RoomID, err)
		return nil, fmt.Errorf("%w: Update - failed to get room: %v", ErrInternal, err)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.bookingRepo.GetByRoomAndDate(txCtx, booking.RoomID, booking.BookingDate)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		// Пересечения с самим обновляемым бронированием не считаются
		for _, b := range existing {
			if b.ID != id && b.Overlaps(booking.StartTime, booking.EndTime) {
				return ErrSlotNotAvailable
			}
		}

		return s.bookingRepo.Update(txCtx, booking)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("Update: interval %s-%s overlaps existing booking, id=%d",
				booking.StartTime, booking.EndTime, id)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("Update: transaction failed for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - transaction failed: %v", ErrInternal, err)
		}
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", id, status)
	return nil
}

// Delete удаляет бронирование (админка)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Stats строит сводную статистику для дашборда админки
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: building dashboard summary")

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	summary := Summarize(bookings, s.timeProvider.Now())

	s.logger.Info("Stats: total=%d, today=%d", summary.TotalBookings, summary.TodayBookings)
	return summary, nil
}

// toDomainBooking конвертирует запрос на обновление в доменную модель
func (s *Service) toDomainBooking(id int64, req *models.UpdateBookingRequest) (*domain.Booking, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.BookedBy == "" {
		return nil, fmt.Errorf("%w: bookedBy is required", ErrInvalidInput)
	}
	if req.Attendees <= 0 {
		return nil, fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid bookingDate format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format, expected HH:MM", ErrInvalidInput)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime format, expected HH:MM", ErrInvalidInput)
	}
	if !startTime.IsBefore(endTime) {
		return nil, ErrInvalidTimeRange
	}

	normalizedPhone, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	return &domain.Booking{
		ID:          id,
		RoomID:      req.RoomID,
		BookingDate: date,
		StartTime:   startTime,
		EndTime:     endTime,
		Title:       req.Title,
		Department:  req.Department,
		BookedBy:    req.BookedBy,
		Phone:       normalizedPhone,
		Attendees:   req.Attendees,
		Status:      status,
	}, nil
}
