package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/MRS-RoomBookingService/pkg/phone"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	catalog      domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	catalog domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной serializable-транзакции
// с блокировкой бронирований комнаты на дату, поэтому два конкурентных запроса
// на пересекающиеся интервалы не могут пройти оба. Exclusion constraint в БД
// остаётся последней линией защиты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, date=%s, slots=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), len(req.TimeSlots))

	// 1. Валидация входных данных
	normalizedPhone, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация выбранных слотов: каталог и непрерывность
	slots, err := validateSelection(uc.catalog, req.TimeSlots)
	if err != nil {
		uc.logger.Warn("CreateBooking: selection invalid: %v", err)
		return nil, err
	}

	// 3. Интервал бронирования: от первого слота до конца последнего
	startTime := slots[0]
	endTime, err := uc.catalog.EndOf(slots[len(slots)-1])
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute end time for %s: %v", slots[len(slots)-1], err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	// 4. Прошедшие даты и слоты не бронируем
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req.Date, startTime, now); err != nil {
		uc.logger.Warn("CreateBooking: interval in the past: %v", err)
		return nil, err
	}

	// 5. Проверяем существование комнаты
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Вместимость комнаты - рекомендация, а не ограничение
	if req.Attendees > room.Capacity {
		uc.logger.Warn("CreateBooking: attendees=%d exceeds capacity=%d of room id=%d",
			req.Attendees, room.Capacity, room.ID)
	}

	booking := &domain.Booking{
		RoomID:      req.RoomID,
		BookingDate: req.Date,
		StartTime:   startTime,
		EndTime:     endTime,
		Title:       req.Title,
		Department:  req.Department,
		BookedBy:    req.BookedBy,
		Phone:       normalizedPhone,
		Attendees:   req.Attendees,
		Status:      domain.StatusConfirmed,
	}

	// 6. Проверка доступности и вставка в одной транзакции
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Читаем бронирования с блокировкой строк (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByRoomAndDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		if hasOverlap(existing, startTime, endTime) {
			return ErrSlotNotAvailable
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: interval %s-%s overlaps existing booking, room=%d, date=%s",
				startTime, endTime, req.RoomID, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d, room=%d, date=%s, interval=%s-%s",
		created.ID, created.RoomID, created.BookingDate.Format(domain.DateFormat),
		created.StartTime, created.EndTime)

	return toResponse(created), nil
}

// toResponse конвертирует доменную модель в ответ use case
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		RoomID:      b.RoomID,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Title:       b.Title,
		Department:  b.Department,
		BookedBy:    b.BookedBy,
		Phone:       phone.Format(b.Phone),
		Attendees:   b.Attendees,
		Status:      string(b.Status),

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
