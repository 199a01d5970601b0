package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для получения слотов комнаты на дату
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	catalog      domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	catalog domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Чистая функция над снапшотом бронирований: сайд-эффектов нет,
// снапшот может устареть к моменту бронирования (см. create_booking)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: room=%d, date=%s",
		req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прошедшие даты не обслуживаем
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableSlots: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 5. Получаем снапшот бронирований комнаты на дату
	bookings, err := uc.bookingRepo.GetByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Строим каталог с доступностью
	slots := buildSlots(uc.catalog, bookings, req.Date, now)

	uc.logger.Info("GetAvailableSlots: returning %d slots for room=%d, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots:  slots,
	}, nil
}
