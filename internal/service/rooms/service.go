package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новую комнату
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%s, building=%s", req.Name, req.Building)

	if err := validateRoom(req.Name, req.Building, req.Capacity); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает список всех комнат
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching all rooms")

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Update обновляет комнату
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", id)

	if err := validateRoom(req.Name, req.Building, req.Capacity); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, req.ToDomain(id)); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload room: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет комнату
// Бронирования комнаты удаляются каскадно на уровне БД
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// validateRoom проверяет обязательные поля комнаты
func validateRoom(name, building string, capacity int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if building == "" {
		return fmt.Errorf("%w: building is required", ErrInvalidInput)
	}
	if capacity < domain.MinRoomCapacity || capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}
	return nil
}
