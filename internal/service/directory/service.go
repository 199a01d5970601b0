package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	directoryRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/directory"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/directory/models"
)

// Service сервис справочников: отделы, здания, оборудование
type Service struct {
	repo   DirectoryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo DirectoryRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// --- Departments ---

// ListDepartments получает все отделы
func (s *Service) ListDepartments(ctx context.Context) (*models.DepartmentListResponse, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.logger.Error("ListDepartments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDepartments - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainDepartmentList(departments), nil
}

// CreateDepartment создает отдел
func (s *Service) CreateDepartment(ctx context.Context, req *models.DepartmentRequest) (*models.DepartmentResponse, error) {
	s.logger.Info("CreateDepartment: name=%s, organization=%s", req.Name, req.Organization)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.repo.CreateDepartment(ctx, &domain.Department{
		Name:         req.Name,
		Organization: req.Organization,
	})
	if err != nil {
		return nil, s.mapWriteError(err, "CreateDepartment")
	}

	s.logger.Info("CreateDepartment: created department id=%d", created.ID)
	return models.FromDomainDepartment(created), nil
}

// UpdateDepartment обновляет отдел
func (s *Service) UpdateDepartment(ctx context.Context, id int64, req *models.DepartmentRequest) error {
	s.logger.Info("UpdateDepartment: id=%d", id)

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	err := s.repo.UpdateDepartment(ctx, &domain.Department{
		ID:           id,
		Name:         req.Name,
		Organization: req.Organization,
	})
	if err != nil {
		return s.mapWriteError(err, "UpdateDepartment")
	}
	return nil
}

// DeleteDepartment удаляет отдел
func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	s.logger.Info("DeleteDepartment: id=%d", id)

	if err := s.repo.DeleteDepartment(ctx, id); err != nil {
		return s.mapWriteError(err, "DeleteDepartment")
	}
	return nil
}

// --- Buildings ---

// ListBuildings получает все здания
func (s *Service) ListBuildings(ctx context.Context) (*models.NamedListResponse, error) {
	buildings, err := s.repo.ListBuildings(ctx)
	if err != nil {
		s.logger.Error("ListBuildings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBuildings - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBuildingList(buildings), nil
}

// CreateBuilding создает здание
func (s *Service) CreateBuilding(ctx context.Context, req *models.NamedRequest) (*models.NamedResponse, error) {
	s.logger.Info("CreateBuilding: name=%s", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.repo.CreateBuilding(ctx, &domain.Building{Name: req.Name})
	if err != nil {
		return nil, s.mapWriteError(err, "CreateBuilding")
	}

	s.logger.Info("CreateBuilding: created building id=%d", created.ID)
	return models.FromDomainBuilding(created), nil
}

// UpdateBuilding обновляет здание
func (s *Service) UpdateBuilding(ctx context.Context, id int64, req *models.NamedRequest) error {
	s.logger.Info("UpdateBuilding: id=%d", id)

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.repo.UpdateBuilding(ctx, &domain.Building{ID: id, Name: req.Name}); err != nil {
		return s.mapWriteError(err, "UpdateBuilding")
	}
	return nil
}

// DeleteBuilding удаляет здание
func (s *Service) DeleteBuilding(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBuilding: id=%d", id)

	if err := s.repo.DeleteBuilding(ctx, id); err != nil {
		return s.mapWriteError(err, "DeleteBuilding")
	}
	return nil
}

// --- Equipment ---

// ListEquipment получает всё оборудование
func (s *Service) ListEquipment(ctx context.Context) (*models.NamedListResponse, error) {
	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEquipmentList(equipment), nil
}

// CreateEquipment создает запись оборудования
func (s *Service) CreateEquipment(ctx context.Context, req *models.NamedRequest) (*models.NamedResponse, error) {
	s.logger.Info("CreateEquipment: name=%s", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.repo.CreateEquipment(ctx, &domain.Equipment{Name: req.Name})
	if err != nil {
		return nil, s.mapWriteError(err, "CreateEquipment")
	}

	s.logger.Info("CreateEquipment: created equipment id=%d", created.ID)
	return models.FromDomainEquipment(created), nil
}

// UpdateEquipment обновляет запись оборудования
func (s *Service) UpdateEquipment(ctx context.Context, id int64, req *models.NamedRequest) error {
	s.logger.Info("UpdateEquipment: id=%d", id)

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.repo.UpdateEquipment(ctx, &domain.Equipment{ID: id, Name: req.Name}); err != nil {
		return s.mapWriteError(err, "UpdateEquipment")
	}
	return nil
}

// DeleteEquipment удаляет запись оборудования
func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	s.logger.Info("DeleteEquipment: id=%d", id)

	if err := s.repo.DeleteEquipment(ctx, id); err != nil {
		return s.mapWriteError(err, "DeleteEquipment")
	}
	return nil
}

// mapWriteError конвертирует ошибки репозитория в ошибки сервиса
func (s *Service) mapWriteError(err error, op string) error {
	switch {
	case errors.Is(err, directoryRepo.ErrNotFound):
		s.logger.Warn("%s: entry not found", op)
		return ErrEntryNotFound
	case errors.Is(err, directoryRepo.ErrDuplicate):
		s.logger.Warn("%s: duplicate entry", op)
		return ErrDuplicateEntry
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
