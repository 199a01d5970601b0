package directory

import (
	"context"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
)

// DirectoryRepository интерфейс репозитория справочников
type DirectoryRepository interface {
	ListDepartments(ctx context.Context) ([]*domain.Department, error)
	CreateDepartment(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, dept *domain.Department) error
	DeleteDepartment(ctx context.Context, id int64) error

	ListBuildings(ctx context.Context) ([]*domain.Building, error)
	CreateBuilding(ctx context.Context, building *domain.Building) (*domain.Building, error)
	UpdateBuilding(ctx context.Context, building *domain.Building) error
	DeleteBuilding(ctx context.Context, id int64) error

	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
