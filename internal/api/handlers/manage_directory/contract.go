package manage_directory

import (
	"context"

	"github.com/m04kA/MRS-RoomBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListDepartments(ctx context.Context) (*models.DepartmentListResponse, error)
	CreateDepartment(ctx context.Context, req *models.DepartmentRequest) (*models.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id int64, req *models.DepartmentRequest) error
	DeleteDepartment(ctx context.Context, id int64) error

	ListBuildings(ctx context.Context) (*models.NamedListResponse, error)
	CreateBuilding(ctx context.Context, req *models.NamedRequest) (*models.NamedResponse, error)
	UpdateBuilding(ctx context.Context, id int64, req *models.NamedRequest) error
	DeleteBuilding(ctx context.Context, id int64) error

	ListEquipment(ctx context.Context) (*models.NamedListResponse, error)
	CreateEquipment(ctx context.Context, req *models.NamedRequest) (*models.NamedResponse, error)
	UpdateEquipment(ctx context.Context, id int64, req *models.NamedRequest) error
	DeleteEquipment(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
