package manage_rooms

import (
	"context"
	"io"

	"github.com/m04kA/MRS-RoomBookingService/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
	GetByID(ctx context.Context, id int64) (*models.RoomResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error)
	Delete(ctx context.Context, id int64) error
}

// FileStorageClient интерфейс клиента файлового хранилища для фото комнат
type FileStorageClient interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Remove(ctx context.Context, publicURL string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
