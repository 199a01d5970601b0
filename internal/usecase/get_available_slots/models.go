package get_available_slots

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
)

// Request модель запроса на получение слотов комнаты
type Request struct {
	RoomID int64     // ID комнаты
	Date   time.Time // Дата (без времени)
}

// Response модель ответа со слотами дневного каталога
type Response struct {
	RoomID int64         // ID комнаты
	Date   time.Time     // Дата, на которую запрашивались слоты
	Slots  []domain.Slot // Весь каталог с признаком доступности каждого слота
}
