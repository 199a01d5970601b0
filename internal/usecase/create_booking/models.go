package create_booking

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// TimeSlots - выбранные пользователем начала слотов ("09:00", "10:00", ...),
// порядок произвольный
type Request struct {
	RoomID     int64              // ID комнаты
	Date       time.Time          // Дата бронирования (без времени)
	TimeSlots  []types.TimeString // Выбранные слоты каталога
	Title      string             // Тема встречи
	Department *string            // Отдел (опционально)
	BookedBy   string             // Имя бронирующего
	Phone      string             // Контактный телефон (допускаются дефисы 3-3-4)
	Attendees  int                // Количество участников
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	RoomID      int64            // ID комнаты
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Начало интервала (минимальный выбранный слот)
	EndTime     types.TimeString // Конец интервала (максимальный слот + длительность)
	Title       string           // Тема встречи
	Department  *string          // Отдел
	BookedBy    string           // Имя бронирующего
	Phone       string           // Телефон в каноническом виде с дефисами
	Attendees   int              // Количество участников
	Status      string           // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
