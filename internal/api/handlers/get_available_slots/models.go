package get_available_slots

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/MRS-RoomBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RoomID int64           `json:"roomId"`
	Date   string          `json:"date"`
	Slots  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		RoomID: roomID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
