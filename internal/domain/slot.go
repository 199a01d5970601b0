package domain

import (
	"fmt"

	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// Slot represents one catalog time slot for a room on a specific date
// Derived value, never persisted
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool // свободен и не в прошлом
}

// SlotCatalog параметры генерации дневного каталога слотов
type SlotCatalog struct {
	OpenHour            int
	CloseHour           int
	SlotDurationMinutes int
}

// DefaultSlotCatalog возвращает каталог по умолчанию (08:00-20:00, по часу)
func DefaultSlotCatalog() SlotCatalog {
	return SlotCatalog{
		OpenHour:            DefaultOpenHour,
		CloseHour:           DefaultCloseHour,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// Starts возвращает времена начала всех слотов каталога
// Слот попадает в каталог, только если целиком умещается до закрытия
func (c SlotCatalog) Starts() []types.TimeString {
	starts := make([]types.TimeString, 0)
	closeMinutes := c.CloseHour * 60

	for m := c.OpenHour * 60; m+c.SlotDurationMinutes <= closeMinutes; m += c.SlotDurationMinutes {
		starts = append(starts, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}

	return starts
}

// Contains проверяет принадлежность времени начала каталогу
func (c SlotCatalog) Contains(start types.TimeString) bool {
	for _, s := range c.Starts() {
		if s == start {
			return true
		}
	}
	return false
}

// EndOf возвращает время конца слота с указанным началом
func (c SlotCatalog) EndOf(start types.TimeString) (types.TimeString, error) {
	return start.AddMinutes(c.SlotDurationMinutes)
}
