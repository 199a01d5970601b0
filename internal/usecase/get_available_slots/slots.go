package get_available_slots

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// buildSlots строит дневной каталог с признаком доступности каждого слота
// Слот доступен, если он свободен и не в прошлом
func buildSlots(
	catalog domain.SlotCatalog,
	bookings []*domain.Booking,
	date time.Time,
	now time.Time,
) []domain.Slot {
	starts := catalog.Starts()
	result := make([]domain.Slot, len(starts))

	for i, start := range starts {
		available := isSlotFree(bookings, start, catalog.SlotDurationMinutes) &&
			!isPast(date, start, now)

		result[i] = domain.Slot{
			StartTime:       start,
			DurationMinutes: catalog.SlotDurationMinutes,
			Available:       available,
		}
	}

	return result
}

// isSlotFree проверяет, что ни одно бронирование не пересекается со слотом
// Интервалы полуоткрытые [start, end): бронирование, заканчивающееся ровно
// в начале слота (или начинающееся ровно в его конце), пересечением не считается
//
// Примеры:
// - Слот 10:00-11:00, бронирование 10:00-12:00 → занят
// - Слот 09:00-10:00, бронирование 10:00-12:00 → свободен (граничат)
// - Слот 12:00-13:00, бронирование 10:00-12:00 → свободен (граничат)
func isSlotFree(bookings []*domain.Booking, slotStart types.TimeString, slotDuration int) bool {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		// Конец слота не вычислить - считаем слот занятым, бронировать его нельзя
		return false
	}

	for _, booking := range bookings {
		if booking.Overlaps(slotStart, slotEnd) {
			return false
		}
	}

	return true
}

// isPast проверяет, что слот уже прошёл
// Срабатывает только для сегодняшней даты: прошедшие календарные дни
// отсекаются валидацией даты, а для будущих дней время суток не важно
func isPast(date time.Time, slotStart types.TimeString, now time.Time) bool {
	if !isSameDay(date, now) {
		return false
	}
	current := types.NewTimeString(now)
	// Слот, начинающийся ровно сейчас или раньше, считается прошедшим
	return !slotStart.IsAfter(current)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
