package create_booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/pkg/phone"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Возвращает нормализованный номер телефона
func validateRequest(req *Request) (string, error) {
	if req.RoomID <= 0 {
		return "", fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return "", fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.BookedBy == "" {
		return "", fmt.Errorf("%w: bookedBy is required", ErrInvalidInput)
	}

	if len(req.BookedBy) > domain.MaxBookedByLength {
		return "", fmt.Errorf("%w: bookedBy exceeds %d characters", ErrInvalidInput, domain.MaxBookedByLength)
	}

	if req.Department != nil && len(*req.Department) > domain.MaxDepartmentLength {
		return "", fmt.Errorf("%w: department exceeds %d characters", ErrInvalidInput, domain.MaxDepartmentLength)
	}

	if req.Attendees <= 0 {
		return "", fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	normalized, err := phone.Normalize(req.Phone)
	if err != nil {
		return "", ErrInvalidPhone
	}

	return normalized, nil
}

// validateSelection проверяет выбранные слоты против каталога
// Возвращает слоты, отсортированные по возрастанию
//
// Правила:
// - выбран хотя бы один слот
// - каждый слот принадлежит дневному каталогу
// - слоты образуют непрерывный интервал: после сортировки каждая
//   соседняя пара отличается ровно на длительность слота
func validateSelection(catalog domain.SlotCatalog, slots []types.TimeString) ([]types.TimeString, error) {
	if len(slots) == 0 {
		return nil, ErrEmptySelection
	}

	for _, s := range slots {
		if !catalog.Contains(s) {
			return nil, fmt.Errorf("%w: %s", ErrSlotNotInCatalog, s)
		}
	}

	sorted := make([]types.TimeString, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].IsBefore(sorted[j])
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("%w: duplicate slot %s", ErrInvalidInput, sorted[i])
		}
		next, err := sorted[i-1].AddMinutes(catalog.SlotDurationMinutes)
		if err != nil || sorted[i] != next {
			return nil, ErrSlotsNotAdjacent
		}
	}

	return sorted, nil
}

// validateNotInPast проверяет, что бронируемый интервал не в прошлом
// Для сегодняшней даты прошедшим считается слот, начинающийся
// ровно сейчас или раньше
func validateNotInPast(date time.Time, firstSlot types.TimeString, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if dateOnly.Equal(nowOnly) {
		current := types.NewTimeString(now)
		if !firstSlot.IsAfter(current) {
			return ErrSlotInPast
		}
	}

	return nil
}

// hasOverlap проверяет пересечение интервала [start, end) с бронированиями
func hasOverlap(bookings []*domain.Booking, start, end types.TimeString) bool {
	for _, b := range bookings {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
