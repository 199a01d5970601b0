package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

func TestIsSlotFree(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "12:00"},
	}

	tests := []struct {
		name      string
		slotStart types.TimeString
		want      bool
	}{
		{
			name:      "slot covered by booking start",
			slotStart: "10:00",
			want:      false,
		},
		{
			name:      "slot inside booking",
			slotStart: "11:00",
			want:      false,
		},
		{
			name:      "slot ends exactly at booking start",
			slotStart: "09:00",
			want:      true,
		},
		{
			name:      "slot starts exactly at booking end",
			slotStart: "12:00",
			want:      true,
		},
		{
			name:      "slot far away",
			slotStart: "15:00",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotFree(bookings, tt.slotStart, 60))
		})
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		slotStart types.TimeString
		want      bool
	}{
		{
			name:      "today slot before now",
			date:      now,
			slotStart: "09:00",
			want:      true,
		},
		{
			name:      "today slot starting exactly now",
			date:      now,
			slotStart: "10:00",
			want:      true,
		},
		{
			name:      "today slot after now",
			date:      now,
			slotStart: "11:00",
			want:      false,
		},
		{
			name:      "future date same clock time",
			date:      now.AddDate(0, 0, 1),
			slotStart: "09:00",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPast(tt.date, tt.slotStart, now))
		})
	}
}

func TestBuildSlots(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	date := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	// Вчерашний день относительно date - все слоты будущие
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "12:00"},
	}

	slots := buildSlots(catalog, bookings, date, now)

	require.Len(t, slots, 13)

	byStart := make(map[types.TimeString]domain.Slot, len(slots))
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.True(t, byStart["09:00"].Available)
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["11:00"].Available)
	assert.True(t, byStart["12:00"].Available)
	assert.True(t, byStart["20:00"].Available)
}

func TestBuildSlots_TodayCutsPastSlots(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	now := time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC)

	slots := buildSlots(catalog, nil, now, now)

	byStart := make(map[types.TimeString]domain.Slot, len(slots))
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.False(t, byStart["08:00"].Available)
	assert.False(t, byStart["12:00"].Available)
	assert.True(t, byStart["13:00"].Available)
	assert.True(t, byStart["20:00"].Available)
}
