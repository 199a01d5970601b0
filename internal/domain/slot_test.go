package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

func TestSlotCatalog_Starts(t *testing.T) {
	catalog := DefaultSlotCatalog()

	starts := catalog.Starts()

	// 08:00..20:00 по часу - 13 слотов, последний заканчивается в 21:00
	require.Len(t, starts, 13)
	assert.Equal(t, types.TimeString("08:00"), starts[0])
	assert.Equal(t, types.TimeString("20:00"), starts[len(starts)-1])
}

func TestSlotCatalog_Starts_SlotMustFitBeforeClose(t *testing.T) {
	catalog := SlotCatalog{OpenHour: 9, CloseHour: 12, SlotDurationMinutes: 90}

	starts := catalog.Starts()

	// 09:00-10:30 и 10:30-12:00 умещаются, следующий вышел бы за закрытие
	require.Len(t, starts, 2)
	assert.Equal(t, types.TimeString("09:00"), starts[0])
	assert.Equal(t, types.TimeString("10:30"), starts[1])
}

func TestSlotCatalog_Contains(t *testing.T) {
	catalog := DefaultSlotCatalog()

	assert.True(t, catalog.Contains("08:00"))
	assert.True(t, catalog.Contains("20:00"))
	assert.False(t, catalog.Contains("21:00"))
	assert.False(t, catalog.Contains("07:00"))
	assert.False(t, catalog.Contains("08:30"))
}

func TestSlotCatalog_EndOf(t *testing.T) {
	catalog := DefaultSlotCatalog()

	end, err := catalog.EndOf("20:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("21:00"), end)
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{StartTime: "10:00", EndTime: "12:00"}

	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  bool
	}{
		{
			name:  "slot inside booking",
			start: "10:00",
			end:   "11:00",
			want:  true,
		},
		{
			name:  "slot overlapping booking start",
			start: "09:30",
			end:   "10:30",
			want:  true,
		},
		{
			name:  "slot ends exactly at booking start",
			start: "09:00",
			end:   "10:00",
			want:  false,
		},
		{
			name:  "slot starts exactly at booking end",
			start: "12:00",
			end:   "13:00",
			want:  false,
		},
		{
			name:  "slot fully before",
			start: "08:00",
			end:   "09:00",
			want:  false,
		},
		{
			name:  "slot covers whole booking",
			start: "09:00",
			end:   "13:00",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}
