package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

func TestValidateSelection(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()

	tests := []struct {
		name    string
		slots   []types.TimeString
		want    []types.TimeString
		wantErr error
	}{
		{
			name:  "single slot",
			slots: []types.TimeString{"09:00"},
			want:  []types.TimeString{"09:00"},
		},
		{
			name:  "adjacent slots in order",
			slots: []types.TimeString{"09:00", "10:00", "11:00"},
			want:  []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:  "adjacent slots out of order",
			slots: []types.TimeString{"11:00", "09:00", "10:00"},
			want:  []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:    "empty selection",
			slots:   nil,
			wantErr: ErrEmptySelection,
		},
		{
			name:    "slot outside catalog",
			slots:   []types.TimeString{"07:00"},
			wantErr: ErrSlotNotInCatalog,
		},
		{
			name:    "slot not on the hour",
			slots:   []types.TimeString{"09:30"},
			wantErr: ErrSlotNotInCatalog,
		},
		{
			name:    "gap in selection",
			slots:   []types.TimeString{"09:00", "11:00"},
			wantErr: ErrSlotsNotAdjacent,
		},
		{
			name:    "duplicate slot",
			slots:   []types.TimeString{"09:00", "09:00"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateSelection(catalog, tt.slots)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateNotInPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		slot    types.TimeString
		wantErr error
	}{
		{
			name: "future date",
			date: now.AddDate(0, 0, 1),
			slot: "08:00",
		},
		{
			name: "today future slot",
			date: now,
			slot: "11:00",
		},
		{
			name:    "today slot starting exactly now",
			date:    now,
			slot:    "10:00",
			wantErr: ErrSlotInPast,
		},
		{
			name:    "today past slot",
			date:    now,
			slot:    "09:00",
			wantErr: ErrSlotInPast,
		},
		{
			name:    "past date",
			date:    now.AddDate(0, 0, -1),
			slot:    "11:00",
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNotInPast(tt.date, tt.slot, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			RoomID:    1,
			Date:      time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
			TimeSlots: []types.TimeString{"09:00"},
			Title:     "Sprint planning",
			BookedBy:  "Somchai",
			Phone:     "081-234-5678",
			Attendees: 4,
		}
	}

	t.Run("valid request normalizes phone", func(t *testing.T) {
		normalized, err := validateRequest(valid())
		require.NoError(t, err)
		assert.Equal(t, "0812345678", normalized)
	})

	t.Run("missing title", func(t *testing.T) {
		req := valid()
		req.Title = ""
		_, err := validateRequest(req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing bookedBy", func(t *testing.T) {
		req := valid()
		req.BookedBy = ""
		_, err := validateRequest(req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid phone", func(t *testing.T) {
		req := valid()
		req.Phone = "12345"
		_, err := validateRequest(req)
		require.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("non-positive attendees", func(t *testing.T) {
		req := valid()
		req.Attendees = 0
		_, err := validateRequest(req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
