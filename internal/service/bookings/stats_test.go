package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{BookingDate: day(2025, 10, 15), Status: domain.StatusConfirmed}, // сегодня
		{BookingDate: day(2025, 10, 15), Status: domain.StatusPending},   // сегодня
		{BookingDate: day(2025, 10, 13), Status: domain.StatusConfirmed}, // в дневном окне
		{BookingDate: day(2025, 10, 9), Status: domain.StatusConfirmed},  // первый день окна
		{BookingDate: day(2025, 10, 8), Status: domain.StatusPending},    // за пределами дневного окна
		{BookingDate: day(2025, 8, 1), Status: domain.StatusConfirmed},   // в месячном окне
		{BookingDate: day(2025, 4, 1), Status: domain.StatusConfirmed},   // за пределами месячного окна
	}

	summary := Summarize(bookings, now)

	assert.Equal(t, int64(7), summary.TotalBookings)
	assert.Equal(t, int64(2), summary.TodayBookings)
	assert.Equal(t, int64(5), summary.ConfirmedCount)
	assert.Equal(t, int64(2), summary.PendingCount)

	// Дневное окно: 7 дней, заканчивается сегодняшним
	require.Len(t, summary.Daily, 7)
	assert.Equal(t, "2025-10-09", summary.Daily[0].Date)
	assert.Equal(t, "2025-10-15", summary.Daily[6].Date)
	assert.Equal(t, int64(1), summary.Daily[0].Count)
	assert.Equal(t, int64(0), summary.Daily[1].Count)
	assert.Equal(t, int64(1), summary.Daily[4].Count)
	assert.Equal(t, int64(2), summary.Daily[6].Count)

	// Месячное окно: 6 месяцев, заканчивается текущим
	require.Len(t, summary.Monthly, 6)
	assert.Equal(t, "2025-05", summary.Monthly[0].Month)
	assert.Equal(t, "2025-10", summary.Monthly[5].Month)
	assert.Equal(t, int64(1), summary.Monthly[3].Count) // август
	assert.Equal(t, int64(5), summary.Monthly[5].Count) // октябрь
	assert.Equal(t, int64(0), summary.Monthly[0].Count)
}

func TestSummarize_Empty(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	summary := Summarize(nil, now)

	assert.Equal(t, int64(0), summary.TotalBookings)
	assert.Equal(t, int64(0), summary.TodayBookings)
	assert.Equal(t, int64(0), summary.ConfirmedCount)
	assert.Equal(t, int64(0), summary.PendingCount)
	require.Len(t, summary.Daily, 7)
	require.Len(t, summary.Monthly, 6)
	for _, d := range summary.Daily {
		assert.Equal(t, int64(0), d.Count)
	}
	for _, m := range summary.Monthly {
		assert.Equal(t, int64(0), m.Count)
	}
}

func TestSummarize_MonthWindowAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{BookingDate: day(2025, 12, 31)},
		{BookingDate: day(2026, 1, 5)},
	}

	summary := Summarize(bookings, now)

	require.Len(t, summary.Monthly, 6)
	assert.Equal(t, "2025-09", summary.Monthly[0].Month)
	assert.Equal(t, "2026-02", summary.Monthly[5].Month)
	assert.Equal(t, int64(1), summary.Monthly[3].Count) // декабрь 2025
	assert.Equal(t, int64(1), summary.Monthly[4].Count) // январь 2026
}
