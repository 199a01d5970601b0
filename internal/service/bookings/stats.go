package bookings

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
)

// Summarize строит сводную статистику по списку бронирований
// Чистая функция: окно отсчитывается от now, пустые дни и месяцы
// заполняются нулями, порядок - по возрастанию
func Summarize(bookings []*domain.Booking, now time.Time) *models.StatsResponse {
	today := dateOnly(now)

	daily := make([]models.DailyCount, domain.StatsDailyDays)
	dailyIndex := make(map[string]int, domain.StatsDailyDays)
	for i := 0; i < domain.StatsDailyDays; i++ {
		day := today.AddDate(0, 0, i-domain.StatsDailyDays+1)
		key := day.Format(domain.DateFormat)
		daily[i] = models.DailyCount{Date: key}
		dailyIndex[key] = i
	}

	monthly := make([]models.MonthCount, domain.StatsMonthlyMonths)
	monthlyIndex := make(map[string]int, domain.StatsMonthlyMonths)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < domain.StatsMonthlyMonths; i++ {
		month := firstOfMonth.AddDate(0, i-domain.StatsMonthlyMonths+1, 0)
		key := month.Format("2006-01")
		monthly[i] = models.MonthCount{Month: key}
		monthlyIndex[key] = i
	}

	resp := &models.StatsResponse{
		TotalBookings: int64(len(bookings)),
		Daily:         daily,
		Monthly:       monthly,
	}

	for _, b := range bookings {
		day := dateOnly(b.BookingDate)

		if day.Equal(today) {
			resp.TodayBookings++
		}
		switch b.Status {
		case domain.StatusConfirmed:
			resp.ConfirmedCount++
		case domain.StatusPending:
			resp.PendingCount++
		}
		if i, ok := dailyIndex[day.Format(domain.DateFormat)]; ok {
			resp.Daily[i].Count++
		}
		if i, ok := monthlyIndex[day.Format("2006-01")]; ok {
			resp.Monthly[i].Count++
		}
	}

	return resp
}

// dateOnly обнуляет время, оставляя календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
