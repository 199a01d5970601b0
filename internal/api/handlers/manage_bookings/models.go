package manage_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
)

// ParseListFilter строит фильтр списка бронирований из query параметров
// Поддерживаются roomId, date (YYYY-MM-DD) и status
func ParseListFilter(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := query.Get("roomId"); v != "" {
		roomID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	return req, nil
}
