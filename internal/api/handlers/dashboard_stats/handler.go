package dashboard_stats

import (
	"net/http"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to build stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats built: total=%d, today=%d",
		result.TotalBookings, result.TodayBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
