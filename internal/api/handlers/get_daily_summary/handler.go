package get_daily_summary

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/revenue?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := handlers.ParseDate(dateStr, h.service.Location(), h.service.Today())
	if err != nil {
		h.logger.Warn("GET /revenue - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	summary, err := h.service.DailySummary(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /revenue - Failed to build summary: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /revenue - date=%s, vehicles=%d, revenue=%.2f",
		date.Format(domain.DateFormat), summary.TotalVehicles, summary.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, FromSummary(summary))
}
