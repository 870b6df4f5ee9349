package get_status

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

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

// Handle GET /api/v1/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status(r.Context())

	h.logger.Info("GET /status - occupied=%d/%d", status.OccupiedCount, status.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromStatus(status))
}
