package exit_vehicle

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingNumber      = "не указан номер транспортного средства"
	msgNotFound           = "транспортное средство не найдено на парковке"
	msgInvalidInterval    = "время выезда раньше времени въезда"
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

// Handle POST /api/v1/exit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /exit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Number) == "" {
		h.logger.Warn("POST /exit - Missing vehicle number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	result, err := h.service.Exit(r.Context(), req.Number)
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrPersistenceFailure) && result != nil:
			// место уже освобождено, плата посчитана - отдаём результат
			h.logger.Error("POST /exit - Record not persisted: number=%s, slot=%d, error=%v",
				req.Number, result.Slot, err)
			handlers.RespondJSON(w, http.StatusOK, FromExitResult(result))

		case errors.Is(err, parking.ErrNotFound):
			h.logger.Warn("POST /exit - Vehicle not found: number=%s", req.Number)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, parking.ErrInvalidInterval):
			h.logger.Error("POST /exit - Invalid interval: number=%s, error=%v", req.Number, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidInterval)

		case errors.Is(err, parking.ErrInvalidInput):
			h.logger.Warn("POST /exit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingNumber)

		default:
			h.logger.Error("POST /exit - Failed to exit: number=%s, error=%v", req.Number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /exit - Vehicle left: number=%s, slot=%d, fee=%.2f", result.VehicleNumber, result.Slot, result.Fee)
	handlers.RespondJSON(w, http.StatusOK, FromExitResult(result))
}
