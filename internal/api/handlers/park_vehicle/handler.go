package park_vehicle

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingNumber      = "не указан номер транспортного средства"
	msgInvalidNumber      = "некорректный номер транспортного средства"
	msgUnknownVehicleType = "неизвестный тип транспортного средства"
	msgAlreadyParked      = "транспортное средство уже на парковке"
	msgLotFull            = "свободных мест нет"
)

type Handler struct {
	service  ParkingService
	vipSlots map[int]bool
	logger   Logger
}

func NewHandler(service ParkingService, vipSlots []int, logger Logger) *Handler {
	vip := make(map[int]bool, len(vipSlots))
	for _, s := range vipSlots {
		vip[s] = true
	}
	return &Handler{
		service:  service,
		vipSlots: vip,
		logger:   logger,
	}
}

// Handle POST /api/v1/entry
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ParkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /entry - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Number) == "" {
		h.logger.Warn("POST /entry - Missing vehicle number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	vehicleType, err := domain.ParseVehicleType(req.VType)
	if err != nil {
		h.logger.Warn("POST /entry - Unknown vehicle type: number=%s, vtype=%q", req.Number, req.VType)
		handlers.RespondBadRequest(w, msgUnknownVehicleType)
		return
	}

	stay, err := h.service.Park(r.Context(), req.Number, vehicleType, bool(req.VIP))
	if err != nil {
		switch {
		case errors.Is(err, parking.ErrAlreadyParked):
			h.logger.Warn("POST /entry - Already parked: number=%s", req.Number)
			handlers.RespondConflict(w, msgAlreadyParked)

		case errors.Is(err, parking.ErrLotFull):
			h.logger.Warn("POST /entry - Lot full: number=%s", req.Number)
			handlers.RespondConflict(w, msgLotFull)

		case errors.Is(err, parking.ErrInvalidInput):
			h.logger.Warn("POST /entry - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNumber)

		default:
			h.logger.Error("POST /entry - Failed to park: number=%s, error=%v", req.Number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /entry - Vehicle parked: number=%s, slot=%d", stay.VehicleNumber, stay.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromStay(stay, h.vipSlots[stay.Slot]))
}
