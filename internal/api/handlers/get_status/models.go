package get_status

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type OccupiedSlot struct {
	Slot          int       `json:"slot"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	EntryTime     time.Time `json:"entry_time"`
	VIPSlot       bool      `json:"vip_slot"`
	VIPRequested  bool      `json:"vip_requested"`
}

type StatusResponse struct {
	TotalSlots int            `json:"total_slots"`
	Occupied   int            `json:"occupied"`
	Free       int            `json:"free"`
	FreeSlots  []int          `json:"free_slots"`
	VIPSlots   []int          `json:"vip_slots"`
	Vehicles   []OccupiedSlot `json:"vehicles"`
}

func FromStatus(status *domain.Status) *StatusResponse {
	vip := make(map[int]bool, len(status.VIPSlots))
	for _, s := range status.VIPSlots {
		vip[s] = true
	}

	vehicles := make([]OccupiedSlot, 0, len(status.Occupied))
	for _, stay := range status.Occupied {
		vehicles = append(vehicles, OccupiedSlot{
			Slot:          stay.Slot,
			VehicleNumber: stay.VehicleNumber,
			VehicleType:   stay.VehicleType.String(),
			EntryTime:     stay.EntryTime,
			VIPSlot:       vip[stay.Slot],
			VIPRequested:  stay.IsVIPRequest,
		})
	}

	freeSlots := status.FreeSlots
	if freeSlots == nil {
		freeSlots = []int{}
	}
	vipSlots := status.VIPSlots
	if vipSlots == nil {
		vipSlots = []int{}
	}

	return &StatusResponse{
		TotalSlots: status.TotalSlots,
		Occupied:   status.OccupiedCount,
		Free:       status.FreeCount,
		FreeSlots:  freeSlots,
		VIPSlots:   vipSlots,
		Vehicles:   vehicles,
	}
}
