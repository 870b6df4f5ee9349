package park_vehicle

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParkRequest тело запроса на въезд
type ParkRequest struct {
	Number string  `json:"number"`
	VType  string  `json:"vtype"`
	VIP    VIPFlag `json:"vip"`
}

// VIPFlag признак VIP, принимает bool, число (не ноль - true) или строку "true"/"1"/"yes"
type VIPFlag bool

func (f *VIPFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = VIPFlag(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = VIPFlag(n != 0)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("vip: expected bool, number or string, got %s", string(data))
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		*f = true
	default:
		*f = false
	}
	return nil
}

// ParkResponse ответ на успешный въезд
type ParkResponse struct {
	Slot          int       `json:"slot"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	EntryTime     time.Time `json:"entry_time"`
	VIPRequested  bool      `json:"vip_requested"`
	VIPSlot       bool      `json:"vip_slot"`
}

func FromStay(stay *domain.Stay, isVIPSlot bool) *ParkResponse {
	return &ParkResponse{
		Slot:          stay.Slot,
		VehicleNumber: stay.VehicleNumber,
		VehicleType:   stay.VehicleType.String(),
		EntryTime:     stay.EntryTime,
		VIPRequested:  stay.IsVIPRequest,
		VIPSlot:       isVIPSlot,
	}
}
