package exit_vehicle

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ExitRequest тело запроса на выезд
type ExitRequest struct {
	Number string `json:"number"`
}

// ExitResponse итог стоянки
// Persisted=false означает, что место освобождено, но запись в историю не попала
type ExitResponse struct {
	VehicleNumber   string    `json:"vehicle_number"`
	VehicleType     string    `json:"vehicle_type"`
	Slot            int       `json:"slot"`
	EntryTime       time.Time `json:"entry_time"`
	ExitTime        time.Time `json:"exit_time"`
	DurationSeconds int64     `json:"duration_seconds"`
	DurationHours   float64   `json:"duration_hours"`
	ChargedHours    int       `json:"charged_hours"`
	ExtraHours      int       `json:"extra_hours"`
	Multiplier      float64   `json:"multiplier"`
	Fee             float64   `json:"fee"`
	Persisted       bool      `json:"persisted"`
}

func FromExitResult(res *domain.ExitResult) *ExitResponse {
	return &ExitResponse{
		VehicleNumber:   res.VehicleNumber,
		VehicleType:     res.VehicleType.String(),
		Slot:            res.Slot,
		EntryTime:       res.EntryTime,
		ExitTime:        res.ExitTime,
		DurationSeconds: res.Charge.DurationSeconds,
		DurationHours:   res.Charge.DurationHours,
		ChargedHours:    res.Charge.ChargedHours,
		ExtraHours:      res.Charge.ExtraHours,
		Multiplier:      res.Charge.Multiplier,
		Fee:             res.Fee,
		Persisted:       res.Persisted,
	}
}
