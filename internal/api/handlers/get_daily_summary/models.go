package get_daily_summary

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type SummaryRecord struct {
	VehicleNumber string     `json:"vehicle_number"`
	VehicleType   string     `json:"vehicle_type"`
	Slot          int        `json:"slot"`
	EntryTime     time.Time  `json:"entry_time"`
	ExitTime      *time.Time `json:"exit_time"`
	Fee           float64    `json:"fee"`
	Pending       bool       `json:"pending"`
}

type SummaryResponse struct {
	Date          string          `json:"date"`
	TotalVehicles int             `json:"total_vehicles"`
	TotalRevenue  float64         `json:"total_revenue"`
	Records       []SummaryRecord `json:"records"`
}

func FromSummary(summary *domain.Summary) *SummaryResponse {
	records := make([]SummaryRecord, 0, len(summary.Records))
	for i := range summary.Records {
		rec := &summary.Records[i]
		records = append(records, SummaryRecord{
			VehicleNumber: rec.VehicleNumber,
			VehicleType:   rec.VehicleType.String(),
			Slot:          rec.Slot,
			EntryTime:     rec.EntryTime,
			ExitTime:      rec.ExitTime,
			Fee:           rec.Fee,
			Pending:       rec.IsPending(),
		})
	}

	return &SummaryResponse{
		Date:          summary.Date.Format(domain.DateFormat),
		TotalVehicles: summary.TotalVehicles,
		TotalRevenue:  summary.TotalRevenue,
		Records:       records,
	}
}
