package domain

import "time"

// DateFormat формат календарной даты в API и отчётах
const DateFormat = "2006-01-02"

// Status снимок текущей занятости парковки
type Status struct {
	TotalSlots    int
	OccupiedCount int
	FreeCount     int
	FreeSlots     []int
	Occupied      []Stay
	VIPSlots      []int
}

// SummaryRecord строка дневной сводки
// ExitTime == nil означает, что ТС всё ещё на парковке
type SummaryRecord struct {
	VehicleNumber string
	VehicleType   VehicleType
	Slot          int
	EntryTime     time.Time
	ExitTime      *time.Time
	Fee           float64
}

// IsPending возвращает true для ТС, которое ещё не выехало
func (r *SummaryRecord) IsPending() bool {
	return r.ExitTime == nil
}

// Summary дневная сводка по количеству ТС и выручке
type Summary struct {
	Date          time.Time
	TotalVehicles int
	TotalRevenue  float64
	Records       []SummaryRecord
}
