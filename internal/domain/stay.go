package domain

import "time"

// Stay is an active occupancy of one slot by one vehicle.
// It lives only in memory while the vehicle is parked.
type Stay struct {
	VehicleNumber string
	VehicleType   VehicleType
	EntryTime     time.Time
	Slot          int
	IsVIPRequest  bool // VIP preference asked at entry; the slot itself may be standard
}

// FeeBreakdown describes how a fee was derived from a stay interval.
type FeeBreakdown struct {
	DurationSeconds int64
	DurationHours   float64
	ChargedHours    int
	ExtraHours      int
	Fee             float64
	Multiplier      float64
}

// ClosedRecord is the immutable history entry written when a vehicle exits.
type ClosedRecord struct {
	ID            int64
	VehicleNumber string
	VehicleType   VehicleType
	Slot          int
	EntryTime     time.Time
	ExitTime      time.Time
	Fee           float64

	DurationSeconds int64
	ChargedHours    int
	ExtraHours      int
	Multiplier      float64

	CreatedAt time.Time
}

// NewClosedRecord builds the history entry for a finished stay
func NewClosedRecord(stay Stay, exitTime time.Time, charge FeeBreakdown) ClosedRecord {
	return ClosedRecord{
		VehicleNumber:   stay.VehicleNumber,
		VehicleType:     stay.VehicleType,
		Slot:            stay.Slot,
		EntryTime:       stay.EntryTime,
		ExitTime:        exitTime,
		Fee:             charge.Fee,
		DurationSeconds: charge.DurationSeconds,
		ChargedHours:    charge.ChargedHours,
		ExtraHours:      charge.ExtraHours,
		Multiplier:      charge.Multiplier,
	}
}

// ExitResult is returned to the caller when a vehicle leaves.
type ExitResult struct {
	VehicleNumber string
	VehicleType   VehicleType
	EntryTime     time.Time
	ExitTime      time.Time
	Slot          int
	Fee           float64
	Charge        FeeBreakdown
	Persisted     bool
}
