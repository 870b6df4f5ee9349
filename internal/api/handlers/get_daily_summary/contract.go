package get_daily_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	DailySummary(ctx context.Context, date time.Time) (*domain.Summary, error)
	Today() time.Time
	Location() *time.Location
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
