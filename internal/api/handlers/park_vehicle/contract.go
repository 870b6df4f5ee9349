package park_vehicle

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	Park(ctx context.Context, vehicleNumber string, vehicleType domain.VehicleType, isVIPRequested bool) (*domain.Stay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
