package get_status

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	Status(ctx context.Context) *domain.Status
}

type Logger interface {
	Info(format string, v ...interface{})
}
