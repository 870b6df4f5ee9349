package billing

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Значения тарифа по умолчанию
const (
	DefaultFirstHours    = 2
	DefaultFirstHoursFee = 20.0
	DefaultPerHourFee    = 10.0
)

// Config параметры тарифа, фиксируются при создании движка
type Config struct {
	FirstHours            int
	FirstHoursFee         float64
	PerHourFee            float64
	VehicleTypeMultiplier map[domain.VehicleType]float64
}

// DefaultConfig возвращает тариф по умолчанию
func DefaultConfig() Config {
	return Config{
		FirstHours:    DefaultFirstHours,
		FirstHoursFee: DefaultFirstHoursFee,
		PerHourFee:    DefaultPerHourFee,
		VehicleTypeMultiplier: map[domain.VehicleType]float64{
			domain.VehicleCar:   1.0,
			domain.VehicleBike:  0.5,
			domain.VehicleEV:    1.2,
			domain.VehicleHeavy: 1.5,
		},
	}
}

// Validate проверяет, что тариф не может дать отрицательную плату
func (c Config) Validate() error {
	if c.FirstHours < 0 {
		return fmt.Errorf("%w: first hours must not be negative", ErrInvalidConfig)
	}
	if c.FirstHoursFee < 0 {
		return fmt.Errorf("%w: first hours fee must not be negative", ErrInvalidConfig)
	}
	if c.PerHourFee < 0 {
		return fmt.Errorf("%w: per hour fee must not be negative", ErrInvalidConfig)
	}
	for vt, m := range c.VehicleTypeMultiplier {
		if m < 0 {
			return fmt.Errorf("%w: multiplier for %s must not be negative", ErrInvalidConfig, vt)
		}
	}
	return nil
}
