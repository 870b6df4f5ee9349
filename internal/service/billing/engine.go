package billing

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// roundingBias компенсирует двоичное представление float,
// чтобы значения вида x.xx5 округлялись вверх
const roundingBias = 1e-9

// defaultMultiplier применяется к типам ТС без настроенного множителя
const defaultMultiplier = 1.0

// Engine рассчитывает плату за стоянку по ступенчатому тарифу
// Не имеет состояния кроме конфигурации, безопасен для конкурентного использования
type Engine struct {
	firstHours    int
	firstHoursFee float64
	perHourFee    float64
	multipliers   map[domain.VehicleType]float64
}

// NewEngine создает движок тарификации
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	multipliers := make(map[domain.VehicleType]float64, len(cfg.VehicleTypeMultiplier))
	for vt, m := range cfg.VehicleTypeMultiplier {
		multipliers[vt] = m
	}

	return &Engine{
		firstHours:    cfg.FirstHours,
		firstHoursFee: cfg.FirstHoursFee,
		perHourFee:    cfg.PerHourFee,
		multipliers:   multipliers,
	}, nil
}

// CalculateFee рассчитывает плату за интервал [entry, exit]
//
// Первые firstHours часов оплачиваются фиксированной суммой (граница включительно),
// каждый начатый час сверх них - по perHourFee. Итог умножается на множитель типа ТС
// и округляется до копеек.
func (e *Engine) CalculateFee(entry, exit time.Time, vehicleType domain.VehicleType) (domain.FeeBreakdown, error) {
	if exit.Before(entry) {
		return domain.FeeBreakdown{}, fmt.Errorf("%w: entry=%s exit=%s",
			ErrInvalidInterval, entry.Format(time.RFC3339), exit.Format(time.RFC3339))
	}

	duration := exit.Sub(entry)
	exactHours := duration.Seconds() / 3600.0

	var (
		chargedHours int
		extraHours   int
		baseFee      float64
	)

	if exactHours <= float64(e.firstHours) {
		chargedHours = e.firstHours
		baseFee = e.firstHoursFee
	} else {
		extraHours = int(math.Ceil(exactHours - float64(e.firstHours)))
		chargedHours = e.firstHours + extraHours
		baseFee = e.firstHoursFee + float64(extraHours)*e.perHourFee
	}

	multiplier := e.Multiplier(vehicleType)

	return domain.FeeBreakdown{
		DurationSeconds: int64(duration / time.Second),
		DurationHours:   exactHours,
		ChargedHours:    chargedHours,
		ExtraHours:      extraHours,
		Fee:             roundMoney(baseFee * multiplier),
		Multiplier:      multiplier,
	}, nil
}

// Multiplier возвращает множитель тарифа для типа ТС
func (e *Engine) Multiplier(vehicleType domain.VehicleType) float64 {
	if m, ok := e.multipliers[vehicleType]; ok {
		return m
	}
	return defaultMultiplier
}

// roundMoney округляет до 2 знаков, половина - от нуля
func roundMoney(v float64) float64 {
	return math.Round((v+roundingBias)*100) / 100
}
