package domain

import (
	"errors"
	"fmt"
	"strings"
)

// VehicleType класс транспортного средства, влияет на множитель тарифа
type VehicleType string

const (
	VehicleCar   VehicleType = "car"
	VehicleBike  VehicleType = "bike"
	VehicleEV    VehicleType = "ev"
	VehicleHeavy VehicleType = "heavy"
)

// MaxVehicleNumberLength длина номера ТС в символах, совпадает с колонкой parking_records.vehicle_number
const MaxVehicleNumberLength = 64

// ErrUnknownVehicleType возвращается при разборе неизвестного типа ТС
var ErrUnknownVehicleType = errors.New("domain: unknown vehicle type")

// VehicleTypes все поддерживаемые типы ТС
var VehicleTypes = []VehicleType{
	VehicleCar,
	VehicleBike,
	VehicleEV,
	VehicleHeavy,
}

// ParseVehicleType разбирает тип ТС из пользовательского ввода
// Регистр не учитывается, пустая строка означает легковой автомобиль
func ParseVehicleType(s string) (VehicleType, error) {
	normalized := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	if normalized == "" {
		return VehicleCar, nil
	}

	for _, vt := range VehicleTypes {
		if normalized == vt {
			return vt, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVehicleType, s)
}

// String возвращает строковое представление типа
func (v VehicleType) String() string {
	return string(v)
}
