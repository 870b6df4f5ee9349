package handlers

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParseDate разбирает дату YYYY-MM-DD в опорной временной зоне
// Пустое значение означает today
func ParseDate(value string, loc *time.Location, today time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return today, nil
	}
	return time.ParseInLocation(domain.DateFormat, value, loc)
}
