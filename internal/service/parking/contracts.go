package parking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// RecordStore хранилище завершённых стоянок (только добавление)
type RecordStore interface {
	Append(ctx context.Context, record domain.ClosedRecord) (domain.ClosedRecord, error)
	// QueryByExitDate возвращает записи с временем выезда в [day, day+1 сутки)
	// day - полночь в опорной временной зоне сервиса
	QueryByExitDate(ctx context.Context, day time.Time) ([]domain.ClosedRecord, error)
}

// FeeCalculator движок тарификации
type FeeCalculator interface {
	CalculateFee(entry, exit time.Time, vehicleType domain.VehicleType) (domain.FeeBreakdown, error)
}

// Metrics приёмник доменных метрик парковки
type Metrics interface {
	RecordParkingOperation(operation, status string)
	SetOccupancy(occupied, total int)
	RecordPayment(vehicleType string, fee float64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NopMetrics используется, когда метрики выключены
type NopMetrics struct{}

func (NopMetrics) RecordParkingOperation(string, string) {}
func (NopMetrics) SetOccupancy(int, int)                 {}
func (NopMetrics) RecordPayment(string, float64)         {}
