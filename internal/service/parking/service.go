package parking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/billing"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

const tracerName = "github.com/m04kA/SMC-ParkingService/internal/service/parking"

// Статусы операций для метрик
const (
	statusSuccess       = "success"
	statusAlreadyParked = "already_parked"
	statusLotFull       = "lot_full"
	statusNotFound      = "not_found"
	statusInvalid       = "invalid"
	statusNotPersisted  = "not_persisted"
	statusError         = "error"
)

// Service сервис въезда, выезда и отчётности парковки
//
// Активные стоянки хранятся в памяти (slots.Registry) под одним мьютексом,
// завершённые - во внешнем RecordStore. Запись в хранилище происходит после
// освобождения места и вне блокировки.
type Service struct {
	mu       sync.Mutex
	registry *slots.Registry

	billing      FeeCalculator
	store        RecordStore
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	tracer       trace.Tracer
	logger       Logger
}

// NewService создает новый экземпляр сервиса парковки
// location - опорная временная зона для отметок времени и дневных сводок
func NewService(
	registry *slots.Registry,
	billingEngine FeeCalculator,
	store RecordStore,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}

	metrics.SetOccupancy(registry.OccupiedCount(), registry.Total())

	return &Service{
		registry:     registry,
		billing:      billingEngine,
		store:        store,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		tracer:       otel.Tracer(tracerName),
		logger:       logger,
	}
}

// Location возвращает опорную временную зону сервиса
func (s *Service) Location() *time.Location {
	return s.location
}

// Park регистрирует въезд ТС и выделяет ему место
// При isVIPRequested сначала предлагаются VIP места; если свободных VIP нет,
// выделяется первое свободное место
func (s *Service) Park(ctx context.Context, vehicleNumber string, vehicleType domain.VehicleType, isVIPRequested bool) (*domain.Stay, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)

	_, span := s.tracer.Start(ctx, "parking.park", trace.WithAttributes(
		attribute.String("vehicle.number", vehicleNumber),
		attribute.String("vehicle.type", vehicleType.String()),
		attribute.Bool("vehicle.vip_requested", isVIPRequested),
	))
	defer span.End()

	s.logger.Info("Park: vehicle=%s, type=%s, vip=%t", vehicleNumber, vehicleType, isVIPRequested)

	if vehicleNumber == "" {
		s.logger.Warn("Park: empty vehicle number")
		return nil, s.fail(span, "park", statusInvalid, fmt.Errorf("%w: vehicle number is required", ErrInvalidInput))
	}
	if n := utf8.RuneCountInString(vehicleNumber); n > domain.MaxVehicleNumberLength {
		s.logger.Warn("Park: vehicle number too long (%d chars)", n)
		return nil, s.fail(span, "park", statusInvalid,
			fmt.Errorf("%w: vehicle number longer than %d characters", ErrInvalidInput, domain.MaxVehicleNumberLength))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.registry.FindSlotFor(vehicleNumber); ok {
		s.logger.Warn("Park: vehicle=%s already parked at slot=%d", vehicleNumber, existing)
		return nil, s.fail(span, "park", statusAlreadyParked,
			fmt.Errorf("%w: vehicle %s at slot %d", ErrAlreadyParked, vehicleNumber, existing))
	}

	slot, ok := s.registry.NextFreeSlot(isVIPRequested)
	if !ok {
		s.logger.Warn("Park: lot is full, vehicle=%s rejected", vehicleNumber)
		return nil, s.fail(span, "park", statusLotFull, ErrLotFull)
	}

	stay := domain.Stay{
		VehicleNumber: vehicleNumber,
		VehicleType:   vehicleType,
		EntryTime:     s.now(),
		Slot:          slot,
		IsVIPRequest:  isVIPRequested,
	}

	if err := s.registry.Occupy(slot, stay); err != nil {
		s.logger.Error("Park: failed to occupy slot=%d: %v", slot, err)
		return nil, s.fail(span, "park", statusError, fmt.Errorf("%w: Park - occupy slot: %v", ErrInternal, err))
	}

	s.metrics.RecordParkingOperation("park", statusSuccess)
	s.metrics.SetOccupancy(s.registry.OccupiedCount(), s.registry.Total())
	span.SetAttributes(
		attribute.Int("slot.number", slot),
		attribute.Bool("slot.vip", s.registry.IsVIP(slot)),
	)

	s.logger.Info("Park: vehicle=%s allocated slot=%d (vip slot=%t)", vehicleNumber, slot, s.registry.IsVIP(slot))
	return &stay, nil
}

// Exit регистрирует выезд ТС: рассчитывает плату, освобождает место
// и передаёт завершённую запись в хранилище.
//
// Если запись не удалось сохранить, место всё равно остаётся свободным:
// возвращается результат с Persisted=false и ошибка ErrPersistenceFailure.
func (s *Service) Exit(ctx context.Context, vehicleNumber string) (*domain.ExitResult, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)

	ctx, span := s.tracer.Start(ctx, "parking.exit", trace.WithAttributes(
		attribute.String("vehicle.number", vehicleNumber),
	))
	defer span.End()

	s.logger.Info("Exit: vehicle=%s", vehicleNumber)

	if vehicleNumber == "" {
		s.logger.Warn("Exit: empty vehicle number")
		return nil, s.fail(span, "exit", statusInvalid, fmt.Errorf("%w: vehicle number is required", ErrInvalidInput))
	}

	stay, exitTime, charge, err := s.closeStay(vehicleNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			s.logger.Warn("Exit: vehicle=%s not found", vehicleNumber)
			return nil, s.fail(span, "exit", statusNotFound, err)
		case errors.Is(err, ErrInvalidInterval):
			s.logger.Error("Exit: vehicle=%s has entry after exit: %v", vehicleNumber, err)
			return nil, s.fail(span, "exit", statusInvalid, err)
		default:
			s.logger.Error("Exit: vehicle=%s failed: %v", vehicleNumber, err)
			return nil, s.fail(span, "exit", statusError, err)
		}
	}

	span.SetAttributes(
		attribute.Int("slot.number", stay.Slot),
		attribute.String("vehicle.type", stay.VehicleType.String()),
		attribute.Float64("parking.fee", charge.Fee),
	)
	s.metrics.RecordPayment(stay.VehicleType.String(), charge.Fee)

	result := &domain.ExitResult{
		VehicleNumber: stay.VehicleNumber,
		VehicleType:   stay.VehicleType,
		EntryTime:     stay.EntryTime,
		ExitTime:      exitTime,
		Slot:          stay.Slot,
		Fee:           charge.Fee,
		Charge:        charge,
	}

	record, err := s.store.Append(ctx, domain.NewClosedRecord(stay, exitTime, charge))
	if err != nil {
		s.logger.Error("Exit: slot=%d vacated but record for vehicle=%s not persisted: %v", stay.Slot, vehicleNumber, err)
		return result, s.fail(span, "exit", statusNotPersisted,
			fmt.Errorf("%w: vehicle %s: %v", ErrPersistenceFailure, vehicleNumber, err))
	}

	result.Persisted = true
	s.metrics.RecordParkingOperation("exit", statusSuccess)

	s.logger.Info("Exit: vehicle=%s left slot=%d, fee=%.2f, record id=%d", vehicleNumber, stay.Slot, charge.Fee, record.ID)
	return result, nil
}

// closeStay под блокировкой находит стоянку, считает плату и освобождает место
func (s *Service) closeStay(vehicleNumber string) (domain.Stay, time.Time, domain.FeeBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.registry.FindSlotFor(vehicleNumber)
	if !ok {
		return domain.Stay{}, time.Time{}, domain.FeeBreakdown{}, fmt.Errorf("%w: %s", ErrNotFound, vehicleNumber)
	}

	stay, ok := s.registry.Get(slot)
	if !ok {
		return domain.Stay{}, time.Time{}, domain.FeeBreakdown{},
			fmt.Errorf("%w: closeStay - slot %d lost its stay", ErrInternal, slot)
	}

	exitTime := s.now()
	charge, err := s.billing.CalculateFee(stay.EntryTime, exitTime, stay.VehicleType)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidInterval) {
			return domain.Stay{}, time.Time{}, domain.FeeBreakdown{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		return domain.Stay{}, time.Time{}, domain.FeeBreakdown{}, fmt.Errorf("%w: closeStay - calculate fee: %v", ErrInternal, err)
	}

	if _, err := s.registry.Vacate(slot); err != nil {
		return domain.Stay{}, time.Time{}, domain.FeeBreakdown{}, fmt.Errorf("%w: closeStay - vacate: %v", ErrInternal, err)
	}

	s.metrics.SetOccupancy(s.registry.OccupiedCount(), s.registry.Total())
	return stay, exitTime, charge, nil
}

// Status возвращает снимок текущей занятости парковки
func (s *Service) Status(ctx context.Context) *domain.Status {
	_, span := s.tracer.Start(ctx, "parking.status")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	occupied := s.registry.AllOccupied()
	free := s.registry.FreeSlots()

	span.SetAttributes(
		attribute.Int("parking.occupied", len(occupied)),
		attribute.Int("parking.total", s.registry.Total()),
	)

	return &domain.Status{
		TotalSlots:    s.registry.Total(),
		OccupiedCount: len(occupied),
		FreeCount:     len(free),
		FreeSlots:     free,
		Occupied:      occupied,
		VIPSlots:      s.registry.VIPSlots(),
	}
}

// VIPSlots возвращает номера VIP мест
func (s *Service) VIPSlots() []int {
	return s.registry.VIPSlots()
}

// DailySummary возвращает сводку за календарный день в опорной временной зоне
//
// В сводку входят завершённые стоянки с выездом в этот день и все стоянки,
// активные на момент запроса (с нулевой платой и без времени выезда),
// независимо от запрошенной даты. Выручка считается только по завершённым.
//
// Хранилище и реестр читаются не атомарно: ТС, чей Exit уже освободил место,
// но ещё не дописал запись, не попадёт в сводку ни одним из источников.
// Такая сводка ненадолго занижает TotalVehicles.
func (s *Service) DailySummary(ctx context.Context, date time.Time) (*domain.Summary, error) {
	day := s.startOfDay(date)

	ctx, span := s.tracer.Start(ctx, "parking.daily_summary", trace.WithAttributes(
		attribute.String("summary.date", day.Format(domain.DateFormat)),
	))
	defer span.End()

	s.logger.Info("DailySummary: date=%s", day.Format(domain.DateFormat))

	closed, err := s.store.QueryByExitDate(ctx, day)
	if err != nil {
		s.logger.Error("DailySummary: failed to query records for date=%s: %v", day.Format(domain.DateFormat), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: DailySummary - query records: %v", ErrInternal, err)
	}

	records := make([]domain.SummaryRecord, 0, len(closed))
	revenue := 0.0
	for _, rec := range closed {
		records = append(records, domain.SummaryRecord{
			VehicleNumber: rec.VehicleNumber,
			VehicleType:   rec.VehicleType,
			Slot:          rec.Slot,
			EntryTime:     rec.EntryTime,
			ExitTime:      ptr.Ptr(rec.ExitTime),
			Fee:           rec.Fee,
		})
		revenue += rec.Fee
	}

	s.mu.Lock()
	active := s.registry.AllOccupied()
	s.mu.Unlock()

	for _, stay := range active {
		records = append(records, domain.SummaryRecord{
			VehicleNumber: stay.VehicleNumber,
			VehicleType:   stay.VehicleType,
			Slot:          stay.Slot,
			EntryTime:     stay.EntryTime,
		})
	}

	summary := &domain.Summary{
		Date:          day,
		TotalVehicles: len(records),
		TotalRevenue:  math.Round(revenue*100) / 100,
		Records:       records,
	}

	s.logger.Info("DailySummary: date=%s, completed=%d, active=%d, revenue=%.2f",
		day.Format(domain.DateFormat), len(closed), len(active), summary.TotalRevenue)
	return summary, nil
}

// Today возвращает текущую дату в опорной временной зоне
func (s *Service) Today() time.Time {
	return s.startOfDay(s.now())
}

func (s *Service) now() time.Time {
	return s.timeProvider.Now().In(s.location)
}

func (s *Service) startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

// fail фиксирует ошибку операции в метриках и трейсе
func (s *Service) fail(span trace.Span, operation, status string, err error) error {
	s.metrics.RecordParkingOperation(operation, status)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
