package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal    *prometheus.CounterVec
	dbQueryDuration   *prometheus.HistogramVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	parkingOperations *prometheus.CounterVec
	lotOccupancy      prometheus.Gauge
	lotCapacity       prometheus.Gauge
	revenueTotal      *prometheus.CounterVec
	feeAmount         *prometheus.HistogramVec
}

// New регистрирует метрики в глобальном registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в указанном registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		parkingOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_operations_total",
			Help:        "Total number of parking operations",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		lotOccupancy: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_lot_occupancy",
			Help:        "Current number of occupied parking slots",
			ConstLabels: labels,
		}),
		lotCapacity: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_lot_total_slots",
			Help:        "Total number of parking slots",
			ConstLabels: labels,
		}),
		revenueTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_revenue_total",
			Help:        "Collected parking fees",
			ConstLabels: labels,
		}, []string{"vehicle_type"}),
		feeAmount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "parking_fee_amount",
			Help:        "Distribution of charged fees",
			ConstLabels: labels,
			Buckets:     []float64{10, 20, 30, 50, 75, 100, 150, 250, 500},
		}, []string{"vehicle_type"}),
	}
}

// RecordHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) RecordDBQuery(operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики connection pool
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// RecordParkingOperation фиксирует операцию въезда/выезда
func (m *Metrics) RecordParkingOperation(operation, status string) {
	m.parkingOperations.WithLabelValues(operation, status).Inc()
}

// SetOccupancy обновляет занятость парковки
func (m *Metrics) SetOccupancy(occupied, total int) {
	m.lotOccupancy.Set(float64(occupied))
	m.lotCapacity.Set(float64(total))
}

// RecordPayment фиксирует начисленную плату
func (m *Metrics) RecordPayment(vehicleType string, fee float64) {
	m.revenueTotal.WithLabelValues(vehicleType).Add(fee)
	m.feeAmount.WithLabelValues(vehicleType).Observe(fee)
}
