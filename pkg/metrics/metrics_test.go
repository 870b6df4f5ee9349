package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestParkingMetrics(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "parking-test")

	m.RecordParkingOperation("park", "success")
	m.RecordParkingOperation("park", "success")
	m.RecordParkingOperation("park", "lot_full")
	m.SetOccupancy(5, 24)
	m.RecordPayment("car", 30)
	m.RecordPayment("car", 20)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.parkingOperations.WithLabelValues("park", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parkingOperations.WithLabelValues("park", "lot_full")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.lotOccupancy))
	assert.Equal(t, 24.0, testutil.ToFloat64(m.lotCapacity))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.revenueTotal.WithLabelValues("car")))
}

func TestDBAndHTTPMetrics(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "parking-test")

	m.RecordDBQuery("query_row", nil, 10*time.Millisecond)
	m.RecordDBQuery("query_row", errors.New("boom"), 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/status", 200, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("query_row", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("query_row", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/status", "200")))
}
