package get_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

type stubService struct {
	status *domain.Status
}

func (s *stubService) Status(context.Context) *domain.Status {
	return s.status
}

func doStatus(t *testing.T, status *domain.Status) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(&stubService{status: status}, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Status(t *testing.T) {
	entry := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := doStatus(t, &domain.Status{
		TotalSlots:    4,
		OccupiedCount: 2,
		FreeCount:     2,
		FreeSlots:     []int{2, 4},
		VIPSlots:      []int{1, 2},
		Occupied: []domain.Stay{
			{VehicleNumber: "KA01AB1234", VehicleType: domain.VehicleEV, EntryTime: entry, Slot: 1, IsVIPRequest: true},
			{VehicleNumber: "KA02", VehicleType: domain.VehicleCar, EntryTime: entry.Add(time.Hour), Slot: 3},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"total_slots", "occupied", "free", "free_slots", "vip_slots", "vehicles"} {
		assert.Contains(t, raw, key)
	}

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalSlots)
	assert.Equal(t, 2, resp.Occupied)
	assert.Equal(t, 2, resp.Free)
	assert.Equal(t, []int{2, 4}, resp.FreeSlots)
	assert.Equal(t, []int{1, 2}, resp.VIPSlots)

	require.Len(t, resp.Vehicles, 2)
	assert.Equal(t, OccupiedSlot{
		Slot: 1, VehicleNumber: "KA01AB1234", VehicleType: "ev",
		EntryTime: entry, VIPSlot: true, VIPRequested: true,
	}, resp.Vehicles[0])
	assert.Equal(t, 3, resp.Vehicles[1].Slot)
	assert.False(t, resp.Vehicles[1].VIPSlot)
	assert.False(t, resp.Vehicles[1].VIPRequested)
}

func TestHandler_Status_EmptyListsAreArrays(t *testing.T) {
	rec := doStatus(t, &domain.Status{TotalSlots: 1, OccupiedCount: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["free_slots"]))
	assert.JSONEq(t, `[]`, string(raw["vip_slots"]))
	assert.JSONEq(t, `[]`, string(raw["vehicles"]))
}
