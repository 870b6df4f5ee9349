package park_vehicle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err    error
	called bool
	gotVT  domain.VehicleType
	gotVIP bool
}

func (s *stubService) Park(_ context.Context, number string, vt domain.VehicleType, vip bool) (*domain.Stay, error) {
	s.called = true
	s.gotVT = vt
	s.gotVIP = vip
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Stay{
		VehicleNumber: strings.TrimSpace(number),
		VehicleType:   vt,
		EntryTime:     time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		Slot:          1,
		IsVIPRequest:  vip,
	}, nil
}

func doPark(t *testing.T, svc *stubService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, []int{1, 2}, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entry", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Park_Success(t *testing.T) {
	svc := &stubService{}

	rec := doPark(t, svc, `{"number":"KA01AB1234","vtype":"EV","vip":"yes"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ParkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Slot)
	assert.Equal(t, "ev", resp.VehicleType)
	assert.True(t, resp.VIPRequested)
	assert.True(t, resp.VIPSlot)
	assert.Equal(t, domain.VehicleEV, svc.gotVT)
	assert.True(t, svc.gotVIP)
}

func TestHandler_Park_DefaultsToCar(t *testing.T) {
	svc := &stubService{}

	rec := doPark(t, svc, `{"number":"KA01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.VehicleCar, svc.gotVT)
	assert.False(t, svc.gotVIP)
}

func TestHandler_Park_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"number":`},
		{name: "missing number", body: `{"vtype":"car"}`},
		{name: "unknown vehicle type", body: `{"number":"A1","vtype":"truck"}`},
		{name: "vip wrong type", body: `{"number":"A1","vip":[1]}`},
		{name: "unknown field", body: `{"number":"A1","color":"red"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			rec := doPark(t, svc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, svc.called)
		})
	}
}

func TestHandler_Park_ServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("%w: A1", parking.ErrAlreadyParked), code: http.StatusConflict},
		{err: parking.ErrLotFull, code: http.StatusConflict},
		{err: parking.ErrInvalidInput, code: http.StatusBadRequest},
		{err: parking.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := doPark(t, &stubService{err: tt.err}, `{"number":"A1"}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_Park_NumberTooLong(t *testing.T) {
	number := strings.Repeat("X", domain.MaxVehicleNumberLength+1)
	svc := &stubService{err: fmt.Errorf("%w: vehicle number longer than %d characters",
		parking.ErrInvalidInput, domain.MaxVehicleNumberLength)}

	rec := doPark(t, svc, `{"number":"`+number+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidNumber, resp.Error)
}

func TestHandler_Park_NumericVIP(t *testing.T) {
	svc := &stubService{}

	rec := doPark(t, svc, `{"number":"A1","vip":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, svc.gotVIP)
}

func TestVIPFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: `true`, want: true},
		{raw: `false`, want: false},
		{raw: `1`, want: true},
		{raw: `0`, want: false},
		{raw: `2.5`, want: true},
		{raw: `-1`, want: true},
		{raw: `"true"`, want: true},
		{raw: `"1"`, want: true},
		{raw: `"YES"`, want: true},
		{raw: `"no"`, want: false},
		{raw: `""`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f VIPFlag
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, bool(f))
		})
	}
}
