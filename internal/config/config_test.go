package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 24, cfg.Parking.TotalSlots)
	assert.Equal(t, []int{1, 2}, cfg.Parking.VIPSlots)
	assert.Equal(t, 2, cfg.Billing.FirstHours)
	assert.Equal(t, 20.0, cfg.Billing.FirstHoursFee)
	assert.Equal(t, 10.0, cfg.Billing.PerHourFee)
	assert.Equal(t, 0.5, cfg.Billing.VehicleTypeMultiplier["bike"])
	assert.Equal(t, "reports", cfg.Reports.Dir)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
driver = "memory"

[parking]
total_slots = 10
vip_slots = [9, 10]
timezone = "Asia/Kolkata"

[billing]
first_hours = 1
first_hours_fee = 30.0
per_hour_fee = 15.0

[billing.vehicle_type_multiplier]
heavy = 2.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []int{9, 10}, cfg.Parking.VIPSlots)

	loc, err := cfg.Parking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	engineCfg, err := cfg.Billing.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, engineCfg.FirstHours)
	assert.Equal(t, 2.0, engineCfg.VehicleTypeMultiplier[domain.VehicleHeavy])
	// остальные множители берутся из значений по умолчанию
	assert.Equal(t, 1.2, engineCfg.VehicleTypeMultiplier[domain.VehicleEV])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")

	cfg, err := Load(writeConfig(t, "[database]\nhost = \"file-host\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://collector:4318", cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero slots", content: "[parking]\ntotal_slots = 0\n"},
		{name: "vip outside lot", content: "[parking]\ntotal_slots = 5\nvip_slots = [6]\n"},
		{name: "unknown driver", content: "[storage]\ndriver = \"mongo\"\n"},
		{name: "unknown timezone", content: "[parking]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "negative fee", content: "[billing]\nper_hour_fee = -1.0\n"},
		{name: "unknown vehicle type", content: "[billing.vehicle_type_multiplier]\ntruck = 2.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=db sslmode=disable", d.DSN())
}

func TestParkingConfig_LocalTimezone(t *testing.T) {
	loc, err := ParkingConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
