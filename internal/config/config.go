package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // временные зоны в контейнерах без tzdata

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/billing"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Storage   StorageConfig   `toml:"storage"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Parking   ParkingConfig   `toml:"parking"`
	Billing   BillingConfig   `toml:"billing"`
	Reports   ReportsConfig   `toml:"reports"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// StorageConfig выбор хранилища завершённых стоянок
type StorageConfig struct {
	Driver string `toml:"driver"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TelemetryConfig struct {
	Enabled      bool   `toml:"enabled"`
	ServiceName  string `toml:"service_name"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

// ParkingConfig размер парковки и опорная временная зона
type ParkingConfig struct {
	TotalSlots int    `toml:"total_slots"`
	VIPSlots   []int  `toml:"vip_slots"`
	Timezone   string `toml:"timezone"`
}

// BillingConfig тариф
type BillingConfig struct {
	FirstHours            int                `toml:"first_hours"`
	FirstHoursFee         float64            `toml:"first_hours_fee"`
	PerHourFee            float64            `toml:"per_hour_fee"`
	VehicleTypeMultiplier map[string]float64 `toml:"vehicle_type_multiplier"`
}

type ReportsConfig struct {
	Dir      string `toml:"dir"`
	Title    string `toml:"title"`
	Currency string `toml:"currency"`
}

// Load читает конфигурацию из TOML файла, дополняет значениями по умолчанию
// и переопределяет отдельные поля переменными окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	defaults := billing.DefaultConfig()
	multipliers := make(map[string]float64, len(defaults.VehicleTypeMultiplier))
	for vt, m := range defaults.VehicleTypeMultiplier {
		multipliers[string(vt)] = m
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "parking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Telemetry: TelemetryConfig{
			ServiceName:  "parking-service",
			OTLPEndpoint: "http://localhost:4318",
		},
		Parking: ParkingConfig{
			TotalSlots: 24,
			VIPSlots:   []int{1, 2},
			Timezone:   "Local",
		},
		Billing: BillingConfig{
			FirstHours:            defaults.FirstHours,
			FirstHoursFee:         defaults.FirstHoursFee,
			PerHourFee:            defaults.PerHourFee,
			VehicleTypeMultiplier: multipliers,
		},
		Reports: ReportsConfig{Dir: "reports"},
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Parking.TotalSlots <= 0 {
		return fmt.Errorf("%w: parking.total_slots must be positive", ErrInvalidConfig)
	}
	for _, s := range c.Parking.VIPSlots {
		if s < 1 || s > c.Parking.TotalSlots {
			return fmt.Errorf("%w: parking.vip_slots contains %d outside 1..%d", ErrInvalidConfig, s, c.Parking.TotalSlots)
		}
	}
	if _, err := c.Parking.Location(); err != nil {
		return fmt.Errorf("%w: parking.timezone: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Billing.EngineConfig(); err != nil {
		return fmt.Errorf("%w: billing: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location возвращает опорную временную зону парковки
func (p ParkingConfig) Location() (*time.Location, error) {
	switch strings.TrimSpace(p.Timezone) {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(p.Timezone)
	}
}

// EngineConfig переводит тариф в конфигурацию движка тарификации
func (b BillingConfig) EngineConfig() (billing.Config, error) {
	multipliers := make(map[domain.VehicleType]float64, len(b.VehicleTypeMultiplier))
	for name, m := range b.VehicleTypeMultiplier {
		vt, err := domain.ParseVehicleType(name)
		if err != nil {
			return billing.Config{}, err
		}
		multipliers[vt] = m
	}

	cfg := billing.Config{
		FirstHours:            b.FirstHours,
		FirstHoursFee:         b.FirstHoursFee,
		PerHourFee:            b.PerHourFee,
		VehicleTypeMultiplier: multipliers,
	}
	if err := cfg.Validate(); err != nil {
		return billing.Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.OTLPEndpoint = v
	}
	return nil
}
