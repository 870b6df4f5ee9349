package daily_report

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SummaryProvider источник дневных сводок
type SummaryProvider interface {
	DailySummary(ctx context.Context, date time.Time) (*domain.Summary, error)
	VIPSlots() []int
}

// ReportRenderer формирует документ отчёта по сводке
type ReportRenderer interface {
	Render(w io.Writer, summary *domain.Summary, vipSlots []int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
