package get_daily_report

import (
	"context"
	"time"

	dailyReport "github.com/m04kA/SMC-ParkingService/internal/usecase/daily_report"
)

type DailyReportUseCase interface {
	Execute(ctx context.Context, req *dailyReport.Request) (*dailyReport.Response, error)
}

// Calendar опорный календарь парковки
type Calendar interface {
	Today() time.Time
	Location() *time.Location
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
