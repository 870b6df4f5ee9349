package get_daily_report

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	dailyReport "github.com/m04kA/SMC-ParkingService/internal/usecase/daily_report"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	pdfContentType = "application/pdf"
)

type Handler struct {
	useCase  DailyReportUseCase
	calendar Calendar
	logger   Logger
}

func NewHandler(useCase DailyReportUseCase, calendar Calendar, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/reports/daily?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := handlers.ParseDate(dateStr, h.calendar.Location(), h.calendar.Today())
	if err != nil {
		h.logger.Warn("GET /reports/daily - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	report, err := h.useCase.Execute(r.Context(), &dailyReport.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /reports/daily - Failed to build report: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/daily - Report sent: file=%s, size=%d", report.FileName, len(report.Content))
	handlers.RespondFile(w, pdfContentType, report.FileName, report.Content)
}
