package daily_report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const filePrefix = "daily_report_"

// UseCase use case для формирования дневного PDF отчёта
type UseCase struct {
	summaries  SummaryProvider
	renderer   ReportRenderer
	reportsDir string
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
// reportsDir - каталог для копий отчётов; пустая строка отключает сохранение
func NewUseCase(summaries SummaryProvider, renderer ReportRenderer, reportsDir string, logger Logger) *UseCase {
	return &UseCase{
		summaries:  summaries,
		renderer:   renderer,
		reportsDir: reportsDir,
		logger:     logger,
	}
}

// Execute формирует отчёт за дату и сохраняет копию в каталог отчётов
// Ошибка сохранения копии не мешает вернуть отчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("DailyReport: date=%s", dateStr)

	summary, err := uc.summaries.DailySummary(ctx, req.Date)
	if err != nil {
		uc.logger.Error("DailyReport: failed to get summary for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: failed to get summary: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	if err := uc.renderer.Render(&buf, summary, uc.summaries.VIPSlots()); err != nil {
		uc.logger.Error("DailyReport: failed to render report for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	resp := &Response{
		FileName: filePrefix + summary.Date.Format(domain.DateFormat) + ".pdf",
		Content:  buf.Bytes(),
	}

	if uc.reportsDir != "" {
		path, err := uc.save(resp.FileName, resp.Content)
		if err != nil {
			uc.logger.Warn("DailyReport: report for date=%s not saved: %v", dateStr, err)
		} else {
			resp.SavedPath = path
		}
	}

	uc.logger.Info("DailyReport: date=%s, vehicles=%d, revenue=%.2f, size=%d bytes",
		dateStr, summary.TotalVehicles, summary.TotalRevenue, len(resp.Content))
	return resp, nil
}

func (uc *UseCase) save(name string, content []byte) (string, error) {
	if err := os.MkdirAll(uc.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	path := filepath.Join(uc.reportsDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
