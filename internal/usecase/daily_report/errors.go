package daily_report

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("daily_report: invalid input data")

	// ErrRender возвращается, когда не удалось сформировать документ
	ErrRender = errors.New("daily_report: failed to render report")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("daily_report: internal error")
)
