package records

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("records.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("records.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("records.repository: failed to scan row")

	// ErrInvalidRecord возвращается при попытке сохранить некорректную запись
	ErrInvalidRecord = errors.New("records.repository: invalid record")
)
