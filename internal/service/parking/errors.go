package parking

import "errors"

var (
	// ErrAlreadyParked возвращается при повторном въезде ТС, которое уже на парковке
	ErrAlreadyParked = errors.New("parking: vehicle already parked")

	// ErrLotFull возвращается, когда свободных мест нет
	ErrLotFull = errors.New("parking: lot is full")

	// ErrNotFound возвращается при выезде ТС, которого нет на парковке
	ErrNotFound = errors.New("parking: vehicle not found")

	// ErrInvalidInterval возвращается, если время выезда раньше времени въезда
	ErrInvalidInterval = errors.New("parking: exit time is before entry time")

	// ErrPersistenceFailure возвращается, когда запись о выезде не сохранилась.
	// Место при этом уже освобождено
	ErrPersistenceFailure = errors.New("parking: failed to persist closed record")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("parking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parking: internal error")
)
