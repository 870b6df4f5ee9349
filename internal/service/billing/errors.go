package billing

import "errors"

var (
	// ErrInvalidInterval возвращается, если время выезда раньше времени въезда
	ErrInvalidInterval = errors.New("billing: exit time is before entry time")

	// ErrInvalidConfig возвращается при некорректной конфигурации тарифа
	ErrInvalidConfig = errors.New("billing: invalid tariff configuration")
)
