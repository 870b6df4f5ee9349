package slots

import "errors"

var (
	// ErrInvalidCapacity возвращается при неположительном количестве мест
	ErrInvalidCapacity = errors.New("slots: total slots must be positive")

	// ErrSlotOutOfRange возвращается для номера места вне [1, total]
	ErrSlotOutOfRange = errors.New("slots: slot number out of range")

	// ErrSlotOccupied возвращается при попытке занять уже занятое место
	ErrSlotOccupied = errors.New("slots: slot is already occupied")

	// ErrSlotEmpty возвращается при попытке освободить пустое место
	ErrSlotEmpty = errors.New("slots: slot is already empty")
)
