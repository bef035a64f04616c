package reschedule_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда исходный слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotBooked возвращается, когда исходный слот не содержит записи
	ErrSlotNotBooked = errors.New("slot has no booking to reschedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
