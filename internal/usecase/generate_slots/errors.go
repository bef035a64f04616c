package generate_slots

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден в справочнике
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRange возвращается при некорректном диапазоне дат или времени
	ErrInvalidRange = errors.New("invalid generation range")

	// ErrDateInPast возвращается, когда диапазон генерации начинается в прошлом
	ErrDateInPast = errors.New("generation range starts in the past")

	// ErrRangeTooLong возвращается, когда диапазон дат превышает допустимый максимум
	ErrRangeTooLong = errors.New("generation range is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
