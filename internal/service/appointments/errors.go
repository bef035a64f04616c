package appointments

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись истории не найдена
	ErrRecordNotFound = errors.New("appointment record not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
