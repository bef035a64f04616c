package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCannotCancel возвращается при попытке отменить слот без записи
	ErrCannotCancel = errors.New("slot has no booking to cancel")

	// ErrCannotBlock возвращается, когда слот нельзя заблокировать
	ErrCannotBlock = errors.New("slot cannot be blocked")

	// ErrCannotUnblock возвращается, когда слот нельзя разблокировать
	ErrCannotUnblock = errors.New("slot cannot be unblocked")

	// ErrCannotDelete возвращается при попытке удалить слот с активной записью
	ErrCannotDelete = errors.New("slot with an active booking cannot be deleted")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
