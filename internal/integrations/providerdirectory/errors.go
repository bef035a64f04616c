package providerdirectory

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден в справочнике
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("providerdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от справочника
	ErrInvalidResponse = errors.New("providerdirectory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что справочник недоступен и проверку существования врача пропустили
	ErrServiceDegraded = errors.New("providerdirectory unavailable: graceful degradation applied")
)
