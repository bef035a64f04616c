package book_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByPublicID возвращает слот по публичному идентификатору
	// Внутри транзакции берет блокировку FOR UPDATE
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Slot, error)
	Update(ctx context.Context, slot *domain.Slot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
