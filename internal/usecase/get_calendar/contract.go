package get_calendar

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderSlotsFilter) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
