package generate_slots

import (
	"context"
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/internal/integrations/providerdirectory"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// CreateBatch создает батч слотов одним запросом
	CreateBatch(ctx context.Context, slots []*domain.Slot) (int, error)
}

// ConfigRepository интерфейс репозитория настроек расписания
type ConfigRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error)
}

// DirectoryClient интерфейс клиента справочника врачей
type DirectoryClient interface {
	GetProviderWithGracefulDegradation(ctx context.Context, providerID int64) (*providerdirectory.Provider, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
