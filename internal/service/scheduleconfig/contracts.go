package scheduleconfig

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// ConfigRepository интерфейс репозитория настроек расписания
type ConfigRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
