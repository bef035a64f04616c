package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория истории приемов
type AppointmentRepository interface {
	Create(ctx context.Context, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error)
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.AppointmentRecord, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.AppointmentRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
