package get_appointment_history

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetProviderHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
