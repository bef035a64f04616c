package record_appointment

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Record(ctx context.Context, req *models.RecordAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
