package get_day_schedule

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/service/slots/models"
)

type SlotsService interface {
	GetDaySchedule(ctx context.Context, req *models.GetDayScheduleRequest) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
