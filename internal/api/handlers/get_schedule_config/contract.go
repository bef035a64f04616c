package get_schedule_config

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/service/scheduleconfig/models"
)

type ScheduleConfigService interface {
	Get(ctx context.Context, providerID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
