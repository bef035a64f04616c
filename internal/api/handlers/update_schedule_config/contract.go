package update_schedule_config

import (
	"context"

	"github.com/clinicore/scheduling-service/internal/service/scheduleconfig/models"
)

type ScheduleConfigService interface {
	Update(ctx context.Context, providerID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
