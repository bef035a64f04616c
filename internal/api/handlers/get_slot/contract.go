package get_slot

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/service/slots/models"
)

type SlotsService interface {
	GetByPublicID(ctx context.Context, slotID uuid.UUID) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
