package delete_slot

import (
	"context"

	"github.com/google/uuid"
)

type SlotsService interface {
	Delete(ctx context.Context, slotID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
