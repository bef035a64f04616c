package reschedule_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	SlotID uuid.UUID

	// NewDate и NewStartTime - новые дата и время приема
	NewDate      time.Time
	NewStartTime types.TimeString

	// NewDurationMinutes длительность нового слота,
	// при нуле наследуется от исходного
	NewDurationMinutes int
}

// Response модель ответа переноса записи
type Response struct {
	// OriginSlot исходный слот, освобожденный с аннотацией о переносе
	OriginSlot *domain.Slot

	// NewSlot новый слот с перенесенной записью
	NewSlot *domain.Slot
}
