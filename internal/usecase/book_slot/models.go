package book_slot

import (
	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID       uuid.UUID
	PatientName  string
	PatientPhone string

	// Reason причина визита, опциональна
	Reason string
}

// Response модель ответа с забронированным слотом
type Response struct {
	Slot *domain.Slot
}
