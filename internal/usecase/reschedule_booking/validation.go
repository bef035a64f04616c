package reschedule_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == uuid.Nil {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: new start time is required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid new start time: %v", ErrInvalidInput, err)
	}

	if req.NewDurationMinutes != 0 {
		if req.NewDurationMinutes < domain.MinSlotDurationMinutes || req.NewDurationMinutes > domain.MaxSlotDurationMinutes {
			return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
	}

	return nil
}
