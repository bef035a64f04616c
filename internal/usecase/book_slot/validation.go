package book_slot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == uuid.Nil {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.PatientName)
	if name == "" {
		return fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patient name exceeds %d characters", ErrInvalidInput, domain.MaxPatientNameLength)
	}

	phone := strings.TrimSpace(req.PatientPhone)
	if phone == "" {
		return fmt.Errorf("%w: patient phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPatientPhoneLength {
		return fmt.Errorf("%w: patient phone exceeds %d characters", ErrInvalidInput, domain.MaxPatientPhoneLength)
	}

	return nil
}
