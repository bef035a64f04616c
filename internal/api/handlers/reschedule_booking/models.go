package reschedule_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	slotsModels "github.com/clinicore/scheduling-service/internal/service/slots/models"
	rescheduleBooking "github.com/clinicore/scheduling-service/internal/usecase/reschedule_booking"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate            string `json:"newDate"`      // "2025-06-05"
	NewStartTime       string `json:"newStartTime"` // "14:00"
	NewDurationMinutes int    `json:"newDurationMinutes,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	OriginSlot *slotsModels.SlotResponse `json:"originSlot"`
	NewSlot    *slotsModels.SlotResponse `json:"newSlot"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(slotID uuid.UUID) (*rescheduleBooking.Request, error) {
	newDate, err := time.ParseInLocation(domain.DateFormat, r.NewDate, time.UTC)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		SlotID:             slotID,
		NewDate:            newDate,
		NewStartTime:       newStartTime,
		NewDurationMinutes: r.NewDurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		OriginSlot: slotsModels.FromDomainSlot(resp.OriginSlot),
		NewSlot:    slotsModels.FromDomainSlot(resp.NewSlot),
	}
}
