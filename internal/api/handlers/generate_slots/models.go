package generate_slots

import (
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
	generateSlots "github.com/clinicore/scheduling-service/internal/usecase/generate_slots"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// GenerateSlotsRequest HTTP request model
// Незаполненные startTime/endTime/slotDurationMinutes/breakMinutes берутся
// из настроек расписания врача, явный breakMinutes=0 означает "без перерыва"
type GenerateSlotsRequest struct {
	StartDate           string `json:"startDate"`           // "2025-06-02"
	EndDate             string `json:"endDate"`             // "2025-06-30"
	StartTime           string `json:"startTime,omitempty"` // "09:00"
	EndTime             string `json:"endTime,omitempty"`   // "17:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes,omitempty"`
	BreakMinutes        *int   `json:"breakMinutes,omitempty"`
	Weekdays            []int  `json:"weekdays"` // ISO: понедельник=1 .. воскресенье=7
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	ProviderID   int64  `json:"providerId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	SlotsCreated int    `json:"slotsCreated"`
	DaysCovered  int    `json:"daysCovered"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(providerID int64) (*generateSlots.Request, error) {
	startDate, err := time.ParseInLocation(domain.DateFormat, r.StartDate, time.UTC)
	if err != nil {
		return nil, err
	}

	endDate, err := time.ParseInLocation(domain.DateFormat, r.EndDate, time.UTC)
	if err != nil {
		return nil, err
	}

	req := &generateSlots.Request{
		ProviderID:          providerID,
		StartDate:           startDate,
		EndDate:             endDate,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BreakMinutes:        r.BreakMinutes,
		Weekdays:            r.Weekdays,
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}
	if r.EndTime != "" {
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		ProviderID:   resp.ProviderID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		SlotsCreated: resp.SlotsCreated,
		DaysCovered:  resp.DaysCovered,
	}
}
