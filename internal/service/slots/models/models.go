package models

import (
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание одиночного слота
type CreateSlotRequest struct {
	ProviderID      int64  `json:"providerId"`
	Date            string `json:"date"`      // "2025-06-02"
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// CancelBookingRequest запрос на отмену записи
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// GetDayScheduleRequest запрос расписания врача на день
type GetDayScheduleRequest struct {
	ProviderID int64
	Date       time.Time
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              string `json:"id"` // публичный UUID слота
	ProviderID      int64  `json:"providerId"`
	Date            string `json:"date"`      // "2025-06-02"
	StartTime       string `json:"startTime"` // "09:00"
	EndTime         string `json:"endTime"`   // "09:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	PatientName  *string `json:"patientName,omitempty"`
	PatientPhone *string `json:"patientPhone,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayScheduleResponse расписание врача на день со счетчиками статусов
type DayScheduleResponse struct {
	ProviderID int64              `json:"providerId"`
	Date       string             `json:"date"`
	Slots      []SlotResponse     `json:"slots"`
	Counts     schedule.DayCounts `json:"counts"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	resp := &SlotResponse{
		ID:              s.PublicID.String(),
		ProviderID:      s.ProviderID,
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	if end, err := s.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	if s.Patient != nil {
		resp.PatientName = &s.Patient.Name
		if s.Patient.Phone != "" {
			resp.PatientPhone = &s.Patient.Phone
		}
		if s.Patient.Reason != "" {
			resp.Reason = &s.Patient.Reason
		}
	}

	return resp
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, *FromDomainSlot(s))
	}
	return result
}

// ToDomainSlot конвертирует запрос создания в domain модель
// Дата и время парсятся и валидируются на уровне сервиса
func (r *CreateSlotRequest) ToDomainSlot(date time.Time, startTime types.TimeString) *domain.Slot {
	return &domain.Slot{
		ProviderID:      r.ProviderID,
		Date:            schedule.DateOnly(date),
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Status:          domain.SlotAvailable,
	}
}
