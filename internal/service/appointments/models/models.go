package models

import (
	"errors"
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе приема
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// RecordAppointmentRequest запрос на фиксацию исхода приема
type RecordAppointmentRequest struct {
	ProviderID      int64  `json:"providerId"`
	Date            string `json:"date"`      // "2025-06-02"
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"` // completed | cancelled | no_show

	PatientName  string  `json:"patientName"`
	PatientPhone *string `json:"patientPhone,omitempty"`
	Reason       *string `json:"reason,omitempty"`

	Diagnosis    *string `json:"diagnosis,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
	FollowUpDate *string `json:"followUpDate,omitempty"` // "2025-06-16"
}

// GetHistoryRequest запрос истории приемов врача
type GetHistoryRequest struct {
	ProviderID  int64
	PatientName *string // поиск по подстроке имени
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHistoryRequest) ToDomainFilter() (domain.ProviderAppointmentsFilter, error) {
	filter := domain.ProviderAppointmentsFilter{
		ProviderID:  r.ProviderID,
		PatientName: r.PatientName,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи истории
type AppointmentResponse struct {
	ID              string `json:"id"` // публичный UUID записи
	ProviderID      int64  `json:"providerId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	PatientName  string  `json:"patientName"`
	PatientPhone *string `json:"patientPhone,omitempty"`
	Reason       *string `json:"reason,omitempty"`

	Diagnosis    *string `json:"diagnosis,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
	FollowUpDate *string `json:"followUpDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей истории
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(status) {
	case domain.AppointmentCompleted, domain.AppointmentCancelled, domain.AppointmentNoShow:
		return domain.AppointmentStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(r *domain.AppointmentRecord) *AppointmentResponse {
	if r == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              r.PublicID.String(),
		ProviderID:      r.ProviderID,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		PatientName:     r.PatientName,
		PatientPhone:    r.PatientPhone,
		Reason:          r.Reason,
		Diagnosis:       r.Diagnosis,
		Prescription:    r.Prescription,
		CreatedAt:       r.CreatedAt,
	}

	if r.FollowUpDate != nil {
		formatted := r.FollowUpDate.Format(domain.DateFormat)
		resp.FollowUpDate = &formatted
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(records []*domain.AppointmentRecord) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(records))
	for _, r := range records {
		result = append(result, *FromDomainAppointment(r))
	}
	return &AppointmentListResponse{Appointments: result}
}
